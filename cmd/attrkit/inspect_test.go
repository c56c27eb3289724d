package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attrkit/attrkit/model"
)

func TestParseCasts(t *testing.T) {
	casts, err := parseCasts([]string{"age=int", "meta=array"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"age": "int", "meta": "array"}, casts)
}

func TestParseCastsInvalid(t *testing.T) {
	for _, pair := range []string{"age", "=int", "age=", ""} {
		_, err := parseCasts([]string{pair})
		assert.Error(t, err, "pair: %q", pair)
	}
}

func TestReadInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"a","age":1}`), 0644))

	attrs, err := readInput([]string{path})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"name": "a", "age": 1.0}, attrs)
}

func TestReadInputRejectsNonObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1,2,3]`), 0644))

	_, err := readInput([]string{path})
	assert.Error(t, err)
}

func TestReadInputMissingFile(t *testing.T) {
	_, err := readInput([]string{"/nonexistent/input.json"})
	assert.Error(t, err)
}

func TestInspectGuardViolationReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"a"}`), 0644))

	inspectGuarded = []string{"*"}
	defer func() {
		inspectGuarded = nil
		inspectCmd.SilenceUsage = false
	}()

	// The rejection surfaces as an error to Execute rather than exiting
	// the process.
	err := inspectCmd.RunE(inspectCmd, []string{path})
	require.Error(t, err)
	assert.True(t, model.IsMassAssignment(err))
	assert.True(t, inspectCmd.SilenceUsage)
}
