package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRoundTrip(t *testing.T) {
	def := Define("model_plain_user")
	m := New(def)

	m.Set("name", "alice")
	m.Set("count", 3)
	m.Set("tags", []interface{}{"a", "b"})

	assert.Equal(t, "alice", m.Get("name"))
	assert.Equal(t, 3, m.Get("count"))
	assert.Equal(t, []interface{}{"a", "b"}, m.Get("tags"))
}

func TestGetAbsentAttribute(t *testing.T) {
	m := New(Define("model_absent_user"))
	assert.Nil(t, m.Get("missing"))
}

func TestAccessorTransformsValue(t *testing.T) {
	def := Define("model_accessor_user")
	def.Accessor("name", func(m *Model, value interface{}) interface{} {
		return strings.ToUpper(value.(string))
	})
	m := New(def)

	m.Set("name", "alice")
	assert.Equal(t, "ALICE", m.Get("name"))

	// Raw storage is untouched.
	assert.Equal(t, "alice", m.Attributes()["name"])
}

func TestMutatorOwnsStorage(t *testing.T) {
	def := Define("model_mutator_user")
	def.Mutator("password", func(m *Model, value interface{}) {
		m.SetRaw("password", "hashed:"+value.(string))
	})
	m := New(def)

	m.Set("password", "secret")
	assert.Equal(t, "hashed:secret", m.Get("password"))
}

func TestMutatorMayDiscardValue(t *testing.T) {
	def := Define("model_discard_user")
	def.Mutator("ignored", func(m *Model, value interface{}) {})
	m := New(def)

	m.Set("ignored", "anything")
	assert.False(t, m.Has("ignored"))
}

func TestMutatorPrecedenceOverCast(t *testing.T) {
	def := Define("model_mutcast_user").Cast("meta", "array")
	def.Mutator("meta", func(m *Model, value interface{}) {
		m.SetRaw("meta", value)
	})
	m := New(def)

	// The mutator stores the raw map; no JSON encoding happens.
	m.Set("meta", map[string]interface{}{"k": "v"})
	assert.Equal(t, map[string]interface{}{"k": "v"}, m.Attributes()["meta"])
}

func TestHas(t *testing.T) {
	def := Define("model_has_user")
	def.Accessor("computed", func(m *Model, value interface{}) interface{} {
		return "always"
	})
	def.Accessor("nothing", func(m *Model, value interface{}) interface{} {
		return nil
	})
	m := New(def)
	m.Set("stored", "x")

	assert.True(t, m.Has("stored"))
	assert.True(t, m.Has("computed"), "accessor returning non-nil counts as set")
	assert.False(t, m.Has("nothing"), "accessor returning nil does not count")
	assert.False(t, m.Has("absent"))
}

func TestRemove(t *testing.T) {
	m := New(Define("model_remove_user"))
	m.Set("name", "a")

	m.Remove("name")
	assert.False(t, m.Has("name"))
	assert.Nil(t, m.Get("name"))
}

func TestAttributesReturnsCopy(t *testing.T) {
	m := New(Define("model_copy_user"))
	m.Set("name", "a")

	attrs := m.Attributes()
	attrs["name"] = "tampered"
	assert.Equal(t, "a", m.Get("name"))
}

func TestOnlyExcept(t *testing.T) {
	m := New(Define("model_onlyexcept_user"))
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	assert.Equal(t, map[string]interface{}{"a": 1, "c": 3}, m.Only("a", "c", "missing"))
	assert.Equal(t, map[string]interface{}{"b": 2}, m.Except("a", "c"))
}

func TestNewWith(t *testing.T) {
	def := Define("model_newwith_user").Fillable("name")

	m, err := NewWith(def, map[string]interface{}{"name": "a"})
	require.NoError(t, err)
	assert.Equal(t, "a", m.Get("name"))

	locked := Define("model_newwith_locked").Guarded("*")
	_, err = NewWith(locked, map[string]interface{}{"name": "a"})
	assert.True(t, IsMassAssignment(err))
}

func TestSetRawAttributes(t *testing.T) {
	def := Define("model_raw_user").Guarded("*")
	m := New(def)

	m.SetRawAttributes(map[string]interface{}{"name": "a", "role": "admin"})
	assert.Equal(t, "a", m.Get("name"))
	assert.Equal(t, "admin", m.Get("role"))
}

func TestFillChaining(t *testing.T) {
	def := Define("model_chain_user")
	m := New(def)

	m2, err := m.Fill(map[string]interface{}{"name": "a"})
	require.NoError(t, err)
	assert.Same(t, m, m2)
}
