package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attrkit/attrkit/collection"
)

func TestScalarCasts(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		stored   interface{}
		expected interface{}
	}{
		{"int from string", "int", "5", 5},
		{"integer alias", "integer", "5", 5},
		{"int from float", "int", 5.9, 5},
		{"float from string", "float", "1.5", 1.5},
		{"real alias", "real", "1.5", 1.5},
		{"double alias", "double", 2, 2.0},
		{"string from int", "string", 42, "42"},
		{"bool from zero", "bool", 0, false},
		{"bool from one", "boolean", 1, true},
		{"bool from string", "bool", "true", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := Define("cast_scalar_" + tt.name).Cast("value", tt.tag)
			m := New(def)
			m.SetRaw("value", tt.stored)
			assert.Equal(t, tt.expected, m.Get("value"))
		})
	}
}

func TestCastTagNormalization(t *testing.T) {
	def := Define("cast_norm_user").Cast("value", "  Integer ")
	m := New(def)
	m.SetRaw("value", "7")
	assert.Equal(t, 7, m.Get("value"))
}

func TestUnknownCastTagIsInert(t *testing.T) {
	def := Define("cast_unknown_user").Cast("value", "datetime")
	m := New(def)
	m.SetRaw("value", "2026-01-01")
	assert.Equal(t, "2026-01-01", m.Get("value"))
}

func TestCastNilPassesThrough(t *testing.T) {
	def := Define("cast_nil_user").Cast("value", "int")
	m := New(def)
	m.SetRaw("value", nil)
	assert.Nil(t, m.Get("value"))
}

func TestArrayCastRoundTrip(t *testing.T) {
	def := Define("cast_array_user").Cast("meta", "array")
	m := New(def)

	m.Set("meta", map[string]interface{}{"k": "v", "n": 1})

	// Stored as a JSON string.
	stored, ok := m.Attributes()["meta"].(string)
	require.True(t, ok)
	assert.JSONEq(t, `{"k":"v","n":1}`, stored)

	// Decoded back on read. JSON numbers come back as float64.
	assert.Equal(t, map[string]interface{}{"k": "v", "n": 1.0}, m.Get("meta"))
}

func TestJSONCastAlias(t *testing.T) {
	def := Define("cast_json_user").Cast("meta", "json")
	m := New(def)

	m.Set("meta", []interface{}{"a", "b"})
	assert.Equal(t, []interface{}{"a", "b"}, m.Get("meta"))
}

func TestObjectCast(t *testing.T) {
	def := Define("cast_object_user").Cast("meta", "object")
	m := New(def)

	m.Set("meta", map[string]interface{}{"k": "v"})
	assert.Equal(t, map[string]interface{}{"k": "v"}, m.Get("meta"))
}

func TestObjectCastRejectsNonObject(t *testing.T) {
	def := Define("cast_object_bad_user").Cast("meta", "object")
	m := New(def)

	m.SetRaw("meta", `["not", "an", "object"]`)
	assert.Nil(t, m.Get("meta"))
}

func TestCollectionCast(t *testing.T) {
	def := Define("cast_collection_user").Cast("tags", "collection")
	m := New(def)

	m.Set("tags", []interface{}{"go", "orm"})

	c, ok := m.Get("tags").(*collection.Collection)
	require.True(t, ok)
	assert.Equal(t, []interface{}{"go", "orm"}, c.All())
}

func TestCollectionCastRejectsNonArray(t *testing.T) {
	def := Define("cast_collection_bad_user").Cast("tags", "collection")
	m := New(def)

	m.SetRaw("tags", `{"not": "an array"}`)
	assert.Nil(t, m.Get("tags"))
}

func TestMalformedJSONDecodesToNil(t *testing.T) {
	def := Define("cast_malformed_user").Cast("meta", "array")
	m := New(def)

	m.SetRaw("meta", "{not json")
	assert.Nil(t, m.Get("meta"))
}

func TestJSONCastSkipsNilOnWrite(t *testing.T) {
	def := Define("cast_nil_write_user").Cast("meta", "array")
	m := New(def)

	m.Set("meta", nil)
	assert.Nil(t, m.Attributes()["meta"], "nil is stored as-is, not encoded")
}

func TestAccessorPrecedenceOverCast(t *testing.T) {
	def := Define("cast_precedence_user").Cast("value", "int")
	def.Accessor("value", func(m *Model, value interface{}) interface{} {
		return "from accessor"
	})
	m := New(def)

	m.SetRaw("value", "5")
	assert.Equal(t, "from accessor", m.Get("value"))
}
