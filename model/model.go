// Package model implements an attribute layer for data-record objects:
// attribute storage with accessor/mutator hooks, declared type casts,
// mass-assignment protection, and filtered array/JSON export. It is an
// in-memory data-shaping layer with no persistence of its own.
package model

import (
	"encoding/json"
	"sort"

	"go.uber.org/zap"
)

// Model holds a mapping of named attributes for one record instance. All
// reads and writes go through the definition's accessors, mutators, and
// casts. A Model is not safe for concurrent use.
type Model struct {
	def        *Definition
	attributes map[string]interface{}

	// Per-instance copies of the definition's export lists, adjustable at
	// runtime without affecting other instances.
	hidden  []string
	visible []string
	appends []string
}

// New creates an empty model instance for the given definition.
func New(def *Definition) *Model {
	return &Model{
		def:        def,
		attributes: make(map[string]interface{}),
		hidden:     copyStrings(def.hidden),
		visible:    copyStrings(def.visible),
		appends:    copyStrings(def.appends),
	}
}

// NewWith creates a model and fills it with the given attributes, subject to
// the definition's mass-assignment policy.
func NewWith(def *Definition, attrs map[string]interface{}) (*Model, error) {
	return New(def).Fill(attrs)
}

// Definition returns the model's definition.
func (m *Model) Definition() *Definition {
	return m.def
}

// Fill applies the subset of attrs permitted by the fillable/guarded policy.
// Fillable keys are written through Set; non-fillable keys fail with a
// *MassAssignmentError when the model is totally guarded, and are skipped
// silently otherwise. Keys are processed in sorted order so a guard failure
// always names the same offending key for the same input. Returns the model
// for chaining.
func (m *Model) Fill(attrs map[string]interface{}) (*Model, error) {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if m.IsFillable(key) {
			m.Set(key, attrs[key])
			continue
		}
		if m.TotallyGuarded() {
			return m, &MassAssignmentError{Model: m.def.name, Key: key}
		}
		logDebug("skipping non-fillable attribute",
			zap.String("model", m.def.name),
			zap.String("key", key))
	}
	return m, nil
}

// ForceFill fills attrs with mass-assignment protection disabled. Protection
// is unconditionally re-enabled afterward, so nested force-fills are not
// reentrant; use only at the outermost call.
func (m *Model) ForceFill(attrs map[string]interface{}) *Model {
	Unguard()
	defer Reguard()

	m.Fill(attrs) //nolint:errcheck // cannot fail while unguarded
	return m
}

// Get returns the attribute value for key: the accessor result if one is
// registered (accessors take precedence over casts), else the cast value if
// a cast is declared, else the raw stored value. Absent attributes without an
// accessor yield nil.
func (m *Model) Get(key string) interface{} {
	raw := m.attributes[key]

	if acc, ok := m.def.accessors[key]; ok {
		return acc(m, raw)
	}
	if _, ok := m.def.casts[key]; ok {
		return m.castAttribute(key, raw)
	}
	return raw
}

// Set writes an attribute. A registered mutator takes over entirely: it is
// responsible for storing (or not storing) the value. Otherwise, values under
// a JSON-family cast are JSON-encoded before storage. Returns the model for
// chaining.
func (m *Model) Set(key string, value interface{}) *Model {
	if mut, ok := m.def.mutators[key]; ok {
		mut(m, value)
		return m
	}

	if tag, ok := m.def.casts[key]; ok && isJSONCast(tag) && value != nil {
		if data, err := json.Marshal(value); err == nil {
			value = string(data)
		}
	}

	m.attributes[key] = value
	return m
}

// SetRaw stores a value directly, bypassing mutators and casts. Intended for
// use inside mutators and for loading already-shaped data.
func (m *Model) SetRaw(key string, value interface{}) *Model {
	m.attributes[key] = value
	return m
}

// SetRawAttributes replaces the entire attribute mapping, bypassing mutators,
// casts, and the mass-assignment policy.
func (m *Model) SetRawAttributes(attrs map[string]interface{}) *Model {
	m.attributes = make(map[string]interface{}, len(attrs))
	for key, value := range attrs {
		m.attributes[key] = value
	}
	return m
}

// Has reports whether the attribute is considered set: present in storage, or
// backed by an accessor that returns non-nil.
func (m *Model) Has(key string) bool {
	if _, ok := m.attributes[key]; ok {
		return true
	}
	if acc, ok := m.def.accessors[key]; ok {
		return acc(m, nil) != nil
	}
	return false
}

// Remove deletes the attribute from storage.
func (m *Model) Remove(key string) {
	delete(m.attributes, key)
}

// Attributes returns a copy of the raw attribute mapping, with no casts or
// accessors applied.
func (m *Model) Attributes() map[string]interface{} {
	result := make(map[string]interface{}, len(m.attributes))
	for key, value := range m.attributes {
		result[key] = value
	}
	return result
}

// Only returns the raw values of the given keys, omitting absent ones.
func (m *Model) Only(keys ...string) map[string]interface{} {
	result := make(map[string]interface{}, len(keys))
	for _, key := range keys {
		if value, ok := m.attributes[key]; ok {
			result[key] = value
		}
	}
	return result
}

// Except returns a copy of the raw attribute mapping without the given keys.
func (m *Model) Except(keys ...string) map[string]interface{} {
	result := make(map[string]interface{}, len(m.attributes))
	for key, value := range m.attributes {
		if !containsString(keys, key) {
			result[key] = value
		}
	}
	return result
}
