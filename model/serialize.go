package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/attrkit/attrkit/collection"
)

// Arrayable is implemented by values that can convert themselves to an
// attribute mapping. Accessor results implementing it are flattened during
// export, which supports nested model export.
type Arrayable interface {
	ToArray() map[string]interface{}
}

// JSONFlags controls ToJSON formatting.
type JSONFlags uint

const (
	// JSONPretty indents the output.
	JSONPretty JSONFlags = 1 << iota
	// JSONEscapeHTML escapes <, >, and & in strings. Off by default.
	JSONEscapeHTML
)

// SetHidden replaces this instance's hidden list.
func (m *Model) SetHidden(keys ...string) *Model {
	m.hidden = copyStrings(keys)
	return m
}

// AddHidden appends keys to this instance's hidden list.
func (m *Model) AddHidden(keys ...string) *Model {
	m.hidden = append(m.hidden, keys...)
	return m
}

// SetVisible replaces this instance's visible list.
func (m *Model) SetVisible(keys ...string) *Model {
	m.visible = copyStrings(keys)
	return m
}

// AddVisible appends keys to this instance's visible list.
func (m *Model) AddVisible(keys ...string) *Model {
	m.visible = append(m.visible, keys...)
	return m
}

// SetAppends replaces this instance's appends list.
func (m *Model) SetAppends(keys ...string) *Model {
	m.appends = copyStrings(keys)
	return m
}

// AttributesToArray exports the attribute mapping with visibility filtering,
// accessors, and casts applied, plus the appended attributes. Accessors take
// precedence over casts. An appended attribute with no registered accessor is
// a programming error and panics.
func (m *Model) AttributesToArray() map[string]interface{} {
	attrs := m.arrayableAttributes()

	mutated := m.def.MutatedAttributes()
	for _, key := range mutated {
		raw, ok := attrs[key]
		if !ok {
			continue
		}
		attrs[key] = m.mutateAttributeForArray(key, raw)
	}

	for key := range m.def.casts {
		value, ok := attrs[key]
		if !ok || containsString(mutated, key) {
			continue
		}
		attrs[key] = m.castAttribute(key, value)
	}

	for _, key := range m.arrayableAppends() {
		if !m.def.HasAccessor(key) {
			panic(fmt.Sprintf("model %s: appended attribute %q has no registered accessor", m.def.name, key))
		}
		attrs[key] = m.mutateAttributeForArray(key, nil)
	}

	return attrs
}

// ToArray exports the model as an attribute mapping.
func (m *Model) ToArray() map[string]interface{} {
	return m.AttributesToArray()
}

// ToJSON encodes the exported attribute mapping as JSON text, honoring the
// formatting flags. Encode failure is reported as an error, never a panic.
func (m *Model) ToJSON(flags JSONFlags) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(flags&JSONEscapeHTML != 0)
	if flags&JSONPretty != 0 {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(m.ToArray()); err != nil {
		return "", fmt.Errorf("failed to encode model %s: %w", m.def.name, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// String renders the model as compact JSON, degrading to an empty string if
// encoding fails.
func (m *Model) String() string {
	s, err := m.ToJSON(0)
	if err != nil {
		return ""
	}
	return s
}

// mutateAttributeForArray invokes the accessor and flattens Arrayable and
// collection results into plain data.
func (m *Model) mutateAttributeForArray(key string, raw interface{}) interface{} {
	value := m.def.accessors[key](m, raw)

	switch v := value.(type) {
	case Arrayable:
		return v.ToArray()
	case *collection.Collection:
		return v.All()
	}
	return value
}

// arrayableAttributes returns the filtered raw attribute mapping: the visible
// list, when non-empty, restricts export to its members; otherwise hidden
// keys are excluded.
func (m *Model) arrayableAttributes() map[string]interface{} {
	result := make(map[string]interface{}, len(m.attributes))

	if len(m.visible) > 0 {
		for _, key := range m.visible {
			if value, ok := m.attributes[key]; ok {
				result[key] = value
			}
		}
		return result
	}

	for key, value := range m.attributes {
		if !containsString(m.hidden, key) {
			result[key] = value
		}
	}
	return result
}

// arrayableAppends filters the appends list through the same visibility rules
// as stored attributes.
func (m *Model) arrayableAppends() []string {
	if len(m.appends) == 0 {
		return nil
	}

	result := make([]string, 0, len(m.appends))
	for _, key := range m.appends {
		if len(m.visible) > 0 {
			if containsString(m.visible, key) {
				result = append(result, key)
			}
			continue
		}
		if !containsString(m.hidden, key) {
			result = append(result, key)
		}
	}
	return result
}
