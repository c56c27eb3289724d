package model

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"

	"github.com/attrkit/attrkit/collection"
)

// Cast tags recognized by the attribute pipeline. Tags are matched after
// trimming and lowercasing; anything outside this vocabulary is a no-op.
const (
	CastInt        = "int"
	CastInteger    = "integer"
	CastReal       = "real"
	CastFloat      = "float"
	CastDouble     = "double"
	CastString     = "string"
	CastBool       = "bool"
	CastBoolean    = "boolean"
	CastObject     = "object"
	CastArray      = "array"
	CastJSON       = "json"
	CastCollection = "collection"
)

func normalizeCastTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// isJSONCast reports whether the tag stores its value JSON-encoded.
func isJSONCast(tag string) bool {
	switch normalizeCastTag(tag) {
	case CastObject, CastArray, CastJSON, CastCollection:
		return true
	}
	return false
}

// castAttribute applies the attribute's declared cast to value. Nil passes
// through unchanged; casts never apply to absent values. Unrecognized tags
// return the value unchanged.
func (m *Model) castAttribute(key string, value interface{}) interface{} {
	if value == nil {
		return nil
	}

	switch normalizeCastTag(m.def.casts[key]) {
	case CastInt, CastInteger:
		return cast.ToInt(value)
	case CastReal, CastFloat, CastDouble:
		return cast.ToFloat64(value)
	case CastString:
		return cast.ToString(value)
	case CastBool, CastBoolean:
		return cast.ToBool(value)
	case CastObject:
		return decodeJSONObject(value)
	case CastArray, CastJSON:
		return decodeJSONValue(value)
	case CastCollection:
		return decodeJSONCollection(value)
	default:
		return value
	}
}

// decodeJSONValue decodes a JSON-encoded string into a generic value. Decode
// failure yields nil, the decoder's failure value, propagated as-is.
func decodeJSONValue(value interface{}) interface{} {
	var decoded interface{}
	if err := json.Unmarshal([]byte(cast.ToString(value)), &decoded); err != nil {
		return nil
	}
	return decoded
}

// decodeJSONObject decodes a JSON-encoded string into a keyed map. Non-object
// JSON and decode failures yield nil.
func decodeJSONObject(value interface{}) interface{} {
	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(cast.ToString(value)), &decoded); err != nil {
		return nil
	}
	if decoded == nil {
		return nil
	}
	return decoded
}

// decodeJSONCollection decodes a JSON-encoded array and wraps it in a
// collection. Non-array JSON and decode failures yield nil.
func decodeJSONCollection(value interface{}) interface{} {
	c, err := collection.FromJSON([]byte(cast.ToString(value)))
	if err != nil {
		return nil
	}
	return c
}
