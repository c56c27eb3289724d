package model

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Decode unmarshals the exported attribute mapping into target, which must be
// a non-nil pointer to a struct. Field names are matched via the "attr" tag,
// falling back to case-insensitive field names. Input is weakly typed, so
// string-stored numbers decode into numeric fields.
func (m *Model) Decode(target interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "attr",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(m.ToArray()); err != nil {
		return fmt.Errorf("decode failed for model %s: %w", m.def.name, err)
	}
	return nil
}
