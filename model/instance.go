package model

// NewInstance creates an empty model sharing this model's definition.
func (m *Model) NewInstance() *Model {
	return New(m.def)
}

// Hydrate maps a list of raw attribute mappings into model instances of the
// given definition. Values are loaded as already-shaped data, bypassing the
// mass-assignment policy and mutators, the way records come back from
// storage.
func Hydrate(def *Definition, items []map[string]interface{}) []*Model {
	models := make([]*Model, len(items))
	for i, attrs := range items {
		models[i] = New(def).SetRawAttributes(attrs)
	}
	return models
}

// Replicate clones the current attributes, minus the excluded keys, into a
// fresh instance via Fill, producing a not-yet-persisted copy subject to the
// usual mass-assignment policy.
func (m *Model) Replicate(except ...string) (*Model, error) {
	return m.NewInstance().Fill(m.Except(except...))
}
