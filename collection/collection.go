// Package collection provides an ordered, JSON-serializable wrapper around a
// slice of arbitrary values. It backs the "collection" attribute cast and is
// usable standalone for shaping decoded JSON arrays.
package collection

import (
	"encoding/json"
	"reflect"
)

// Collection is an ordered sequence of arbitrary values.
// The zero value is an empty collection ready for use.
type Collection struct {
	items []interface{}
}

// New creates a collection from the given items. The slice is copied so later
// mutation of the input does not affect the collection.
func New(items []interface{}) *Collection {
	copied := make([]interface{}, len(items))
	copy(copied, items)
	return &Collection{items: copied}
}

// FromJSON decodes a JSON array into a collection.
// Returns the decoder's error unchanged if data is not a valid JSON array.
func FromJSON(data []byte) (*Collection, error) {
	var items []interface{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return &Collection{items: items}, nil
}

// All returns the underlying items as a copied slice.
func (c *Collection) All() []interface{} {
	result := make([]interface{}, len(c.items))
	copy(result, c.items)
	return result
}

// Len returns the number of items.
func (c *Collection) Len() int {
	return len(c.items)
}

// IsEmpty returns true if the collection has no items.
func (c *Collection) IsEmpty() bool {
	return len(c.items) == 0
}

// At returns the item at index i, or nil if i is out of range.
func (c *Collection) At(i int) interface{} {
	if i < 0 || i >= len(c.items) {
		return nil
	}
	return c.items[i]
}

// First returns the first item, or nil if empty.
func (c *Collection) First() interface{} {
	return c.At(0)
}

// Last returns the last item, or nil if empty.
func (c *Collection) Last() interface{} {
	return c.At(len(c.items) - 1)
}

// Push appends items to the collection and returns it for chaining.
func (c *Collection) Push(items ...interface{}) *Collection {
	c.items = append(c.items, items...)
	return c
}

// Each calls fn for every item in order.
func (c *Collection) Each(fn func(i int, item interface{})) {
	for i, item := range c.items {
		fn(i, item)
	}
}

// Map returns a new collection with fn applied to every item.
func (c *Collection) Map(fn func(item interface{}) interface{}) *Collection {
	result := make([]interface{}, len(c.items))
	for i, item := range c.items {
		result[i] = fn(item)
	}
	return &Collection{items: result}
}

// Filter returns a new collection containing the items for which fn is true.
func (c *Collection) Filter(fn func(item interface{}) bool) *Collection {
	result := make([]interface{}, 0, len(c.items))
	for _, item := range c.items {
		if fn(item) {
			result = append(result, item)
		}
	}
	return &Collection{items: result}
}

// Contains reports whether any item is deeply equal to value.
func (c *Collection) Contains(value interface{}) bool {
	for _, item := range c.items {
		if reflect.DeepEqual(item, value) {
			return true
		}
	}
	return false
}

// ToJSON encodes the collection as a JSON array.
func (c *Collection) ToJSON() (string, error) {
	data, err := json.Marshal(c.items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MarshalJSON implements json.Marshaler; a collection serializes as a plain
// JSON array.
func (c *Collection) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}
