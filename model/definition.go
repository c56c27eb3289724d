package model

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	utilstrings "github.com/attrkit/attrkit/internal/util/strings"
)

// Accessor transforms the raw stored value of an attribute on read. The raw
// value is nil when the attribute has no backing storage (appends).
type Accessor func(m *Model, value interface{}) interface{}

// Mutator intercepts an attribute write. A mutator is fully responsible for
// storing (or not storing) the attribute, typically via SetRaw.
type Mutator func(m *Model, value interface{})

// Definition carries the per-type configuration of a model: mass-assignment
// policy, serialization visibility, casts, and registered accessors/mutators.
// A Definition is built once (typically at package init) and shared by every
// instance of the type; it must not be modified after instances exist.
type Definition struct {
	name string

	fillable []string
	guarded  []string
	hidden   []string
	visible  []string
	appends  []string
	casts    map[string]string

	accessors     map[string]Accessor
	mutators      map[string]Mutator
	accessorOrder []string

	// Accessor-attribute list, computed lazily once and never invalidated.
	mutatedMu    sync.Mutex
	mutated      []string
	mutatedBuilt bool
}

// definitions is the process-wide registry of model definitions, keyed by
// definition name.
var definitions = struct {
	mu    sync.RWMutex
	byName map[string]*Definition
}{byName: make(map[string]*Definition)}

// snakeNames controls how AccessorMethod and MutatorMethod derive attribute
// names from Studly method names. Default on: getFirstNameAttribute maps to
// "first_name" rather than "firstName".
var snakeNames atomic.Bool

func init() {
	snakeNames.Store(true)
}

// SetSnakeAttributeNames toggles snake_case attribute-name derivation.
func SetSnakeAttributeNames(enabled bool) {
	snakeNames.Store(enabled)
}

// SnakeAttributeNames returns the current derivation mode.
func SnakeAttributeNames() bool {
	return snakeNames.Load()
}

// Define creates a definition with the given name and registers it, replacing
// any prior definition under that name.
func Define(name string) *Definition {
	def := &Definition{
		name:      name,
		casts:     make(map[string]string),
		accessors: make(map[string]Accessor),
		mutators:  make(map[string]Mutator),
	}

	definitions.mu.Lock()
	definitions.byName[name] = def
	definitions.mu.Unlock()

	return def
}

// Lookup retrieves a registered definition by name.
func Lookup(name string) (*Definition, bool) {
	definitions.mu.RLock()
	defer definitions.mu.RUnlock()

	def, ok := definitions.byName[name]
	return def, ok
}

// ResetDefinitions clears the definition registry. Useful in tests.
func ResetDefinitions() {
	definitions.mu.Lock()
	defer definitions.mu.Unlock()

	definitions.byName = make(map[string]*Definition)
}

// Name returns the definition's registered name.
func (d *Definition) Name() string {
	return d.name
}

// Fillable declares the attributes that may be mass-assigned. An empty list
// means all non-guarded attributes are fillable.
func (d *Definition) Fillable(keys ...string) *Definition {
	d.fillable = append(d.fillable, keys...)
	return d
}

// Guarded declares attributes that may never be mass-assigned. The single
// entry "*" guards every attribute.
func (d *Definition) Guarded(keys ...string) *Definition {
	d.guarded = append(d.guarded, keys...)
	return d
}

// Hidden declares attributes excluded from array/JSON export.
func (d *Definition) Hidden(keys ...string) *Definition {
	d.hidden = append(d.hidden, keys...)
	return d
}

// Visible declares the only attributes included in array/JSON export. A
// non-empty visible list takes priority over the hidden list.
func (d *Definition) Visible(keys ...string) *Definition {
	d.visible = append(d.visible, keys...)
	return d
}

// Appends declares attributes with no backing storage that are resolved via
// their accessor and added to the exported view.
func (d *Definition) Appends(keys ...string) *Definition {
	d.appends = append(d.appends, keys...)
	return d
}

// Cast declares a cast for the attribute. Unrecognized tags are inert.
func (d *Definition) Cast(key, tag string) *Definition {
	d.casts[key] = tag
	return d
}

// Casts declares multiple casts at once.
func (d *Definition) Casts(casts map[string]string) *Definition {
	for key, tag := range casts {
		d.casts[key] = tag
	}
	return d
}

// Accessor registers a read accessor for the attribute.
func (d *Definition) Accessor(key string, fn Accessor) *Definition {
	if _, exists := d.accessors[key]; !exists {
		d.accessorOrder = append(d.accessorOrder, key)
	}
	d.accessors[key] = fn
	return d
}

// Mutator registers a write mutator for the attribute.
func (d *Definition) Mutator(key string, fn Mutator) *Definition {
	d.mutators[key] = fn
	return d
}

// AccessorMethod registers an accessor under the attribute name derived from
// a conventional method name: "getFirstNameAttribute" becomes "first_name"
// (or "firstName" with snake naming off). Panics if the name does not match
// the get...Attribute pattern.
func (d *Definition) AccessorMethod(method string, fn Accessor) *Definition {
	attr, ok := attributeFromMethod(method, "get")
	if !ok {
		panic(fmt.Sprintf("model: %q does not match the get<Name>Attribute pattern", method))
	}
	return d.Accessor(attr, fn)
}

// MutatorMethod registers a mutator under the attribute name derived from a
// conventional method name: "setFirstNameAttribute" becomes "first_name".
// Panics if the name does not match the set...Attribute pattern.
func (d *Definition) MutatorMethod(method string, fn Mutator) *Definition {
	attr, ok := attributeFromMethod(method, "set")
	if !ok {
		panic(fmt.Sprintf("model: %q does not match the set<Name>Attribute pattern", method))
	}
	return d.Mutator(attr, fn)
}

// attributeFromMethod extracts the attribute name from a method name of the
// form prefix + StudlyName + "Attribute". The match is case-sensitive on the
// prefix and suffix.
func attributeFromMethod(method, prefix string) (string, bool) {
	const suffix = "Attribute"
	if !strings.HasPrefix(method, prefix) || !strings.HasSuffix(method, suffix) {
		return "", false
	}
	captured := method[len(prefix) : len(method)-len(suffix)]
	if captured == "" {
		return "", false
	}

	if SnakeAttributeNames() {
		captured = utilstrings.ToSnakeCase(captured)
	}
	return utilstrings.LowerFirst(captured), true
}

// MutatedAttributes returns the attribute names that have a registered
// accessor, in registration order. The list is computed on first call and
// cached for the definition's lifetime; accessors registered afterward are
// not reflected.
func (d *Definition) MutatedAttributes() []string {
	d.mutatedMu.Lock()
	defer d.mutatedMu.Unlock()

	if !d.mutatedBuilt {
		d.mutated = make([]string, len(d.accessorOrder))
		copy(d.mutated, d.accessorOrder)
		d.mutatedBuilt = true
	}

	result := make([]string, len(d.mutated))
	copy(result, d.mutated)
	return result
}

// HasAccessor returns true if the attribute has a registered accessor.
func (d *Definition) HasAccessor(key string) bool {
	_, ok := d.accessors[key]
	return ok
}

// HasMutator returns true if the attribute has a registered mutator.
func (d *Definition) HasMutator(key string) bool {
	_, ok := d.mutators[key]
	return ok
}

// GetFillable returns a copy of the fillable list.
func (d *Definition) GetFillable() []string {
	return copyStrings(d.fillable)
}

// GetGuarded returns a copy of the guarded list.
func (d *Definition) GetGuarded() []string {
	return copyStrings(d.guarded)
}

// GetHidden returns a copy of the hidden list.
func (d *Definition) GetHidden() []string {
	return copyStrings(d.hidden)
}

// GetVisible returns a copy of the visible list.
func (d *Definition) GetVisible() []string {
	return copyStrings(d.visible)
}

// GetAppends returns a copy of the appends list.
func (d *Definition) GetAppends() []string {
	return copyStrings(d.appends)
}

// GetCasts returns a copy of the casts mapping.
func (d *Definition) GetCasts() map[string]string {
	result := make(map[string]string, len(d.casts))
	for key, tag := range d.casts {
		result[key] = tag
	}
	return result
}

func copyStrings(list []string) []string {
	result := make([]string, len(list))
	copy(result, list)
	return result
}
