package editor

import (
	"fmt"
	"strconv"
)

// OutputBuilder collects raw answers and assembles the finished record.
//
// SetValue parses raw for key and stores it; on error the previous value is
// kept. Current returns the stored value formatted for display. Build fails
// with a *MissingError if any field was never set.
type OutputBuilder[K any, O any] interface {
	SetValue(key K, raw string) error
	Current(key K) (string, bool)
	Build() (O, error)
}

// Kind is the declared type of a field.
type Kind int

const (
	// KindText accepts any answer as-is.
	KindText Kind = iota

	// KindInt requires a base 10 integer within [Min, Max].
	KindInt
)

// Field describes one slot of a record.
type Field[K comparable] struct {
	Key K

	// Name is the noun used in error messages, e.g. "number of tracks".
	Name string

	Kind Kind

	// Min and Max bound KindInt values. Max of 0 means no upper bound.
	Min int
	Max int
}

// Parse converts raw into a Value according to the field's kind.
func (f Field[K]) Parse(raw string) (Value, error) {
	if f.Kind == KindText {
		return TextValue(raw), nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return Value{}, newParseError(f.Name, err)
	}
	if f.Max == 0 && n < f.Min {
		return Value{}, newParseError(f.Name, fmt.Errorf("%w: %d is less than %d", ErrOutOfRange, n, f.Min))
	}
	if f.Max != 0 && (n < f.Min || n > f.Max) {
		return Value{}, newParseError(f.Name, fmt.Errorf("%w: %d is not between %d and %d", ErrOutOfRange, n, f.Min, f.Max))
	}
	return IntValue(n), nil
}

// Schema is the ordered list of fields of a record kind. The order is the
// order in which a session asks for them.
type Schema[K comparable] []Field[K]

// Keys returns the field keys in order.
func (s Schema[K]) Keys() []K {
	keys := make([]K, len(s))
	for i, f := range s {
		keys[i] = f.Key
	}
	return keys
}

// Field returns the description of key.
func (s Schema[K]) Field(key K) (Field[K], bool) {
	for _, f := range s {
		if f.Key == key {
			return f, true
		}
	}
	return Field[K]{}, false
}

// Value is a typed field value, either text or an integer.
type Value struct {
	kind Kind
	text string
	num  int
}

// TextValue wraps a string.
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// IntValue wraps an integer.
func IntValue(n int) Value {
	return Value{kind: KindInt, num: n}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// Text returns the text of a KindText value.
func (v Value) Text() string {
	return v.text
}

// Int returns the integer of a KindInt value.
func (v Value) Int() int {
	return v.num
}

// String formats the value the way it is pre-filled in a prompt.
func (v Value) String() string {
	if v.kind == KindInt {
		return strconv.Itoa(v.num)
	}
	return v.text
}

// Record is a partial record: each field is either absent or holds a value.
type Record[K comparable] struct {
	values map[K]Value
}

// NewRecord creates an empty Record.
func NewRecord[K comparable]() *Record[K] {
	return &Record[K]{values: make(map[K]Value)}
}

// Set stores v for key.
func (r *Record[K]) Set(key K, v Value) {
	if r.values == nil {
		r.values = make(map[K]Value)
	}
	r.values[key] = v
}

// SetText is shorthand for Set(key, TextValue(s)).
func (r *Record[K]) SetText(key K, s string) {
	r.Set(key, TextValue(s))
}

// SetInt is shorthand for Set(key, IntValue(n)).
func (r *Record[K]) SetInt(key K, n int) {
	r.Set(key, IntValue(n))
}

// Get returns the value of key, if set.
func (r *Record[K]) Get(key K) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is set.
func (r *Record[K]) Has(key K) bool {
	_, ok := r.values[key]
	return ok
}

// Text returns the text stored for key, or "" if unset.
func (r *Record[K]) Text(key K) string {
	return r.values[key].text
}

// Int returns the integer stored for key, or 0 if unset.
func (r *Record[K]) Int(key K) int {
	return r.values[key].num
}

// Current implements Defaults.
func (r *Record[K]) Current(key K) (string, bool) {
	v, ok := r.values[key]
	if !ok {
		return "", false
	}
	return v.String(), true
}

// Clone returns an independent copy of r.
func (r *Record[K]) Clone() *Record[K] {
	c := NewRecord[K]()
	for k, v := range r.values {
		c.values[k] = v
	}
	return c
}

// Builder is the schema-driven OutputBuilder shared by every record kind.
//
// assemble converts a complete Record into the kind's finished type; it is
// only called after every schema field is known to be set.
type Builder[K comparable, O any] struct {
	schema   Schema[K]
	record   *Record[K]
	assemble func(*Record[K]) O
}

// NewBuilder creates a Builder seeded with seed. seed may be nil.
func NewBuilder[K comparable, O any](schema Schema[K], seed *Record[K], assemble func(*Record[K]) O) *Builder[K, O] {
	record := NewRecord[K]()
	if seed != nil {
		record = seed.Clone()
	}
	return &Builder[K, O]{
		schema:   schema,
		record:   record,
		assemble: assemble,
	}
}

// SetValue implements OutputBuilder.
func (b *Builder[K, O]) SetValue(key K, raw string) error {
	field, ok := b.schema.Field(key)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownField, key)
	}
	v, err := field.Parse(raw)
	if err != nil {
		return err
	}
	b.record.Set(key, v)
	return nil
}

// Current implements OutputBuilder.
func (b *Builder[K, O]) Current(key K) (string, bool) {
	return b.record.Current(key)
}

// Record returns the partial record being built.
func (b *Builder[K, O]) Record() *Record[K] {
	return b.record
}

// Build implements OutputBuilder. The first unset field in schema order is
// reported as a *MissingError.
func (b *Builder[K, O]) Build() (O, error) {
	for _, f := range b.schema {
		if !b.record.Has(f.Key) {
			var zero O
			return zero, &MissingError{Field: f.Name}
		}
	}
	return b.assemble(b.record), nil
}
