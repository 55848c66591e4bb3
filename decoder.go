package tyrouter

import "strconv"

// Decoder is a named, typed parser from a single path/query token to an
// optional value of type T. Name is used only for diagnostics and for
// display in a RouteTableDump; it plays no part in matching.
//
// Decode must be a pure, total function: it never panics, and it returns
// ok == false instead of an error for a token it cannot parse.
type Decoder[T any] struct {
	Name     string
	decodeFn func(string) (T, bool)
	witness  Witness
}

// NewDecoder constructs a Decoder[T], allocating a fresh Witness for it.
// Every Decoder created this way — including distinct calls with the same
// T — carries its own witness, so two Decoder[int] values built from two
// separate NewDecoder calls are never interchangeable at a trie edge.
func NewDecoder[T any](name string, decode func(string) (T, bool)) *Decoder[T] {
	return &Decoder[T]{
		Name:     name,
		decodeFn: decode,
		witness:  newWitness(),
	}
}

// Witness returns d's type witness.
func (d *Decoder[T]) Witness() Witness {
	return d.witness
}

// Decode applies d's decode function to token.
func (d *Decoder[T]) Decode(token string) (T, bool) {
	return d.decodeFn(token)
}

// decodeAny is the type-erased entry point used by the trie walk, which
// must hold decoders of differing T in the same edge list.
func (d *Decoder[T]) decodeAny(token string) (any, bool) {
	v, ok := d.decodeFn(token)
	if !ok {
		return nil, false
	}
	return v, true
}

// anyDecoder is the type-erased view of a Decoder[T] the trie and matcher
// operate on. *Decoder[T] does not implement it itself; eraseDecoder wraps
// a *Decoder[T] in a decoderAdapter[T], which does, for every T.
type anyDecoder interface {
	decodeAny(token string) (any, bool)
	witness() Witness
	name() string
}

// decoderAdapter adapts a *Decoder[T] to anyDecoder. It exists because
// Decoder[T] already has a field named witness, so the interface's
// witness() method can't be implemented directly on *Decoder[T].
var _ anyDecoder = (*decoderAdapter[int])(nil)
type decoderAdapter[T any] struct {
	d *Decoder[T]
}

func (a *decoderAdapter[T]) decodeAny(token string) (any, bool) { return a.d.decodeAny(token) }
func (a *decoderAdapter[T]) witness() Witness                   { return a.d.witness }
func (a *decoderAdapter[T]) name() string                       { return a.d.Name }

func eraseDecoder[T any](d *Decoder[T]) anyDecoder {
	return &decoderAdapter[T]{d: d}
}

// toToken converts a string token to a primitive type T, reporting whether
// the conversion succeeded. It backs the built-in decoders below.
func toToken[T any](s string) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case int:
		v, err := strconv.Atoi(s)
		return any(v).(T), err == nil
	case int32:
		v, err := strconv.ParseInt(s, 10, 32)
		return any(int32(v)).(T), err == nil
	case int64:
		v, err := strconv.ParseInt(s, 10, 64)
		return any(v).(T), err == nil
	case float64:
		v, err := strconv.ParseFloat(s, 64)
		return any(v).(T), err == nil
	case bool:
		v, err := strconv.ParseBool(s)
		return any(v).(T), err == nil
	case string:
		return any(s).(T), true
	default:
		return zero, false
	}
}

// Built-in decoders. Each is constructed exactly once at package init, so
// every route in every router that references, say, Int shares the same
// witness — the "single canonical construction per primitive type"
// invariant spec.md's data model relies on.
var (
	// Int decodes a base-10 signed integer (Go int).
	Int = NewDecoder("int", func(s string) (int, bool) { return toToken[int](s) })

	// Int32 decodes a base-10 signed 32-bit integer.
	Int32 = NewDecoder("int32", func(s string) (int32, bool) { return toToken[int32](s) })

	// Int64 decodes a base-10 signed 64-bit integer.
	Int64 = NewDecoder("int64", func(s string) (int64, bool) { return toToken[int64](s) })

	// Float decodes a 64-bit floating point number.
	Float = NewDecoder("float", func(s string) (float64, bool) { return toToken[float64](s) })

	// Bool decodes "true"/"false" (and strconv.ParseBool's other spellings).
	Bool = NewDecoder("bool", func(s string) (bool, bool) { return toToken[bool](s) })

	// String decodes any token as itself; it never rejects a token.
	String = NewDecoder("string", func(s string) (string, bool) { return s, true })
)
