package tyrouter

import "reflect"

// Handler-arity/type correspondence (spec.md §3's Route invariant) is
// enforced here, at construction time: a RouteN constructor only accepts a
// handler whose parameter list the Go compiler has already matched against
// the generic type arguments, and additionally checks at the value level
// that the shape declares exactly N Variable descriptors.

// boundValue is one entry of the decoded value bundle collected during a
// trie walk: the witness of the decoder that produced it, and the value
// itself (spec.md §3's "Decoded value bundle").
type boundValue struct {
	w Witness
	v any
}

// Route pairs a Shape with a handler whose arity and argument types match
// the shape's Variable descriptors. It is produced by Route0..Route4 and
// consumed only by Create; nothing outside this package constructs one
// directly.
type Route interface {
	shape() []descriptor
	invoke(bundle []boundValue) any
	resultTypeName() string
	arity() int
}

type routeImpl struct {
	descs      []descriptor
	run        func(args []any) any
	resultType reflect.Type
	wantArity  int
}

func (r *routeImpl) shape() []descriptor { return r.descs }

// arity reports the argument count this route was built for. Create
// cross-checks it against the shape's own Variable count as a defensive
// measure against a Route value assembled outside the RouteN constructors,
// which are otherwise the only place this correspondence is established.
func (r *routeImpl) arity() int { return r.wantArity }

// resultTypeName reports the handler's declared return type, for display
// in a RouteTableDump only; it plays no part in matching or dispatch.
func (r *routeImpl) resultTypeName() string { return r.resultType.String() }

func resultTypeOf[R any]() reflect.Type {
	return reflect.TypeFor[R]()
}

// invoke walks r's descriptors in parallel with the collected bundle,
// consuming one bundle entry per Variable descriptor and checking that its
// witness matches the one the shape declares at that position (spec.md
// §4.6). A mismatch can only happen if the trie itself is corrupted — it
// is not a recoverable condition, so it panics rather than returning an
// error.
func (r *routeImpl) invoke(bundle []boundValue) any {
	args := make([]any, 0, len(bundle))
	bi := 0
	for _, d := range r.descs {
		vd, ok := d.(variableDescriptor)
		if !ok {
			continue
		}
		if bi >= len(bundle) {
			panic("tyrouter: decoded value bundle shorter than shape's variable count (corrupted trie)")
		}
		bound := bundle[bi]
		if !bound.w.Equal(vd.dec.witness()) {
			panic("tyrouter: witness mismatch during handler dispatch (corrupted trie)")
		}
		args = append(args, bound.v)
		bi++
	}
	return r.run(args)
}

func validateArity(shape Shape, want int) error {
	if got := shape.variableCount(); got != want {
		return newConstructionError(
			"shape declares %d variable(s) but handler takes %d argument(s)", got, want)
	}
	return nil
}

// Route0 builds a Route from a shape with no Variable descriptors and a
// niladic handler.
func Route0[R any](shape Shape, h func() R) (Route, error) {
	if h == nil {
		return nil, newConstructionError("handler is nil")
	}
	if err := validateArity(shape, 0); err != nil {
		return nil, err
	}
	run := func(args []any) any { return h() }
	return &routeImpl{descs: shape.descriptors, run: run, resultType: resultTypeOf[R](), wantArity: 0}, nil
}

// Route1 builds a Route from a shape with exactly one Variable descriptor
// and a unary handler.
func Route1[A, R any](shape Shape, h func(A) R) (Route, error) {
	if h == nil {
		return nil, newConstructionError("handler is nil")
	}
	if err := validateArity(shape, 1); err != nil {
		return nil, err
	}
	run := func(args []any) any { return h(args[0].(A)) }
	return &routeImpl{descs: shape.descriptors, run: run, resultType: resultTypeOf[R](), wantArity: 1}, nil
}

// Route2 builds a Route from a shape with exactly two Variable descriptors
// and a binary handler.
func Route2[A, B, R any](shape Shape, h func(A, B) R) (Route, error) {
	if h == nil {
		return nil, newConstructionError("handler is nil")
	}
	if err := validateArity(shape, 2); err != nil {
		return nil, err
	}
	run := func(args []any) any { return h(args[0].(A), args[1].(B)) }
	return &routeImpl{descs: shape.descriptors, run: run, resultType: resultTypeOf[R](), wantArity: 2}, nil
}

// Route3 builds a Route from a shape with exactly three Variable
// descriptors and a ternary handler.
func Route3[A, B, C, R any](shape Shape, h func(A, B, C) R) (Route, error) {
	if h == nil {
		return nil, newConstructionError("handler is nil")
	}
	if err := validateArity(shape, 3); err != nil {
		return nil, err
	}
	run := func(args []any) any { return h(args[0].(A), args[1].(B), args[2].(C)) }
	return &routeImpl{descs: shape.descriptors, run: run, resultType: resultTypeOf[R](), wantArity: 3}, nil
}

// Route4 builds a Route from a shape with exactly four Variable
// descriptors and a quaternary handler.
func Route4[A, B, C, D, R any](shape Shape, h func(A, B, C, D) R) (Route, error) {
	if h == nil {
		return nil, newConstructionError("handler is nil")
	}
	if err := validateArity(shape, 4); err != nil {
		return nil, err
	}
	run := func(args []any) any {
		return h(args[0].(A), args[1].(B), args[2].(C), args[3].(D))
	}
	return &routeImpl{descs: shape.descriptors, run: run, resultType: resultTypeOf[R](), wantArity: 4}, nil
}
