package tyrouter

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Router is a compiled, immutable routing table. It is safe to share
// across goroutines: every value reachable from a *Router is either a
// fixed-size slice built once by Create, a pure decoder, or a Route's
// closure over its declared handler (spec.md §5).
type Router struct {
	root *trieNode
}

// Create builds a Router from routes. Every route is validated — a nil
// Route is rejected, and a non-nil Route's declared arity is cross-checked
// against its own shape's Variable count as a defense against a Route
// value assembled outside the RouteN constructors — and every defect
// found is aggregated into a single returned error via go-multierror, so a
// caller assembling a large static table sees every problem in one pass
// rather than stopping at the first (spec.md §7's construction-error
// regime, extended per SPEC_FULL.md §4.7). Insertion order is preserved
// and becomes match-time precedence (spec.md §4.3, §4.5).
func Create(routes ...Route) (*Router, error) {
	root := newTrieNode()

	var errs *multierror.Error
	for i, rt := range routes {
		if rt == nil {
			errs = multierror.Append(errs, &ConstructionError{RouteIndex: i, Message: "route is nil"})
			continue
		}
		if got, want := countVariables(rt.shape()), rt.arity(); got != want {
			errs = multierror.Append(errs, &ConstructionError{
				RouteIndex: i,
				Message:    fmt.Sprintf("shape declares %d variable(s) but route was built for %d argument(s)", got, want),
			})
			continue
		}
		root.insert(rt.shape(), rt)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &Router{root: root}, nil
}

// Match tokenizes uri and walks the compiled trie, returning the matched
// route's handler result. The second return value reports whether a
// route matched at all; (nil, false) means no route accepted uri, which
// is not an error (spec.md §4.5, §7).
func (r *Router) Match(uri string) (result any, ok bool) {
	tokens, tokenizeOK := tokenize(uri)
	if !tokenizeOK {
		return nil, false
	}
	rt, bundle := r.root.walk(tokens, nil)
	if rt == nil {
		return nil, false
	}
	return rt.invoke(bundle), true
}
