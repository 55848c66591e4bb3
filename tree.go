// Package tyrouter provides a typed URI router built around a
// type-indexed trie: a route's shape carries the types of its variables,
// and a successful match reconstructs the handler's argument vector
// without any cast that could fail silently.
package tyrouter

// trieNode is a node of the routing trie. The root node of a Router has no
// incoming edge; every other node is reached through exactly one edge
// (spec.md §3's "Trie node": route is the slot set once a route's full
// descriptor sequence has been consumed, edges are the node's outgoing
// transitions).
//
// Unlike the teacher's byte-indexed radix tree, edges here are compared
// structurally (literal string equality, or decoder witness identity) per
// spec.md §3, so they are kept as an ordered slice rather than a
// byte-indexed array: insertion order is itself the match-time precedence
// (spec.md §4.5), which a byte-indexed array would have to reconstruct.
type trieNode struct {
	route Route
	edges []trieEdge
}

type trieEdge struct {
	desc  descriptor
	child *trieNode
}

func newTrieNode() *trieNode {
	return &trieNode{}
}

// insert threads a route's flattened descriptor sequence into the trie
// rooted at n, creating new edges where no sibling edge's descriptor
// already matches (spec.md §4.3). If two routes reduce to the same
// descriptor sequence, the later insertion's route wins — last insertion
// wins, silently, per spec.md §4.3 step 3.
func (n *trieNode) insert(descs []descriptor, rt Route) {
	if len(descs) == 0 {
		n.route = rt
		return
	}
	d := descs[0]
	for i := range n.edges {
		if n.edges[i].desc.equalDesc(d) {
			n.edges[i].child.insert(descs[1:], rt)
			return
		}
	}
	child := newTrieNode()
	n.edges = append(n.edges, trieEdge{desc: d, child: child})
	child.insert(descs[1:], rt)
}

// walk matches the remaining token stream against n's subtree, collecting
// decoded values into bundle as Variable edges are traversed (spec.md
// §4.5). It tries n's edges in insertion order and commits to the first
// one that accepts the current token: once committed, it never backtracks
// to a sibling edge even if the committed branch ultimately fails to
// match, which is what keeps matching linear in the length of the URI and
// makes precedence a direct function of declaration order.
func (n *trieNode) walk(tokens []string, bundle []boundValue) (Route, []boundValue) {
	if len(tokens) == 0 {
		if n.route != nil {
			return n.route, bundle
		}
		// A FullSplat edge also matches zero remaining tokens.
		for _, e := range n.edges {
			if _, ok := e.desc.(fullSplatDescriptor); ok {
				return e.child.walk(nil, bundle)
			}
		}
		return nil, nil
	}

	tok := tokens[0]
	for _, e := range n.edges {
		switch d := e.desc.(type) {
		case literalDescriptor:
			if d.lit != tok {
				continue
			}
			return e.child.walk(tokens[1:], bundle)

		case variableDescriptor:
			v, ok := d.dec.decodeAny(tok)
			if !ok {
				continue
			}
			next := append(append([]boundValue{}, bundle...), boundValue{w: d.dec.witness(), v: v})
			return e.child.walk(tokens[1:], next)

		case trailingSlashDescriptor:
			if tok != "" {
				continue
			}
			return e.child.walk(tokens[1:], bundle)

		case fullSplatDescriptor:
			return e.child.walk(nil, bundle)
		}
	}
	return nil, nil
}

// routes walks n's subtree in edge insertion order, appending each
// reachable route to out (a node's own route before those of its
// children). It backs Dump's read-only introspection of the compiled table.
func (n *trieNode) routes(out *[]Route) {
	if n.route != nil {
		*out = append(*out, n.route)
	}
	for _, e := range n.edges {
		e.child.routes(out)
	}
}
