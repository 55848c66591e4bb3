package tyrouter

// DescriptorDump is a serialization-friendly summary of one component
// descriptor (spec.md §3). It carries no behavior and is never consulted
// by matching — it exists purely for introspection and debugging tools
// built on top of this library.
type DescriptorDump struct {
	Kind    string `json:"kind" xml:"kind" yaml:"kind" toml:"kind" cbor:"kind"`
	Literal string `json:"literal,omitempty" xml:"literal,omitempty" yaml:"literal,omitempty" toml:"literal,omitempty" cbor:"literal,omitempty"`
	Decoder string `json:"decoder,omitempty" xml:"decoder,omitempty" yaml:"decoder,omitempty" toml:"decoder,omitempty" cbor:"decoder,omitempty"`
}

// RouteDump is the descriptor sequence of one compiled route, in
// declaration order, plus the handler's declared return type for display.
// ResultType is best-effort and cosmetic only — it is captured via
// reflection once, when the route is constructed, and never consulted by
// matching or dispatch.
type RouteDump struct {
	Path       []DescriptorDump `json:"path" xml:"path" yaml:"path" toml:"path" cbor:"path"`
	ResultType string           `json:"resultType" xml:"resultType" yaml:"resultType" toml:"resultType" cbor:"resultType"`
}

// RouteTableDump is a read-only snapshot of every route reachable in a
// compiled Router's trie, in trie insertion order (spec.md §4.3's
// insertion-order precedence, surfaced here for display rather than for
// matching).
type RouteTableDump struct {
	Routes []RouteDump `json:"routes" xml:"routes" yaml:"routes" toml:"routes" cbor:"routes"`
}

// Dump walks r's compiled trie and returns a snapshot of every reachable
// route. It allocates a fresh result on every call and shares no state
// with r or with other Dump calls, so it is safe to call concurrently
// with Match and with other Dump calls (spec.md §5).
func (r *Router) Dump() RouteTableDump {
	var routes []Route
	r.root.routes(&routes)

	dump := RouteTableDump{Routes: make([]RouteDump, 0, len(routes))}
	for _, rt := range routes {
		descs := rt.shape()
		path := make([]DescriptorDump, 0, len(descs))
		for _, d := range descs {
			path = append(path, d.describe())
		}
		dump.Routes = append(dump.Routes, RouteDump{Path: path, ResultType: rt.resultTypeName()})
	}
	return dump
}

// Encode marshals d with an arbitrary EncoderFunc, letting a caller
// supply a codec none of the named convenience methods cover.
func (d RouteTableDump) Encode(enc EncoderFunc) ([]byte, error) {
	return enc(d)
}

// EncodeJSON marshals d with JSONCodec.
func (d RouteTableDump) EncodeJSON() ([]byte, error) {
	return d.Encode(JSONCodec)
}

// EncodeXML marshals d with XMLCodec.
func (d RouteTableDump) EncodeXML() ([]byte, error) {
	return d.Encode(XMLCodec)
}

// EncodeYAML marshals d with YAMLCodec.
func (d RouteTableDump) EncodeYAML() ([]byte, error) {
	return d.Encode(YAMLCodec)
}

// EncodeTOML marshals d with TOMLCodec.
func (d RouteTableDump) EncodeTOML() ([]byte, error) {
	return d.Encode(TOMLCodec)
}

// EncodeCBOR marshals d with CBORCodec.
func (d RouteTableDump) EncodeCBOR() ([]byte, error) {
	return d.Encode(CBORCodec)
}
