package tyrouter

import (
	"encoding/xml"

	"github.com/bytedance/sonic"
	"github.com/fxamacker/cbor/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EncoderFunc defines a function signature used for encoding a Go value
// into a specific wire format, such as JSON, XML, or other content types.
// It takes a value of any type and returns the encoded byte slice or an
// error if encoding fails.
//
// RouteTableDump's Encode method accepts an EncoderFunc so a caller can
// plug in a codec of their own choosing, in addition to the named
// EncodeJSON/EncodeXML/EncodeYAML/EncodeTOML/EncodeCBOR convenience
// methods built from the codecs below.
type EncoderFunc func(v any) ([]byte, error)

// Named codecs, one per wire format a RouteTableDump can be rendered as.
// Each wraps a single marshal function from a format-specific library
// rather than hand-rolling a serializer, matching how the rest of this
// module favors a dedicated dependency over a bespoke encoder.
var (
	// JSONCodec marshals with the high-performance sonic encoder.
	JSONCodec EncoderFunc = sonic.Marshal

	// XMLCodec marshals with the standard library's encoding/xml.
	XMLCodec EncoderFunc = xml.Marshal

	// YAMLCodec marshals with gopkg.in/yaml.v3.
	YAMLCodec EncoderFunc = yaml.Marshal

	// TOMLCodec marshals with github.com/pelletier/go-toml/v2.
	TOMLCodec EncoderFunc = toml.Marshal

	// CBORCodec marshals with github.com/fxamacker/cbor/v2.
	CBORCodec EncoderFunc = cbor.Marshal
)
