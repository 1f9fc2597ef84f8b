// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"encoding/json"
	"encoding/xml"

	"gopkg.in/yaml.v3"
)

// Decoder decodes request bodies of a given media type.
//
// [*Body] selects the Decoder whose MediaType matches the request
// Content-Type, ignoring media type parameters such as charset.
type Decoder interface {
	MediaType() string
	Decode(data []byte, v any) error
}

// JSONDecoder decodes "application/json" bodies.
type JSONDecoder struct{}

var _ Decoder = JSONDecoder{}

// MediaType implements [Decoder].
func (JSONDecoder) MediaType() string {
	return "application/json"
}

// Decode implements [Decoder].
func (JSONDecoder) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// XMLDecoder decodes "application/xml" bodies.
type XMLDecoder struct{}

var _ Decoder = XMLDecoder{}

// MediaType implements [Decoder].
func (XMLDecoder) MediaType() string {
	return "application/xml"
}

// Decode implements [Decoder].
func (XMLDecoder) Decode(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

// YAMLDecoder decodes "application/yaml" bodies.
type YAMLDecoder struct{}

var _ Decoder = YAMLDecoder{}

// MediaType implements [Decoder].
func (YAMLDecoder) MediaType() string {
	return "application/yaml"
}

// Decode implements [Decoder].
func (YAMLDecoder) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// DefaultDecoders returns the decoders used by [NewBody], in order of
// preference. The first one handles requests without a Content-Type.
func DefaultDecoders() []Decoder {
	return []Decoder{JSONDecoder{}, XMLDecoder{}, YAMLDecoder{}}
}
