package mstr

import (
	"encoding"
	"encoding/json"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// The serialized form of an MStr is just the string: no envelope, no
// length prefix, no ownership marker. Every decode constructs an OWNED
// value, because the payload's lifetime says nothing about the
// value's.

var (
	_ encoding.TextMarshaler   = MStr{}
	_ encoding.TextUnmarshaler = (*MStr)(nil)
	_ json.Marshaler           = MStr{}
	_ json.Unmarshaler         = (*MStr)(nil)
	_ msgpack.CustomEncoder    = MStr{}
	_ msgpack.CustomDecoder    = (*MStr)(nil)
	_ yaml.Marshaler           = MStr{}
	_ toml.Unmarshaler         = (*MStr)(nil)
)

// MarshalText implements encoding.TextMarshaler.
func (m MStr) MarshalText() ([]byte, error) {
	return m.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The incoming
// bytes are validated and copied; the result is owned.
func (m *MStr) UnmarshalText(b []byte) error {
	if !utf8.Valid(b) {
		return ErrInvalidUTF8
	}
	*m = ownString(string(b))
	return nil
}

// MarshalJSON implements json.Marshaler, emitting a plain JSON string.
func (m MStr) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON implements json.Unmarshaler. The result is owned.
func (m *MStr) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*m = ownString(s)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (m MStr) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(m.String())
}

// DecodeMsgpack implements msgpack.CustomDecoder. The result is owned.
func (m *MStr) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	*m = ownString(s)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m MStr) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML decodes a YAML scalar node. The result is owned.
func (m *MStr) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*m = ownString(s)
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler; the encode side rides
// MarshalText. The result is owned.
func (m *MStr) UnmarshalTOML(v interface{}) error {
	s, ok := v.(string)
	if !ok {
		return ErrNotText
	}
	*m = ownString(s)
	return nil
}
