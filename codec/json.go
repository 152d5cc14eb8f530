package codec

import (
	"encoding/json"
	"io"
)

// JSON encodes with encoding/json.
// Use it when output must match the standard library byte for byte.
type JSON struct {
	Indent string
}

func (c JSON) Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", c.Indent)
	return enc.Encode(v)
}

func (JSON) Decode(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

func (JSON) Name() string { return "json" }
