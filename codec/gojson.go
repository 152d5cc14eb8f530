package codec

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// GoJSON encodes with github.com/goccy/go-json.
type GoJSON struct {
	Indent string
}

func (c GoJSON) Encode(w io.Writer, v any) error {
	enc := gojson.NewEncoder(w)
	enc.SetIndent("", c.Indent)
	return enc.Encode(v)
}

// Decode rejects unknown fields so report schema drift shows up in tests.
func (GoJSON) Decode(r io.Reader, v any) error {
	dec := gojson.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (GoJSON) Name() string { return "go-json" }
