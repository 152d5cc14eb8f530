// Package codec centralizes structured output encoding.
//
// The CLI writes classification reports through a Codec so the encoder can
// be swapped without touching the report types.
package codec

import "io"

// Codec streams values to and from JSON.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Encode writes v followed by a newline.
	Encode(w io.Writer, v any) error
	// Decode reads the next value from r into v.
	Decode(r io.Reader, v any) error
	Name() string
}

// Names lists the built-in codec names.
var Names = []string{"json", "go-json"}

// Default is the codec used when none is named.
var Default Codec = GoJSON{}

// ByName returns a built-in codec by its stable name.
// A non-empty indent pretty-prints each level with that string.
func ByName(name, indent string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{Indent: indent}, true
	case "go-json":
		return GoJSON{Indent: indent}, true
	default:
		return nil, false
	}
}
