package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/partknn"
	"github.com/hupe1980/partknn/codec"
	"github.com/hupe1980/partknn/dataset"
)

type neighbor struct {
	Row      int     `json:"row"`
	Distance float64 `json:"distance"`
	Label    uint8   `json:"label"`
}

type report struct {
	Prediction uint8      `json:"prediction"`
	Class      string     `json:"class"`
	Zeros      int        `json:"zeros"`
	Ones       int        `json:"ones"`
	Neighbors  []neighbor `json:"neighbors"`
	Rows       int        `json:"rows"`
	ElapsedMS  float64    `json:"elapsed_ms"`
}

func newReport(res *partknn.Result, ds *dataset.Dataset) *report {
	r := &report{
		Prediction: uint8(res.Prediction),
		Class:      res.ClassName(),
		Zeros:      res.Zeros,
		Ones:       res.Ones,
		Neighbors:  make([]neighbor, 0, len(res.Neighbors)),
		Rows:       ds.Len(),
		ElapsedMS:  float64(res.Elapsed.Microseconds()) / 1000,
	}
	for _, c := range res.Neighbors {
		r.Neighbors = append(r.Neighbors, neighbor{Row: c.Origin, Distance: c.Distance, Label: uint8(c.Label)})
	}
	return r
}

func (r *report) writeJSON(w io.Writer, name string, pretty bool) error {
	indent := ""
	if pretty {
		indent = "  "
	}
	c, ok := codec.ByName(name, indent)
	if !ok {
		return &usageError{fmt.Sprintf("unknown -codec %q (want one of %s)", name, strings.Join(codec.Names, ", "))}
	}
	return c.Encode(w, r)
}

func (r *report) writeText(w io.Writer) error {
	rows := make([]string, len(r.Neighbors))
	for i, n := range r.Neighbors {
		rows[i] = fmt.Sprintf("%d", n.Row)
	}

	_, err := fmt.Fprintf(w,
		"prediction: %d (%s)\nvotes: zeros=%d ones=%d\nneighbors: %s\nelapsed: %.3fms\n",
		r.Prediction, r.Class, r.Zeros, r.Ones, strings.Join(rows, ","), r.ElapsedMS)
	return err
}
