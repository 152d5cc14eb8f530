package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/partknn/blobstore"
	"github.com/hupe1980/partknn/dataset"
	"github.com/hupe1980/partknn/resource"
)

// Option configures Read and Load.
type Option func(*options)

type options struct {
	header      bool
	maxRows     int
	comma       rune
	compression *Compression
	resources   *resource.Controller
}

func defaultOptions() options {
	return options{header: true, comma: ','}
}

// WithHeader sets whether the first line is a header to skip (default true).
func WithHeader(header bool) Option {
	return func(o *options) { o.header = header }
}

// WithMaxRows stops reading after n data rows. n <= 0 reads everything.
func WithMaxRows(n int) Option {
	return func(o *options) { o.maxRows = n }
}

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) Option {
	return func(o *options) { o.comma = r }
}

// WithCompression overrides extension-based codec detection in Load.
func WithCompression(c Compression) Option {
	return func(o *options) { o.compression = &c }
}

// WithResources charges bytes read against the controller's IO limit.
func WithResources(rc *resource.Controller) Option {
	return func(o *options) { o.resources = rc }
}

// Read parses a CSV table from r.
//
// Cell errors are reported as *dataset.RowError with 0-based data row and
// column indices (the header is not counted).
func Read(ctx context.Context, r io.Reader, opts ...Option) (*dataset.Dataset, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.resources != nil {
		r = resource.NewRateLimitedReader(ctx, r, o.resources)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.FieldsPerRecord = -1 // width is checked by dataset.New
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	if o.header {
		if _, err := cr.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return dataset.New(nil)
			}
			return nil, fmt.Errorf("read header: %w", err)
		}
	}

	var rows []dataset.Row
	for o.maxRows <= 0 || len(rows) < o.maxRows {
		if len(rows)%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, dataset.NewRowError(len(rows), -1, "invalid csv", pe)
			}
			return nil, err
		}

		row, err := parseRow(len(rows), record)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return dataset.New(rows)
}

func parseRow(i int, record []string) (dataset.Row, error) {
	row := make(dataset.Row, len(record))
	for j, cell := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, dataset.NewRowError(i, j, fmt.Sprintf("value %q is not a number", cell), err)
		}
		row[j] = v
	}
	return row, nil
}

// Load opens name in store, decompresses it by extension and parses it.
func Load(ctx context.Context, store blobstore.BlobStore, name string, opts ...Option) (*dataset.Dataset, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer blob.Close()

	raw, err := blobstore.NewReader(ctx, blob)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	defer raw.Close()

	c := CompressionFor(name)
	if o.compression != nil {
		c = *o.compression
	}

	r, err := Decompress(raw, c)
	if err != nil {
		return nil, fmt.Errorf("decompress %s (%s): %w", name, c, err)
	}
	defer r.Close()

	ds, err := Read(ctx, r, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return ds, nil
}
