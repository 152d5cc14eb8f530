package dataset

import (
	"fmt"
	"math"

	"github.com/hupe1980/partknn/model"
)

// MinWidth is the narrowest valid row: a label and one feature.
const MinWidth = 2

// Row is one table row: label at index 0, features after it.
type Row []float64

// Dataset is an immutable, validated table of rows.
type Dataset struct {
	rows  []Row
	width int
}

// New validates rows and wraps them in a Dataset.
//
// The Dataset takes ownership of rows; callers must not modify them afterwards.
// An empty rows slice yields an empty Dataset, which the classifier rejects as
// a configuration error rather than as malformed input.
func New(rows []Row) (*Dataset, error) {
	if len(rows) == 0 {
		return &Dataset{}, nil
	}

	width := len(rows[0])
	if width < MinWidth {
		return nil, NewRowError(0, -1, "row must hold a label and at least one feature", nil)
	}

	for i, row := range rows {
		if len(row) != width {
			return nil, NewRowError(i, -1, widthReason(width, len(row)), nil)
		}
		if err := checkCells(i, row); err != nil {
			return nil, err
		}
		if _, ok := model.LabelFromValue(row[0]); !ok {
			return nil, NewRowError(i, 0, "label must be 0 or 1", nil)
		}
	}

	return &Dataset{rows: rows, width: width}, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// Width returns the row width F (label included).
func (d *Dataset) Width() int {
	if d == nil {
		return 0
	}
	return d.width
}

// Row returns row i. The returned slice must be treated as read-only.
func (d *Dataset) Row(i int) Row {
	return d.rows[i]
}

// Label returns the label of row i.
func (d *Dataset) Label(i int) model.Label {
	// Labels were validated in New.
	l, _ := model.LabelFromValue(d.rows[i][0])
	return l
}

// CheckQuery reports whether q has the shape of this dataset's rows.
func (d *Dataset) CheckQuery(q Query) error {
	if len(q.values) != d.width {
		return NewRowError(-1, -1, widthReason(d.width, len(q.values)), nil)
	}
	if err := checkCells(-1, q.values); err != nil {
		return err
	}
	if origin, ok := q.Origin(); ok && origin >= len(d.rows) {
		return NewRowError(-1, -1, "query row token out of range", nil)
	}
	return nil
}

func checkCells(row int, values []float64) error {
	for j, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewRowError(row, j, "value must be finite", nil)
		}
	}
	return nil
}

func widthReason(want, got int) string {
	return fmt.Sprintf("expected %d values, got %d", want, got)
}
