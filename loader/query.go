package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/partknn/dataset"
)

// ParseQuery parses a comma separated feature vector such as "1,0,34.5".
//
// The result has the row layout: a zero label slot followed by the features.
func ParseQuery(s string) (dataset.Query, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return dataset.Query{}, dataset.NewRowError(-1, -1, "empty query", nil)
	}

	fields := strings.Split(s, ",")
	values := make([]float64, 1, len(fields)+1)
	for j, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return dataset.Query{}, dataset.NewRowError(-1, j+1, fmt.Sprintf("value %q is not a number", f), err)
		}
		values = append(values, v)
	}
	return dataset.NewQuery(values), nil
}
