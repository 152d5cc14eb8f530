package partknn

import "github.com/hupe1980/partknn/model"

// Display names of the two classes of the bundled diabetes indicator data.
const (
	ClassNegative = "Negative"
	ClassPositive = "Prediabetes or Diabetes"
	ClassUnknown  = "Unknown"
)

// ClassName maps a label to its display name.
func ClassName(l model.Label) string {
	switch l {
	case model.LabelNegative:
		return ClassNegative
	case model.LabelPositive:
		return ClassPositive
	default:
		return ClassUnknown
	}
}
