// File: comparison.go
// Title: Comparison Operator Enumeration
// Description: Implements the labeled comparison operator enumeration with
//              stable legacy indices and numeric evaluation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-13
// Modified: 2025-11-13
//
// Change History:
// - 2025-11-13 v0.1.0: Initial implementation

package logicx

import "fmt"

// ComparisonOperator enumerates the comparison operators applied between a
// measured value and a threshold.
type ComparisonOperator int

const (
	CompareNone ComparisonOperator = iota
	CompareEqual
	CompareNotEqual
	CompareGreaterThan
	CompareLessThan
	CompareGreaterThanOrEqual
	CompareLessThanOrEqual
)

// comparisonIndices maps each operator to its persisted index. The indices
// predate the enumeration and are fixed by stored settings files, so the
// ordering does not follow the declaration order.
var comparisonIndices = map[ComparisonOperator]int{
	CompareNone:               0,
	CompareEqual:              3,
	CompareNotEqual:           4,
	CompareGreaterThan:        1,
	CompareLessThan:           2,
	CompareGreaterThanOrEqual: 5,
	CompareLessThanOrEqual:    6,
}

var comparisonLabels = map[ComparisonOperator]string{
	CompareNone:               "Ignore",
	CompareEqual:              "=",
	CompareNotEqual:           "≠",
	CompareGreaterThan:        ">",
	CompareLessThan:           "<",
	CompareGreaterThanOrEqual: ">=",
	CompareLessThanOrEqual:    "<=",
}

// DefaultComparisonOperator returns the operator presented when no explicit
// choice has been made.
func DefaultComparisonOperator() ComparisonOperator {
	return CompareNone
}

// Index returns the stable persisted index of the operator.
func (op ComparisonOperator) Index() int {
	return comparisonIndices[op]
}

// Label returns the human-readable label, suitable for combo-box display.
func (op ComparisonOperator) Label() string {
	if label, ok := comparisonLabels[op]; ok {
		return label
	}
	return "Unknown"
}

// String returns the label so the current choice displays in its custom
// label form when hosted by a list or table cell.
func (op ComparisonOperator) String() string {
	return op.Label()
}

// ComparisonOperatorFromIndex resolves a persisted index back to its
// operator.
func ComparisonOperatorFromIndex(index int) (ComparisonOperator, error) {
	for op, i := range comparisonIndices {
		if i == index {
			return op, nil
		}
	}
	return DefaultComparisonOperator(), fmt.Errorf("unknown comparison operator index: %d", index)
}

// ParseComparisonOperator resolves a label back to its operator.
func ParseComparisonOperator(label string) (ComparisonOperator, error) {
	for op, l := range comparisonLabels {
		if l == label {
			return op, nil
		}
	}
	return DefaultComparisonOperator(), fmt.Errorf("unknown comparison operator: %q", label)
}

// Evaluate applies the operator to the pair (a, b), answering whether
// "a op b" holds. CompareNone always reports false so an ignored
// condition never triggers.
func (op ComparisonOperator) Evaluate(a, b float64) bool {
	switch op {
	case CompareEqual:
		return a == b
	case CompareNotEqual:
		return a != b
	case CompareGreaterThan:
		return a > b
	case CompareLessThan:
		return a < b
	case CompareGreaterThanOrEqual:
		return a >= b
	case CompareLessThanOrEqual:
		return a <= b
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler using the label form.
func (op ComparisonOperator) MarshalText() ([]byte, error) {
	return []byte(op.Label()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler accepting the label
// form.
func (op *ComparisonOperator) UnmarshalText(text []byte) error {
	parsed, err := ParseComparisonOperator(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}
