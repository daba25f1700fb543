// File: conditional.go
// Title: Binary Conditional Operator Enumeration
// Description: Implements the labeled enumeration joining two conditions
//              with a logical conjunction or disjunction.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-13
// Modified: 2025-11-13
//
// Change History:
// - 2025-11-13 v0.1.0: Initial implementation

package logicx

import "fmt"

// BinaryConditionalOperator enumerates how two conditions combine into one.
// The verbose name distinguishes it from arithmetic binary operators.
type BinaryConditionalOperator int

const (
	ConditionalNone BinaryConditionalOperator = iota
	ConditionalAnd
	ConditionalOr
)

var conditionalLabels = map[BinaryConditionalOperator]string{
	ConditionalNone: "Ignore",
	ConditionalAnd:  "AND",
	ConditionalOr:   "OR",
}

// DefaultBinaryConditionalOperator returns the operator presented when no
// explicit choice has been made.
func DefaultBinaryConditionalOperator() BinaryConditionalOperator {
	return ConditionalNone
}

// Index returns the stable persisted index of the operator.
func (op BinaryConditionalOperator) Index() int {
	return int(op)
}

// Label returns the human-readable label, suitable for combo-box display.
func (op BinaryConditionalOperator) Label() string {
	if label, ok := conditionalLabels[op]; ok {
		return label
	}
	return "Unknown"
}

// String returns the label so the current choice displays in its custom
// label form when hosted by a list or table cell.
func (op BinaryConditionalOperator) String() string {
	return op.Label()
}

// BinaryConditionalOperatorFromIndex resolves a persisted index back to its
// operator.
func BinaryConditionalOperatorFromIndex(index int) (BinaryConditionalOperator, error) {
	op := BinaryConditionalOperator(index)
	if _, ok := conditionalLabels[op]; !ok {
		return DefaultBinaryConditionalOperator(),
			fmt.Errorf("unknown binary conditional operator index: %d", index)
	}
	return op, nil
}

// ParseBinaryConditionalOperator resolves a label back to its operator.
func ParseBinaryConditionalOperator(label string) (BinaryConditionalOperator, error) {
	for op, l := range conditionalLabels {
		if l == label {
			return op, nil
		}
	}
	return DefaultBinaryConditionalOperator(),
		fmt.Errorf("unknown binary conditional operator: %q", label)
}

// Combine joins the truth values of two conditions. ConditionalNone ignores
// the second condition and passes the first through unchanged.
func (op BinaryConditionalOperator) Combine(first, second bool) bool {
	switch op {
	case ConditionalAnd:
		return first && second
	case ConditionalOr:
		return first || second
	default:
		return first
	}
}

// MarshalText implements encoding.TextMarshaler using the label form.
func (op BinaryConditionalOperator) MarshalText() ([]byte, error) {
	return []byte(op.Label()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler accepting the label
// form.
func (op *BinaryConditionalOperator) UnmarshalText(text []byte) error {
	parsed, err := ParseBinaryConditionalOperator(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}
