package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrUnknownOperator is returned when a condition uses a comparison
	// operator other than == or !=.
	ErrUnknownOperator = errors.New("unknown comparison operator")
)
