// Package weighted computes the weighted arithmetic mean of paired value and
// weight sequences with strict, all-or-nothing input validation.
package weighted

import "errors"

// Validation failure codes carried by InvalidInputError.
const (
	CodeNilSequence       = "NIL_SEQUENCE"
	CodeEmptySequence     = "EMPTY_SEQUENCE"
	CodeLengthMismatch    = "LENGTH_MISMATCH"
	CodeMissingElement    = "MISSING_ELEMENT"
	CodeNonNumericElement = "NON_NUMERIC_ELEMENT"
	CodeNonFiniteValue    = "NON_FINITE_VALUE"
	CodeNonFiniteWeight   = "NON_FINITE_WEIGHT"
	CodeNegativeWeight    = "NEGATIVE_WEIGHT"
	CodeZeroTotalWeight   = "ZERO_TOTAL_WEIGHT"
)

// ErrInvalidInput matches every InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports which precondition on the input sequences was violated.
type InvalidInputError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func newInvalidInput(code, message string) *InvalidInputError {
	return &InvalidInputError{
		Code:    code,
		Message: message,
	}
}

func newInvalidInputWithDetails(code, message string, details map[string]interface{}) *InvalidInputError {
	return &InvalidInputError{
		Code:    code,
		Message: message,
		Details: details,
	}
}
