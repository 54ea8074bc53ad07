package booking

import (
	"errors"
	"fmt"
)

// Code classifies an admission failure for the HTTP layer. Storage
// failures are not admission errors; they surface as plain wrapped errors
// and map to an internal-error response.
type Code string

const (
	CodeMissingField   Code = "missing_field"
	CodeInvalidService Code = "invalid_service"
	CodeInvalidTime    Code = "invalid_time"
	CodeSlotFull       Code = "slot_full"
)

// AdmissionError is a request-level validation or capacity failure.
type AdmissionError struct {
	Code    Code
	Message string
}

func (e *AdmissionError) Error() string { return e.Message }

func errMissingField(field string) *AdmissionError {
	return &AdmissionError{
		Code:    CodeMissingField,
		Message: fmt.Sprintf("Missing %s", field),
	}
}

func errInvalidService() *AdmissionError {
	return &AdmissionError{
		Code:    CodeInvalidService,
		Message: "Invalid serviceId",
	}
}

func errInvalidTime(what string) *AdmissionError {
	return &AdmissionError{
		Code:    CodeInvalidTime,
		Message: what,
	}
}

func errSlotFull() *AdmissionError {
	return &AdmissionError{
		Code:    CodeSlotFull,
		Message: "Slot no longer available",
	}
}

// AsAdmission extracts an AdmissionError from an error chain.
func AsAdmission(err error) (*AdmissionError, bool) {
	var ae *AdmissionError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
