package graph

import (
	"errors"
	"fmt"
)

// #region admission-errors

// ErrNotFound is returned when a fragment id does not resolve.
var ErrNotFound = errors.New("fragment not found")

// AdmissionErrorKind distinguishes the ways a publish can be refused.
type AdmissionErrorKind string

const (
	AdmissionConsistencyRejected AdmissionErrorKind = "consistency_rejected"
	AdmissionDanglingReference   AdmissionErrorKind = "dangling_reference"
	AdmissionInvalidFragment     AdmissionErrorKind = "invalid_fragment"
)

// AdmissionError is a typed authoring-time refusal. It is an expected
// outcome of publish, not a fault.
type AdmissionError struct {
	Kind       AdmissionErrorKind
	FragmentID string
	Detail     string
}

func (e *AdmissionError) Error() string {
	return fmt.Sprintf("admission %s: fragment %s: %s", e.Kind, e.FragmentID, e.Detail)
}

// AsAdmissionError unwraps err into an *AdmissionError if it is one.
func AsAdmissionError(err error) (*AdmissionError, bool) {
	var ae *AdmissionError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// #endregion admission-errors

// #region config

// Config controls publish-time validation behavior.
type Config struct {
	// StrictOrder requires every choice destination to resolve at publish
	// time. When false, validation is deferred to Finalize so fragments
	// may publish out of order.
	StrictOrder bool
}

// #endregion config
