package field

import "errors"

var ErrMineCount = errors.New("mine count out of range")

// AssertionError reports a broken precondition of the board. Callers that gate
// their input never see one.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

// panics [AssertionError]
func must(cond bool, message string) {
	if !cond {
		panic(AssertionError{message})
	}
}
