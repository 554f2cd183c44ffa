package response

import (
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindStore
)

var statusByKind = map[Kind]int{
	KindValidation: http.StatusBadRequest,
	KindNotFound:   http.StatusNotFound,
	KindStore:      http.StatusInternalServerError,
}

// Err is a failure that ends a request. Message is what the client sees and
// Cause is kept for logging.
type Err struct {
	Kind    Kind   `json:"-"`
	Message string `json:"error" example:"Missing required fields"`
	Cause   error  `json:"-"`
}

func (e *Err) Error() string {
	if e.Cause != nil && e.Cause.Error() != e.Message {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

func (e *Err) Unwrap() error {
	return e.Cause
}

func (e *Err) Status() int {
	if status, ok := statusByKind[e.Kind]; ok {
		return status
	}

	return http.StatusInternalServerError
}

func ErrBadRequest(err error) *Err {
	return &Err{
		Kind:    KindValidation,
		Message: err.Error(),
		Cause:   err,
	}
}

func ErrNotFound(message string) *Err {
	return &Err{
		Kind:    KindNotFound,
		Message: message,
	}
}

// ErrInternalServerError exposes err's message unchanged. Callers pass the
// store's own error, not a wrapped chain.
func ErrInternalServerError(err error) *Err {
	return &Err{
		Kind:    KindStore,
		Message: err.Error(),
		Cause:   err,
	}
}
