package ai

import "errors"

type ErrorKind string

const (
	KindInvalidRequest     ErrorKind = "invalid request"
	KindServiceUnavailable ErrorKind = "service unavailable"
	KindInvalidFormat      ErrorKind = "invalid response format"
	KindIncompleteContent  ErrorKind = "incomplete content"
)

// UserMessage is the only failure text shown to end users; causes go to the log.
const UserMessage = "L'IA n'a pas pu générer le contenu. Veuillez réessayer."

// GenerationError is returned for every failed generation. No partial content accompanies it.
type GenerationError struct {
	Kind ErrorKind
	Err  error
}

var (
	ErrServiceUnavailable = &GenerationError{Kind: KindServiceUnavailable}
	ErrInvalidFormat      = &GenerationError{Kind: KindInvalidFormat}
	ErrIncompleteContent  = &GenerationError{Kind: KindIncompleteContent}
	ErrInvalidRequest     = &GenerationError{Kind: KindInvalidRequest}
)

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is matches on Kind so callers can test against the Err* values.
func (e *GenerationError) Is(target error) bool {
	var t *GenerationError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func newGenerationError(kind ErrorKind, err error) *GenerationError {
	return &GenerationError{Kind: kind, Err: err}
}
