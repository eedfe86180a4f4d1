package util

import "errors"

var ErrMissingQuery = errors.New("query is required")

// StageError names the pipeline step that failed. Message is the text shown
// to clients; Err carries the cause for the details field.
type StageError struct {
	Stage   string
	Message string
	Err     error
}

func (e *StageError) Error() string {
	if e.Err == nil {
		return e.Stage
	}
	return e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error { return e.Err }

func NewStageError(stage, message string, err error) *StageError {
	return &StageError{Stage: stage, Message: message, Err: err}
}

// ErrorDetails splits err into the client message and the details string.
// Errors without a stage get fallback as their message.
func ErrorDetails(err error, fallback string) (string, string) {
	var se *StageError
	if errors.As(err, &se) {
		msg := se.Message
		if msg == "" {
			msg = fallback
		}
		if se.Err == nil {
			return msg, se.Stage
		}
		return msg, se.Err.Error()
	}
	return fallback, err.Error()
}
