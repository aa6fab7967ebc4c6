package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownQuestion    = errors.New("unknown question")
	ErrInvalidAnswerShape = errors.New("invalid answer shape")
	ErrCorruptSession     = errors.New("corrupt session")
	ErrConfiguration      = errors.New("catalog configuration error")
	ErrSessionComplete    = errors.New("session is complete")
)

// AnswerShapeError reports an answer that does not fit its question.
// Hosts should re-prompt rather than abort.
type AnswerShapeError struct {
	QuestionID string
	Kind       QuestionKind
	Reason     string
}

func (e *AnswerShapeError) Error() string {
	return fmt.Sprintf("invalid answer for %s question %q: %s", e.Kind, e.QuestionID, e.Reason)
}

func (e *AnswerShapeError) Unwrap() error { return ErrInvalidAnswerShape }

// CorruptSessionError lists saved answers dropped while resuming
type CorruptSessionError struct {
	Dropped []string
	Causes  []error
}

func (e *CorruptSessionError) Error() string {
	return fmt.Sprintf("corrupt session: dropped %d saved answer(s): %s", len(e.Dropped), strings.Join(e.Dropped, ", "))
}

func (e *CorruptSessionError) Unwrap() error { return ErrCorruptSession }

// ConfigurationError is a fatal problem with catalog data, found at load time
type ConfigurationError struct {
	Path   string // e.g. "deepDives[2].activation.anyOf[0]"
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Path == "" {
		return "catalog configuration: " + e.Reason
	}
	return fmt.Sprintf("catalog configuration: %s: %s", e.Path, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }
