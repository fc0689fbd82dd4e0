package article

import (
	"errors"
	"fmt"
)

// Client-visible messages.
const (
	MsgInvalidTags = "Tags must be an array of strings"
	MsgNotFound    = "Article not found"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrCapacity    = errors.New("capacity reached")
	ErrNotFound    = errors.New("article not found")
	ErrPersistence = errors.New("persistence error")
)

// Kind classifies the failures a service operation can report.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindCapacity
	KindNotFound
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindCapacity:
		return "capacity"
	case KindNotFound:
		return "not_found"
	case KindPersistence:
		return "persistence"
	}
	return "unknown"
}

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindCapacity:
		return ErrCapacity
	case KindNotFound:
		return ErrNotFound
	case KindPersistence:
		return ErrPersistence
	}
	return nil
}

// Error is returned by every service operation that fails for a known reason.
// Message is safe to send to the client as is.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for the error's kind, so errors.Is(err, ErrNotFound) works.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func ValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func CapacityError(max int64) *Error {
	return &Error{Kind: KindCapacity, Message: fmt.Sprintf("You can't have more than %d articles", max)}
}

func NotFoundError() *Error {
	return &Error{Kind: KindNotFound, Message: MsgNotFound}
}

// PersistenceError reports a store failure using the store's own message.
func PersistenceError(err error) *Error {
	return &Error{Kind: KindPersistence, Message: err.Error(), Err: err}
}

// KindOf returns the kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
