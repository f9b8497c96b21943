package dlist

import (
	"errors"
	"fmt"
)

type ErrorCode int

const (
	Unknown ErrorCode = iota
	// EmptyList is returned when a removal needs a node and the list has none.
	EmptyList
	// InvalidHandle is returned when a node handle is not owned by the list it was passed to.
	InvalidHandle
)

var (
	// ErrEmptyList is wrapped by errors returned from RemoveFromHead and RemoveFromTail on an empty list.
	ErrEmptyList = errors.New("list is empty")
	// ErrInvalidHandle is wrapped by errors returned when a handle does not belong to the list.
	ErrInvalidHandle = errors.New("node handle does not belong to this list")
)

// dlist custom error.
type Error struct {
	Code     ErrorCode
	Err      error
	UserData any
}

func (e Error) Error() string {
	return fmt.Errorf("error code: %d, user data: %v, details: %w", e.Code, e.UserData, e.Err).Error()
}

// Unwrap exposes the underlying error so errors.Is matches the sentinels.
func (e Error) Unwrap() error {
	return e.Err
}
