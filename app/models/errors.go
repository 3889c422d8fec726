package models

import (
	"errors"
	"fmt"
)

var (
	ErrNilEntity     = errors.New("nil entity")
	ErrForeignParent = errors.New("entity is bound to a different parent")
)

// InsertError reports a value refused by an owning collection.
type InsertError struct {
	Collection string // e.g. "blog.posts"
	Err        error
}

func (e *InsertError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: rejected insert: %v", e.Collection, e.Err)
}

func (e *InsertError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsRejected reports whether err is an insert refused by a collection.
func IsRejected(err error) bool {
	var ie *InsertError
	return errors.As(err, &ie)
}
