package repositories

import (
	"errors"

	"inkwell/app/models"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repository persists one kind of record. List returns records in ID order,
// which is also the order they were created in.
type Repository[R any] interface {
	Create(rec *R) error
	Update(rec *R) error
	GetByID(id int) (*R, error)
	List() ([]*R, error)
}

// Record is satisfied by pointers to the models record types.
type Record[R any] interface {
	*R
	Identity() *models.Meta
	Validate() error
}

// Store bundles the repositories of the whole blog tree.
type Store struct {
	Users    Repository[models.UserRecord]
	Blogs    Repository[models.BlogRecord]
	Posts    Repository[models.PostRecord]
	Comments Repository[models.CommentRecord]

	closer func() error
}

// Close releases the underlying database when the store opened it.
func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
