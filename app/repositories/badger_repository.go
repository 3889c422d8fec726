package repositories

import (
	"errors"
	"fmt"
	"strings"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerRepository implements Repository using BadgerDB. Values are JSON
// records stored under <prefix><zero-padded id>.
type BadgerRepository[R any, P Record[R]] struct {
	db     *badger.DB
	prefix string
	seqKey string
}

// NewBadgerRepository creates a repository over the given key prefix and sequence.
func NewBadgerRepository[R any, P Record[R]](db *badger.DB, prefix, seqKey string) *BadgerRepository[R, P] {
	return &BadgerRepository[R, P]{db: db, prefix: prefix, seqKey: seqKey}
}

func (r *BadgerRepository[R, P]) kind() string {
	return strings.TrimSuffix(r.prefix, ":")
}

// Create assigns the next ID and stores the record.
func (r *BadgerRepository[R, P]) Create(rec *R) error {
	meta := P(rec).Identity()
	if err := P(rec).Validate(); err != nil {
		return fmt.Errorf("invalid %s: %w", r.kind(), err)
	}

	err := r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, r.seqKey)
		if err != nil {
			return err
		}
		meta.ID = id

		data, err := marshalEntity(rec)
		if err != nil {
			return err
		}
		return txn.Set(entityKey(r.prefix, id), data)
	})
	if err != nil {
		meta.ID = 0
		return err
	}
	return nil
}

// Update overwrites an existing record.
func (r *BadgerRepository[R, P]) Update(rec *R) error {
	if err := P(rec).Validate(); err != nil {
		return fmt.Errorf("invalid %s: %w", r.kind(), err)
	}
	key := entityKey(r.prefix, P(rec).Identity().ID)

	return r.db.Update(func(txn *badger.Txn) error {
		// Verify record exists
		_, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := marshalEntity(rec)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// GetByID retrieves a record by ID
func (r *BadgerRepository[R, P]) GetByID(id int) (*R, error) {
	rec := new(R)

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entityKey(r.prefix, id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// List retrieves every record in ID order
func (r *BadgerRepository[R, P]) List() ([]*R, error) {
	var recs []*R
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(r.prefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			rec := new(R)
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, rec)
			})
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", r.kind(), err)
			}
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// NewBadgerStore wraps an open DB. The caller keeps ownership of db.
func NewBadgerStore(db *badger.DB) *Store {
	return &Store{
		Users:    NewBadgerRepository[models.UserRecord](db, UserKeyPrefix, UserSeqKey),
		Blogs:    NewBadgerRepository[models.BlogRecord](db, BlogKeyPrefix, BlogSeqKey),
		Posts:    NewBadgerRepository[models.PostRecord](db, PostKeyPrefix, PostSeqKey),
		Comments: NewBadgerRepository[models.CommentRecord](db, CommentKeyPrefix, CommentSeqKey),
	}
}

// OpenBadgerStore opens (or creates) a Badger database at path and returns a
// store that closes it. inMemory ignores path and keeps everything in RAM.
func OpenBadgerStore(path string, inMemory bool) (*Store, error) {
	opts := badger.DefaultOptions(path)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", path, err)
	}
	s := NewBadgerStore(db)
	s.closer = db.Close
	return s, nil
}
