package mock

import (
	"sort"
	"sync"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

type record[R any] interface {
	*R
	Identity() *models.Meta
}

// Repository keeps copies of records in a map.
type Repository[R any, P record[R]] struct {
	records map[int]R
	nextID  int
	mutex   sync.RWMutex

	// FailWith, when set, is returned by Create and Update.
	FailWith error
}

func NewRepository[R any, P record[R]]() *Repository[R, P] {
	return &Repository[R, P]{
		records: make(map[int]R),
		nextID:  1,
	}
}

// NewStore returns a store backed by in-memory repositories.
func NewStore() *repositories.Store {
	return &repositories.Store{
		Users:    NewRepository[models.UserRecord](),
		Blogs:    NewRepository[models.BlogRecord](),
		Posts:    NewRepository[models.PostRecord](),
		Comments: NewRepository[models.CommentRecord](),
	}
}

func (m *Repository[R, P]) Create(rec *R) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}

	P(rec).Identity().ID = m.nextID
	m.nextID++
	m.records[P(rec).Identity().ID] = *rec
	return nil
}

func (m *Repository[R, P]) Update(rec *R) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}

	id := P(rec).Identity().ID
	if _, exists := m.records[id]; !exists {
		return repositories.ErrNotFound
	}
	m.records[id] = *rec
	return nil
}

func (m *Repository[R, P]) GetByID(id int) (*R, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	rec, exists := m.records[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return &rec, nil
}

func (m *Repository[R, P]) List() ([]*R, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	ids := make([]int, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	recs := make([]*R, 0, len(ids))
	for _, id := range ids {
		rec := m.records[id]
		recs = append(recs, &rec)
	}
	return recs, nil
}
