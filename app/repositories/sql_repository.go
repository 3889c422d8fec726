package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories/migrations"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// table maps one record type onto its SQL table. columns excludes the id
// and timestamp columns, which every table shares.
type table[R any] struct {
	name    string
	columns []string
	values  func(*R) []any
	dests   func(*R) []any
}

// SQLRepository implements Repository over a database/sql table.
// Timestamps are stored as Unix nanoseconds.
type SQLRepository[R any, P Record[R]] struct {
	db *sql.DB
	t  table[R]
}

func newSQLRepository[R any, P Record[R]](db *sql.DB, t table[R]) *SQLRepository[R, P] {
	return &SQLRepository[R, P]{db: db, t: t}
}

func (r *SQLRepository[R, P]) selectColumns() string {
	return "id, created_at, updated_at, " + strings.Join(r.t.columns, ", ")
}

// Create inserts the record and stores the generated ID on it.
func (r *SQLRepository[R, P]) Create(rec *R) error {
	if err := P(rec).Validate(); err != nil {
		return fmt.Errorf("invalid %s: %w", r.t.name, err)
	}
	meta := P(rec).Identity()

	cols := append([]string{"created_at", "updated_at"}, r.t.columns...)
	args := append([]any{meta.CreatedAt.UnixNano(), meta.UpdatedAt.UnixNano()}, r.t.values(rec)...)
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		r.t.name, strings.Join(cols, ", "), strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "))

	res, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("insert %s: %w", r.t.name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert %s: %w", r.t.name, err)
	}
	meta.ID = int(id)
	return nil
}

// Update overwrites an existing row.
func (r *SQLRepository[R, P]) Update(rec *R) error {
	if err := P(rec).Validate(); err != nil {
		return fmt.Errorf("invalid %s: %w", r.t.name, err)
	}
	meta := P(rec).Identity()

	sets := []string{"created_at = ?", "updated_at = ?"}
	for _, c := range r.t.columns {
		sets = append(sets, c+" = ?")
	}
	args := append([]any{meta.CreatedAt.UnixNano(), meta.UpdatedAt.UnixNano()}, r.t.values(rec)...)
	args = append(args, meta.ID)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", r.t.name, strings.Join(sets, ", "))

	res, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("update %s %d: %w", r.t.name, meta.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s %d: %w", r.t.name, meta.ID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLRepository[R, P]) GetByID(id int) (*R, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", r.selectColumns(), r.t.name)
	rec, err := r.scan(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %d: %w", r.t.name, id, err)
	}
	return rec, nil
}

func (r *SQLRepository[R, P]) List() ([]*R, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", r.selectColumns(), r.t.name)
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.t.name, err)
	}
	defer rows.Close()

	var recs []*R
	for rows.Next() {
		rec, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", r.t.name, err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLRepository[R, P]) scan(row scanner) (*R, error) {
	rec := new(R)
	meta := P(rec).Identity()
	var created, updated int64

	dest := append([]any{&meta.ID, &created, &updated}, r.t.dests(rec)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	meta.CreatedAt = time.Unix(0, created).UTC()
	meta.UpdatedAt = time.Unix(0, updated).UTC()
	return rec, nil
}

var (
	usersTable = table[models.UserRecord]{
		name:    "users",
		columns: []string{"name", "email"},
		values:  func(r *models.UserRecord) []any { return []any{r.Name, r.Email} },
		dests:   func(r *models.UserRecord) []any { return []any{&r.Name, &r.Email} },
	}
	blogsTable = table[models.BlogRecord]{
		name:    "blogs",
		columns: []string{"owner_id", "title"},
		values:  func(r *models.BlogRecord) []any { return []any{r.OwnerID, r.Title} },
		dests:   func(r *models.BlogRecord) []any { return []any{&r.OwnerID, &r.Title} },
	}
	postsTable = table[models.PostRecord]{
		name:    "posts",
		columns: []string{"blog_id", "title", "body"},
		values:  func(r *models.PostRecord) []any { return []any{r.BlogID, r.Title, r.Body} },
		dests:   func(r *models.PostRecord) []any { return []any{&r.BlogID, &r.Title, &r.Body} },
	}
	commentsTable = table[models.CommentRecord]{
		name:    "comments",
		columns: []string{"post_id", "author_id", "title", "body"},
		values:  func(r *models.CommentRecord) []any { return []any{r.PostID, r.AuthorID, r.Title, r.Body} },
		dests:   func(r *models.CommentRecord) []any { return []any{&r.PostID, &r.AuthorID, &r.Title, &r.Body} },
	}
)

// NewSQLStore wraps a migrated database. The caller keeps ownership of db.
func NewSQLStore(db *sql.DB) *Store {
	return &Store{
		Users:    newSQLRepository[models.UserRecord](db, usersTable),
		Blogs:    newSQLRepository[models.BlogRecord](db, blogsTable),
		Posts:    newSQLRepository[models.PostRecord](db, postsTable),
		Comments: newSQLRepository[models.CommentRecord](db, commentsTable),
	}
}

// OpenSQLiteStore opens the SQLite file at path, applies pending migrations
// and returns a store that closes the database.
func OpenSQLiteStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if err := migrations.MigrateUp(db); err != nil {
		db.Close()
		return nil, err
	}

	s := NewSQLStore(db)
	s.closer = db.Close
	return s, nil
}
