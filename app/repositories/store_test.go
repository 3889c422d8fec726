package repositories_test

import (
	"path/filepath"
	"testing"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]*repositories.Store {
	t.Helper()

	bs, err := repositories.OpenBadgerStore("", true)
	require.NoError(t, err)
	t.Cleanup(func() { bs.Close() })

	ss, err := repositories.OpenSQLiteStore(filepath.Join(t.TempDir(), "inkwell.db"))
	require.NoError(t, err)
	t.Cleanup(func() { ss.Close() })

	return map[string]*repositories.Store{
		"badger": bs,
		"sqlite": ss,
		"mock":   mock.NewStore(),
	}
}

func meta(at time.Time) models.Meta {
	return models.Meta{CreatedAt: at, UpdatedAt: at}
}

func TestStore(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			alice := &models.UserRecord{Meta: meta(now), Name: "Alice", Email: "a@x.com"}
			require.NoError(t, store.Users.Create(alice))
			assert.Greater(t, alice.ID, 0)

			t.Run("create and get", func(t *testing.T) {
				blog := &models.BlogRecord{Meta: meta(now), OwnerID: alice.ID, Title: "My Blog"}
				require.NoError(t, store.Blogs.Create(blog))

				got, err := store.Blogs.GetByID(blog.ID)
				require.NoError(t, err)
				assert.Equal(t, blog, got)
			})

			t.Run("list keeps ID order", func(t *testing.T) {
				blog := &models.BlogRecord{Meta: meta(now), OwnerID: alice.ID, Title: "Ordered"}
				require.NoError(t, store.Blogs.Create(blog))

				var want []int
				for i := 0; i < 12; i++ {
					p := &models.PostRecord{Meta: meta(now), BlogID: blog.ID, Title: "p", Body: "b"}
					require.NoError(t, store.Posts.Create(p))
					want = append(want, p.ID)
				}

				posts, err := store.Posts.List()
				require.NoError(t, err)
				var got []int
				for _, p := range posts {
					got = append(got, p.ID)
				}
				assert.Equal(t, want, got)
			})

			t.Run("update", func(t *testing.T) {
				posts, err := store.Posts.List()
				require.NoError(t, err)
				require.NotEmpty(t, posts)
				p := posts[0]

				p.Body += " more"
				p.UpdatedAt = now.Add(time.Minute)
				require.NoError(t, store.Posts.Update(p))

				got, err := store.Posts.GetByID(p.ID)
				require.NoError(t, err)
				assert.Equal(t, "b more", got.Body)
				assert.True(t, got.UpdatedAt.Equal(now.Add(time.Minute)))
				assert.True(t, got.CreatedAt.Equal(now))
			})

			t.Run("comments reference post and author", func(t *testing.T) {
				posts, err := store.Posts.List()
				require.NoError(t, err)
				c := &models.CommentRecord{Meta: meta(now), PostID: posts[0].ID, AuthorID: alice.ID, Title: "Re", Body: "Nice!"}
				require.NoError(t, store.Comments.Create(c))

				got, err := store.Comments.GetByID(c.ID)
				require.NoError(t, err)
				assert.Equal(t, c, got)
			})

			t.Run("not found", func(t *testing.T) {
				_, err := store.Users.GetByID(9999)
				assert.ErrorIs(t, err, repositories.ErrNotFound)

				missing := &models.UserRecord{Meta: models.Meta{ID: 9999, CreatedAt: now, UpdatedAt: now}}
				assert.ErrorIs(t, store.Users.Update(missing), repositories.ErrNotFound)
			})
		})
	}
}

func TestStoreRejectsInvalidRecords(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	for name, store := range stores(t) {
		if name == "mock" {
			continue
		}
		t.Run(name, func(t *testing.T) {
			err := store.Blogs.Create(&models.BlogRecord{Meta: meta(now), Title: "orphan"})
			assert.Error(t, err)

			err = store.Users.Create(&models.UserRecord{Name: "no timestamps"})
			assert.Error(t, err)
		})
	}
}

func TestBadgerStoreReopen(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	store, err := repositories.OpenBadgerStore(dir, false)
	require.NoError(t, err)
	u := &models.UserRecord{Meta: meta(now), Name: "Alice"}
	require.NoError(t, store.Users.Create(u))
	require.NoError(t, store.Close())

	store, err = repositories.OpenBadgerStore(dir, false)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Users.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	next := &models.UserRecord{Meta: meta(now), Name: "Bob"}
	require.NoError(t, store.Users.Create(next))
	assert.Equal(t, u.ID+1, next.ID, "sequence survives reopen")
}
