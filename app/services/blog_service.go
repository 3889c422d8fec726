package services

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// BlogService owns the in-memory blog forest and mirrors every change into
// the store. One lock guards the whole forest: commenting touches both the
// post's tree and the author's comment view.
type BlogService struct {
	mu       sync.RWMutex
	store    *repositories.Store
	clock    models.Clock
	log      *slog.Logger
	renderer models.Renderer

	users    map[int]*models.User
	blogs    map[int]*models.Blog
	posts    map[int]*models.Post
	comments map[int]*models.Comment
}

type Option func(*BlogService)

func WithClock(c models.Clock) Option { return func(s *BlogService) { s.clock = c } }

func WithLogger(l *slog.Logger) Option { return func(s *BlogService) { s.log = l } }

// WithRenderer sets the renderer used by the Render* methods.
func WithRenderer(r models.Renderer) Option { return func(s *BlogService) { s.renderer = r } }

// NewBlogService creates an empty service over store. Call Load to pick up
// what the store already holds.
func NewBlogService(store *repositories.Store, opts ...Option) *BlogService {
	s := &BlogService{
		store: store,
		clock: models.SystemClock{},
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

func (s *BlogService) reset() {
	s.users = make(map[int]*models.User)
	s.blogs = make(map[int]*models.Blog)
	s.posts = make(map[int]*models.Post)
	s.comments = make(map[int]*models.Comment)
}

// Load rebuilds the forest from the store, replacing anything in memory.
func (s *BlogService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()

	users, err := s.store.Users.List()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	for _, rec := range users {
		u := models.RestoreUser(s.clock, rec)
		s.users[u.ID] = u
	}

	blogs, err := s.store.Blogs.List()
	if err != nil {
		return fmt.Errorf("failed to list blogs: %w", err)
	}
	for _, rec := range blogs {
		b, err := models.RestoreBlog(s.users[rec.OwnerID], rec)
		if err != nil {
			return fmt.Errorf("restore blog %d: %w", rec.ID, err)
		}
		s.blogs[b.ID] = b
	}

	posts, err := s.store.Posts.List()
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}
	for _, rec := range posts {
		p, err := models.RestorePost(s.blogs[rec.BlogID], rec)
		if err != nil {
			return fmt.Errorf("restore post %d: %w", rec.ID, err)
		}
		s.posts[p.ID] = p
	}

	comments, err := s.store.Comments.List()
	if err != nil {
		return fmt.Errorf("failed to list comments: %w", err)
	}
	for _, rec := range comments {
		c, err := models.RestoreComment(s.posts[rec.PostID], s.users[rec.AuthorID], rec)
		if err != nil {
			return fmt.Errorf("restore comment %d: %w", rec.ID, err)
		}
		s.comments[c.ID] = c
	}

	s.log.Info("blog tree loaded",
		"users", len(s.users), "blogs", len(s.blogs), "posts", len(s.posts), "comments", len(s.comments))
	return nil
}

func (s *BlogService) user(id int) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, repositories.ErrNotFound)
	}
	return u, nil
}

func (s *BlogService) blog(id int) (*models.Blog, error) {
	b, ok := s.blogs[id]
	if !ok {
		return nil, fmt.Errorf("blog %d: %w", id, repositories.ErrNotFound)
	}
	return b, nil
}

func (s *BlogService) post(id int) (*models.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %d: %w", id, repositories.ErrNotFound)
	}
	return p, nil
}

func (s *BlogService) comment(id int) (*models.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment %d: %w", id, repositories.ErrNotFound)
	}
	return c, nil
}

// persistNew writes a freshly built record and returns the ID the store assigned.
func persistNew[R any](s *BlogService, kind string, repo repositories.Repository[R], rec *R, id func(*R) int) (int, error) {
	if err := repo.Create(rec); err != nil {
		s.log.Error("persist failed", "kind", kind, "op", "create", "err", err)
		return 0, fmt.Errorf("persist %s: %w", kind, err)
	}
	return id(rec), nil
}

func persistChange[R any](s *BlogService, kind string, id int, repo repositories.Repository[R], rec *R) error {
	if err := repo.Update(rec); err != nil {
		s.log.Error("persist failed", "kind", kind, "id", id, "op", "update", "err", err)
		return fmt.Errorf("persist %s %d: %w", kind, id, err)
	}
	return nil
}

// RegisterUser creates a user with no blogs.
func (s *BlogService) RegisterUser(name, email string) (*UserView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := models.NewUser(s.clock, name, email)
	id, err := persistNew(s, "user", s.store.Users, u.Record(), func(r *models.UserRecord) int { return r.ID })
	if err != nil {
		return nil, err
	}
	u.ID = id
	s.users[id] = u
	s.log.Info("user registered", "user", id)
	return userView(u), nil
}

// UpdateProfile replaces a user's name and email.
func (s *BlogService) UpdateProfile(userID int, name, email string) (*UserView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.user(userID)
	if err != nil {
		return nil, err
	}
	u.UpdateProfile(name, email)
	if err := persistChange(s, "user", u.ID, s.store.Users, u.Record()); err != nil {
		return nil, err
	}
	return userView(u), nil
}

// CreateBlog creates a blog owned by the user.
func (s *BlogService) CreateBlog(userID int, title string) (*BlogView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.user(userID)
	if err != nil {
		return nil, err
	}
	b := u.CreateBlog(title)
	id, err := persistNew(s, "blog", s.store.Blogs, b.Record(), func(r *models.BlogRecord) int { return r.ID })
	if err != nil {
		b.Withdraw()
		return nil, err
	}
	b.ID = id
	s.blogs[id] = b
	s.log.Info("blog created", "blog", id, "owner", userID)
	return blogView(b), nil
}

func (s *BlogService) RetitleBlog(blogID int, title string) (*BlogView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.blog(blogID)
	if err != nil {
		return nil, err
	}
	b.Retitle(title)
	if err := persistChange(s, "blog", b.ID, s.store.Blogs, b.Record()); err != nil {
		return nil, err
	}
	return blogView(b), nil
}

// AuthorPost has the user write a post into the blog.
func (s *BlogService) AuthorPost(userID, blogID int, title, body string) (*PostView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.user(userID)
	if err != nil {
		return nil, err
	}
	b, err := s.blog(blogID)
	if err != nil {
		return nil, err
	}
	p, err := u.AuthorPost(b, title, body)
	if err != nil {
		return nil, err
	}
	id, err := persistNew(s, "post", s.store.Posts, p.Record(), func(r *models.PostRecord) int { return r.ID })
	if err != nil {
		p.Withdraw()
		return nil, err
	}
	p.ID = id
	s.posts[id] = p
	s.log.Info("post authored", "post", id, "blog", blogID, "author", userID)
	return postView(p), nil
}

// AuthorComment has the user comment on the post.
func (s *BlogService) AuthorComment(userID, postID int, title, body string) (*CommentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.user(userID)
	if err != nil {
		return nil, err
	}
	p, err := s.post(postID)
	if err != nil {
		return nil, err
	}
	c, err := u.AuthorComment(p, title, body)
	if err != nil {
		return nil, err
	}
	id, err := persistNew(s, "comment", s.store.Comments, c.Record(), func(r *models.CommentRecord) int { return r.ID })
	if err != nil {
		c.Withdraw()
		return nil, err
	}
	c.ID = id
	s.comments[id] = c
	s.log.Info("comment authored", "comment", id, "post", postID, "author", userID)
	return commentView(c), nil
}

// Edit names the fields to replace; nil fields are left alone.
type Edit struct {
	Title *string
	Body  *string
}

// AppendToPost concatenates text onto the post body.
func (s *BlogService) AppendToPost(postID int, text string) (*PostView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.post(postID)
	if err != nil {
		return nil, err
	}
	p.AppendToBody(text)
	if err := persistChange(s, "post", p.ID, s.store.Posts, p.Record()); err != nil {
		return nil, err
	}
	return postView(p), nil
}

func (s *BlogService) EditPost(postID int, edit Edit) (*PostView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.post(postID)
	if err != nil {
		return nil, err
	}
	if edit.Title != nil {
		p.Retitle(*edit.Title)
	}
	if edit.Body != nil {
		p.ReplaceBody(*edit.Body)
	}
	if err := persistChange(s, "post", p.ID, s.store.Posts, p.Record()); err != nil {
		return nil, err
	}
	return postView(p), nil
}

// AppendToComment concatenates text onto the comment body.
func (s *BlogService) AppendToComment(commentID int, text string) (*CommentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.comment(commentID)
	if err != nil {
		return nil, err
	}
	c.AppendToBody(text)
	if err := persistChange(s, "comment", c.ID, s.store.Comments, c.Record()); err != nil {
		return nil, err
	}
	return commentView(c), nil
}

func (s *BlogService) EditComment(commentID int, edit Edit) (*CommentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.comment(commentID)
	if err != nil {
		return nil, err
	}
	if edit.Title != nil {
		c.Retitle(*edit.Title)
	}
	if edit.Body != nil {
		c.ReplaceBody(*edit.Body)
	}
	if err := persistChange(s, "comment", c.ID, s.store.Comments, c.Record()); err != nil {
		return nil, err
	}
	return commentView(c), nil
}
