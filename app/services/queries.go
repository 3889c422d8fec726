package services

import (
	"sort"

	"inkwell/app/models"
)

func (s *BlogService) User(id int) (*UserView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.user(id)
	if err != nil {
		return nil, err
	}
	return userView(u), nil
}

func (s *BlogService) Blog(id int) (*BlogView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, err := s.blog(id)
	if err != nil {
		return nil, err
	}
	return blogView(b), nil
}

func (s *BlogService) Post(id int) (*PostView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.post(id)
	if err != nil {
		return nil, err
	}
	return postView(p), nil
}

func (s *BlogService) Comment(id int) (*CommentView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.comment(id)
	if err != nil {
		return nil, err
	}
	return commentView(c), nil
}

// ListUsers returns every user in registration order.
func (s *BlogService) ListUsers() []*UserView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	views := make([]*UserView, 0, len(users))
	for _, u := range users {
		views = append(views, userView(u))
	}
	return views
}

// ListBlogs returns every blog in creation order.
func (s *BlogService) ListBlogs() []*BlogView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.blogs))
	for id := range s.blogs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	views := make([]*BlogView, 0, len(ids))
	for _, id := range ids {
		views = append(views, blogView(s.blogs[id]))
	}
	return views
}

// RenderBlog renders the blog heading and its post summaries.
func (s *BlogService) RenderBlog(id int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, err := s.blog(id)
	if err != nil {
		return "", err
	}
	return s.renderer.Blog(b), nil
}

// BlogPage is everything a blog page shows, read in one pass.
type BlogPage struct {
	Blog  *BlogView
	HTML  string
	Posts []*PostView
}

// BlogPage returns the blog view, its rendered markup and its posts under a
// single read lock so the three agree with each other.
func (s *BlogService) BlogPage(id int) (*BlogPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, err := s.blog(id)
	if err != nil {
		return nil, err
	}
	page := &BlogPage{Blog: blogView(b), HTML: s.renderer.Blog(b), Posts: make([]*PostView, 0, b.PostCount())}
	for _, p := range b.Posts() {
		page.Posts = append(page.Posts, postView(p))
	}
	return page, nil
}

// PostPage returns the post view and its rendered markup under one read lock.
func (s *BlogService) PostPage(id int) (*PostView, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.post(id)
	if err != nil {
		return nil, "", err
	}
	return postView(p), s.renderer.Post(p), nil
}

// RenderPost renders the full post with its comments.
func (s *BlogService) RenderPost(id int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.post(id)
	if err != nil {
		return "", err
	}
	return s.renderer.Post(p), nil
}

func (s *BlogService) RenderPostSummary(id int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.post(id)
	if err != nil {
		return "", err
	}
	return s.renderer.PostSummary(p), nil
}

func (s *BlogService) RenderComment(id int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.comment(id)
	if err != nil {
		return "", err
	}
	return s.renderer.Comment(c), nil
}
