package models

// User is an aggregate root. It owns its blogs and keeps a view of the
// comments it authored; the comments themselves belong to their posts.
type User struct {
	ID int

	name  string
	email string

	blogs    List[*Blog]
	comments List[*Comment]

	ts Timestamp
}

// NewUser creates a user with no blogs and no comments.
func NewUser(clock Clock, name, email string) *User {
	return &User{name: name, email: email, ts: NewTimestamp(clock)}
}

func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }

// Blogs returns the user's blogs in creation order.
func (u *User) Blogs() []*Blog { return u.blogs.Items() }

// Comments returns the comments the user authored, in authoring order.
func (u *User) Comments() []*Comment { return u.comments.Items() }

func (u *User) Timestamp() Timestamp { return u.ts }

// UpdateProfile replaces the name and email.
func (u *User) UpdateProfile(name, email string) {
	u.name = name
	u.email = email
	u.ts.Touch()
}

// CreateBlog creates an empty blog owned by u and appends it to u's blogs.
func (u *User) CreateBlog(title string) *Blog {
	b := &Blog{owner: u, title: title, ts: NewTimestamp(u.ts.clock)}
	u.blogs.Append(b)
	return b
}

// AuthorPost writes a post into blog. Any user may post into any blog.
func (u *User) AuthorPost(blog *Blog, title, body string) (*Post, error) {
	if blog == nil {
		return nil, &InsertError{Collection: "blog.posts", Err: ErrNilEntity}
	}
	p := &Post{blog: blog, title: title, body: body, ts: NewTimestamp(u.ts.clock)}
	if err := blog.AcceptPost(p); err != nil {
		return nil, err
	}
	return p, nil
}

// AuthorComment writes a comment on post and records it in u's comments.
func (u *User) AuthorComment(post *Post, title, body string) (*Comment, error) {
	if post == nil {
		return nil, &InsertError{Collection: "post.comments", Err: ErrNilEntity}
	}
	c := &Comment{post: post, author: u, title: title, body: body, ts: NewTimestamp(u.ts.clock)}
	if err := post.AcceptComment(c); err != nil {
		return nil, err
	}
	u.comments.Append(c)
	return c, nil
}
