package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Meta is the identity and timestamp part shared by every persisted record.
type Meta struct {
	ID        int       `json:"id" validate:"gte=0"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
	UpdatedAt time.Time `json:"updatedAt" validate:"required,gtefield=CreatedAt"`
}

// Identity gives repositories access to the embedded Meta.
func (m *Meta) Identity() *Meta { return m }

// UserRecord is the persisted form of a User.
type UserRecord struct {
	Meta
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BlogRecord is the persisted form of a Blog. Its posts are found by BlogID.
type BlogRecord struct {
	Meta
	OwnerID int    `json:"ownerId" validate:"gt=0"`
	Title   string `json:"title"`
}

// PostRecord is the persisted form of a Post.
type PostRecord struct {
	Meta
	BlogID int    `json:"blogId" validate:"gt=0"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// CommentRecord is the persisted form of a Comment.
type CommentRecord struct {
	Meta
	PostID   int    `json:"postId" validate:"gt=0"`
	AuthorID int    `json:"authorId" validate:"gt=0"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

func (r *UserRecord) Validate() error    { return validate.Struct(r) }
func (r *BlogRecord) Validate() error    { return validate.Struct(r) }
func (r *PostRecord) Validate() error    { return validate.Struct(r) }
func (r *CommentRecord) Validate() error { return validate.Struct(r) }

func metaOf(id int, ts Timestamp) Meta {
	return Meta{ID: id, CreatedAt: ts.createdAt.UTC(), UpdatedAt: ts.updatedAt.UTC()}
}

func (u *User) Record() *UserRecord {
	return &UserRecord{Meta: metaOf(u.ID, u.ts), Name: u.name, Email: u.email}
}

func (b *Blog) Record() *BlogRecord {
	return &BlogRecord{Meta: metaOf(b.ID, b.ts), OwnerID: b.owner.ID, Title: b.title}
}

func (p *Post) Record() *PostRecord {
	return &PostRecord{Meta: metaOf(p.ID, p.ts), BlogID: p.blog.ID, Title: p.title, Body: p.body}
}

func (c *Comment) Record() *CommentRecord {
	return &CommentRecord{
		Meta:     metaOf(c.ID, c.ts),
		PostID:   c.post.ID,
		AuthorID: c.author.ID,
		Title:    c.title,
		Body:     c.body,
	}
}

// RestoreUser rebuilds a user from its record. Blogs and comments are
// attached afterwards by RestoreBlog and RestoreComment.
func RestoreUser(clock Clock, rec *UserRecord) *User {
	return &User{
		ID:    rec.ID,
		name:  rec.Name,
		email: rec.Email,
		ts:    RestoreTimestamp(clock, rec.CreatedAt, rec.UpdatedAt),
	}
}

// RestoreBlog rebuilds a blog and appends it to its owner's blogs.
// Records must be restored in ID order to keep display order.
func RestoreBlog(owner *User, rec *BlogRecord) (*Blog, error) {
	if owner == nil {
		return nil, &InsertError{Collection: "user.blogs", Err: ErrNilEntity}
	}
	if owner.ID != rec.OwnerID {
		return nil, &InsertError{Collection: "user.blogs", Err: ErrForeignParent}
	}
	b := &Blog{
		ID:    rec.ID,
		owner: owner,
		title: rec.Title,
		ts:    RestoreTimestamp(owner.ts.clock, rec.CreatedAt, rec.UpdatedAt),
	}
	owner.blogs.Append(b)
	return b, nil
}

// RestorePost rebuilds a post and submits it to its blog.
func RestorePost(blog *Blog, rec *PostRecord) (*Post, error) {
	if blog == nil {
		return nil, &InsertError{Collection: "blog.posts", Err: ErrNilEntity}
	}
	if blog.ID != rec.BlogID {
		return nil, &InsertError{Collection: "blog.posts", Err: ErrForeignParent}
	}
	p := &Post{
		ID:    rec.ID,
		blog:  blog,
		title: rec.Title,
		body:  rec.Body,
		ts:    RestoreTimestamp(blog.ts.clock, rec.CreatedAt, rec.UpdatedAt),
	}
	if err := blog.AcceptPost(p); err != nil {
		return nil, err
	}
	return p, nil
}

// RestoreComment rebuilds a comment, submits it to its post and records it
// in the author's comments.
func RestoreComment(post *Post, author *User, rec *CommentRecord) (*Comment, error) {
	if post == nil || author == nil {
		return nil, &InsertError{Collection: "post.comments", Err: ErrNilEntity}
	}
	if post.ID != rec.PostID || author.ID != rec.AuthorID {
		return nil, &InsertError{Collection: "post.comments", Err: ErrForeignParent}
	}
	c := &Comment{
		ID:     rec.ID,
		post:   post,
		author: author,
		title:  rec.Title,
		body:   rec.Body,
		ts:     RestoreTimestamp(author.ts.clock, rec.CreatedAt, rec.UpdatedAt),
	}
	if err := post.AcceptComment(c); err != nil {
		return nil, err
	}
	author.comments.Append(c)
	return c, nil
}
