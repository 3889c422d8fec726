package models

// Blog is owned by a User and owns its posts.
type Blog struct {
	ID int

	owner *User // non-owning
	title string
	posts List[*Post]

	ts Timestamp
}

func (b *Blog) Owner() *User  { return b.owner }
func (b *Blog) Title() string { return b.title }

// Posts returns the blog's posts in insertion order.
func (b *Blog) Posts() []*Post { return b.posts.Items() }

func (b *Blog) PostCount() int { return b.posts.Len() }

func (b *Blog) Timestamp() Timestamp { return b.ts }

// Retitle replaces the blog title.
func (b *Blog) Retitle(title string) {
	b.title = title
	b.ts.Touch()
}

// AcceptPost appends p to the blog's posts. A nil post, or one written
// for another blog, is refused with an *InsertError.
func (b *Blog) AcceptPost(p *Post) error {
	if p == nil {
		return &InsertError{Collection: "blog.posts", Err: ErrNilEntity}
	}
	if p.blog != b {
		return &InsertError{Collection: "blog.posts", Err: ErrForeignParent}
	}
	b.posts.Append(p)
	return nil
}

// OfferPost is the lenient form of AcceptPost: anything that is not a post
// of this blog is dropped silently. It reports whether v was appended.
func (b *Blog) OfferPost(v any) bool {
	if p, ok := v.(*Post); ok && (p == nil || p.blog != b) {
		return false
	}
	return b.posts.Offer(v)
}

// Withdraw unlinks the blog from its owner. Timestamps are left alone.
func (b *Blog) Withdraw() bool {
	return b.owner != nil && b.owner.blogs.Remove(b)
}

// Render returns the blog heading followed by every post summary.
func (b *Blog) Render() string { return plain.Blog(b) }
