package models

// Post is owned by a Blog and owns its comments.
type Post struct {
	ID int

	blog     *Blog // non-owning
	title    string
	body     string
	comments List[*Comment]

	ts Timestamp
}

func (p *Post) Blog() *Blog   { return p.blog }
func (p *Post) Title() string { return p.title }
func (p *Post) Body() string  { return p.body }

func (p *Post) CommentCount() int { return p.comments.Len() }

// Comments returns the post's comments in insertion order.
func (p *Post) Comments() []*Comment { return p.comments.Items() }

func (p *Post) Timestamp() Timestamp { return p.ts }

// AppendToBody concatenates text onto the body.
func (p *Post) AppendToBody(text string) {
	p.body += text
	p.ts.Touch()
}

// ReplaceBody swaps the whole body.
func (p *Post) ReplaceBody(body string) {
	p.body = body
	p.ts.Touch()
}

func (p *Post) Retitle(title string) {
	p.title = title
	p.ts.Touch()
}

// AcceptComment appends c to the post's comments. A nil comment, or one
// written for another post, is refused with an *InsertError.
func (p *Post) AcceptComment(c *Comment) error {
	if c == nil {
		return &InsertError{Collection: "post.comments", Err: ErrNilEntity}
	}
	if c.post != p {
		return &InsertError{Collection: "post.comments", Err: ErrForeignParent}
	}
	p.comments.Append(c)
	return nil
}

// OfferComment is the lenient form of AcceptComment.
func (p *Post) OfferComment(v any) bool {
	if c, ok := v.(*Comment); ok && (c == nil || c.post != p) {
		return false
	}
	return p.comments.Offer(v)
}

// Withdraw unlinks the post from its blog.
func (p *Post) Withdraw() bool {
	return p.blog != nil && p.blog.posts.Remove(p)
}

// ShortRender returns the title and the first 30 characters of the body.
func (p *Post) ShortRender() string { return plain.PostSummary(p) }

// Render returns the full post followed by its comments.
func (p *Post) Render() string { return plain.Post(p) }
