package models

// Comment is owned by a Post and authored by a User.
type Comment struct {
	ID int

	post   *Post // non-owning
	author *User // non-owning
	title  string
	body   string

	ts Timestamp
}

func (c *Comment) Post() *Post   { return c.post }
func (c *Comment) Author() *User { return c.author }
func (c *Comment) Title() string { return c.title }
func (c *Comment) Body() string  { return c.body }

func (c *Comment) Timestamp() Timestamp { return c.ts }

// AppendToBody concatenates text onto the body.
func (c *Comment) AppendToBody(text string) {
	c.body += text
	c.ts.Touch()
}

func (c *Comment) ReplaceBody(body string) {
	c.body = body
	c.ts.Touch()
}

func (c *Comment) Retitle(title string) {
	c.title = title
	c.ts.Touch()
}

// Withdraw unlinks the comment from its post and from its author's comments.
func (c *Comment) Withdraw() bool {
	removed := c.post != nil && c.post.comments.Remove(c)
	if c.author != nil {
		c.author.comments.Remove(c)
	}
	return removed
}

// Render returns "<author> said: <title>" and the body.
func (c *Comment) Render() string { return plain.Comment(c) }
