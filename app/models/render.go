package models

import (
	"html"
	"strings"
	"unicode/utf8"
)

// SummaryLength is the number of body characters shown in a post summary.
const SummaryLength = 30

// Renderer produces the markup of the blog tree. The zero value emits user
// text verbatim, matching the fragment templates byte for byte.
type Renderer struct {
	// EscapeHTML escapes user text placed between the tags.
	EscapeHTML bool
	// SummaryLength overrides the package SummaryLength when positive.
	SummaryLength int
}

var plain Renderer

func (r Renderer) text(s string) string {
	if r.EscapeHTML {
		return html.EscapeString(s)
	}
	return s
}

func (r Renderer) summaryLength() int {
	if r.SummaryLength > 0 {
		return r.SummaryLength
	}
	return SummaryLength
}

// Blog renders <h1>{title}</h1> followed by every post summary.
func (r Renderer) Blog(b *Blog) string {
	var sb strings.Builder
	sb.WriteString("<h1>")
	sb.WriteString(r.text(b.title))
	sb.WriteString("</h1>")
	for _, p := range b.posts.All() {
		sb.WriteString(r.PostSummary(p))
	}
	return sb.String()
}

// PostSummary renders <p><h2>{title}</h2>{first characters of body}</p>.
func (r Renderer) PostSummary(p *Post) string {
	var sb strings.Builder
	sb.WriteString("<p><h2>")
	sb.WriteString(r.text(p.title))
	sb.WriteString("</h2>")
	sb.WriteString(r.text(truncate(p.body, r.summaryLength())))
	sb.WriteString("</p>")
	return sb.String()
}

// Post renders the full post, a "Comments:" heading and every comment.
func (r Renderer) Post(p *Post) string {
	var sb strings.Builder
	sb.WriteString("<div><h2>")
	sb.WriteString(r.text(p.title))
	sb.WriteString("</h2>")
	sb.WriteString(r.text(p.body))
	sb.WriteString("</div><h2>Comments:</h2>")
	for _, c := range p.comments.All() {
		sb.WriteString(r.Comment(c))
	}
	return sb.String()
}

// Comment renders <p><h2>{author} said: {title}</h2>{body}</p>.
func (r Renderer) Comment(c *Comment) string {
	var sb strings.Builder
	sb.WriteString("<p><h2>")
	sb.WriteString(r.text(c.author.name))
	sb.WriteString(" said: ")
	sb.WriteString(r.text(c.title))
	sb.WriteString("</h2>")
	sb.WriteString(r.text(c.body))
	sb.WriteString("</p>")
	return sb.String()
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
