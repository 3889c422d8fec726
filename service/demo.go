package service

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"inkwell/app/services"
)

var headingColor = color.New(color.FgCyan, color.Bold)

// RunDemo builds a small blog tree through svc and prints each rendering.
func RunDemo(svc *services.BlogService, out io.Writer) error {
	alice, err := svc.RegisterUser("Alice", "alice@example.com")
	if err != nil {
		return err
	}
	bob, err := svc.RegisterUser("Bob", "bob@example.com")
	if err != nil {
		return err
	}

	blog, err := svc.CreateBlog(alice.ID, "My Blog")
	if err != nil {
		return err
	}
	hello, err := svc.AuthorPost(alice.ID, blog.ID, "Hello", "World")
	if err != nil {
		return err
	}
	guest, err := svc.AuthorPost(bob.ID, blog.ID, "Guest post",
		"Bob writes a longer body so the summary on the blog page is cut short.")
	if err != nil {
		return err
	}
	if _, err := svc.AuthorComment(alice.ID, hello.ID, "Re", "Nice!"); err != nil {
		return err
	}
	if _, err := svc.AuthorComment(bob.ID, hello.ID, "Agreed", "Short and sweet."); err != nil {
		return err
	}
	if _, err := svc.AppendToPost(hello.ID, ", again"); err != nil {
		return err
	}

	sections := []struct {
		title  string
		render func() (string, error)
	}{
		{"Blog", func() (string, error) { return svc.RenderBlog(blog.ID) }},
		{"Post", func() (string, error) { return svc.RenderPost(hello.ID) }},
		{"Summary", func() (string, error) { return svc.RenderPostSummary(guest.ID) }},
	}
	for _, s := range sections {
		html, err := s.render()
		if err != nil {
			return err
		}
		headingColor.Fprintln(out, s.title)
		fmt.Fprintln(out, html)
	}
	return nil
}
