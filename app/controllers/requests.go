package controllers

import (
	"errors"

	"inkwell/app/services"
)

// Request bodies are checked for shape only. Names, emails, titles and
// bodies are stored as given, empty ones included.
type profileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type titleRequest struct {
	Title string `json:"title"`
}

// authorRequest creates a post or a comment on behalf of AuthorID.
type authorRequest struct {
	AuthorID int    `json:"authorId" validate:"gt=0"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

type appendRequest struct {
	Text string `json:"text"`
}

type editRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

var errEmptyEdit = errors.New("nothing to update: set title or body")

func (e editRequest) edit() (services.Edit, error) {
	if e.Title == nil && e.Body == nil {
		return services.Edit{}, errEmptyEdit
	}
	return services.Edit{Title: e.Title, Body: e.Body}, nil
}
