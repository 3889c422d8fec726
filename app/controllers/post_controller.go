package controllers

import (
	"net/http"

	"inkwell/app/services"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	service *services.BlogService
}

func NewPostController(service *services.BlogService) *PostController {
	return &PostController{service: service}
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}
	post, err := pc.service.Post(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Edit replaces the post title, body or both
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}
	var req editRequest
	if err := decode(r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	edit, err := req.edit()
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	post, err := pc.service.EditPost(id, edit)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Append adds text to the end of the post body
func (pc *PostController) Append(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}
	var req appendRequest
	if err := decode(r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	post, err := pc.service.AppendToPost(id, req.Text)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// CreateComment adds a comment to the post
func (pc *PostController) CreateComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}
	var req authorRequest
	if err := decode(r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	comment, err := pc.service.AuthorComment(req.AuthorID, id, req.Title, req.Body)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, comment)
}
