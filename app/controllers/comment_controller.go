package controllers

import (
	"net/http"

	"inkwell/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	service *services.BlogService
}

func NewCommentController(service *services.BlogService) *CommentController {
	return &CommentController{service: service}
}

func (cc *CommentController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, "Invalid comment ID", http.StatusBadRequest)
		return
	}
	comment, err := cc.service.Comment(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, comment)
}

// Edit handles editing an existing comment
func (cc *CommentController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, "Invalid comment ID", http.StatusBadRequest)
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
	comment, err := cc.service.EditComment(id, edit)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, comment)
}

// Append adds text to the end of the comment body
func (cc *CommentController) Append(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, "Invalid comment ID", http.StatusBadRequest)
		return
	}
	var req appendRequest
	if err := decode(r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	comment, err := cc.service.AppendToComment(id, req.Text)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, comment)
}
