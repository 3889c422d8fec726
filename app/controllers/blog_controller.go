package controllers

import (
	"net/http"

	"inkwell/app/services"
)

// BlogController handles HTTP requests for blogs
type BlogController struct {
	service *services.BlogService
}

func NewBlogController(service *services.BlogService) *BlogController {
	return &BlogController{service: service}
}

func (bc *BlogController) Index(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]any{"blogs": bc.service.ListBlogs()})
}

func (bc *BlogController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, "Invalid blog ID", http.StatusBadRequest)
		return
	}
	blog, err := bc.service.Blog(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, blog)
}

// Update retitles the blog
func (bc *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, "Invalid blog ID", http.StatusBadRequest)
		return
	}
	var req titleRequest
	if err := decode(r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	blog, err := bc.service.RetitleBlog(id, req.Title)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, blog)
}

// CreatePost writes a post into the blog
func (bc *BlogController) CreatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, "Invalid blog ID", http.StatusBadRequest)
		return
	}
	var req authorRequest
	if err := decode(r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	post, err := bc.service.AuthorPost(req.AuthorID, id, req.Title, req.Body)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}
