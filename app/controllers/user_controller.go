package controllers

import (
	"net/http"

	"inkwell/app/services"
)

// UserController handles HTTP requests for users and their blogs
type UserController struct {
	service *services.BlogService
}

func NewUserController(service *services.BlogService) *UserController {
	return &UserController{service: service}
}

// Index lists every user
func (uc *UserController) Index(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]any{"users": uc.service.ListUsers()})
}

func (uc *UserController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	user, err := uc.service.User(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, user)
}

// Create registers a new user
func (uc *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decode(r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	user, err := uc.service.RegisterUser(req.Name, req.Email)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, user)
}

// Update replaces the user's name and email
func (uc *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	var req profileRequest
	if err := decode(r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	user, err := uc.service.UpdateProfile(id, req.Name, req.Email)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, user)
}

// CreateBlog creates a blog owned by the user
func (uc *UserController) CreateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	var req titleRequest
	if err := decode(r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	blog, err := uc.service.CreateBlog(id, req.Title)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, blog)
}
