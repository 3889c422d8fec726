package routes

import (
	"log/slog"

	"github.com/gorilla/mux"

	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/services"
)

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(service *services.BlogService, log *slog.Logger) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recoverer(log))

	users := controllers.NewUserController(service)
	blogs := controllers.NewBlogController(service)
	posts := controllers.NewPostController(service)
	comments := controllers.NewCommentController(service)
	pages := controllers.NewPageController(service, log)

	// Web routes
	router.HandleFunc("/", pages.Home).Methods("GET")
	router.HandleFunc("/blogs/{id:[0-9]+}", pages.Blog).Methods("GET")
	router.HandleFunc("/posts/{id:[0-9]+}", pages.Post).Methods("GET")

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	api.HandleFunc("/users", users.Index).Methods("GET")
	api.HandleFunc("/users", users.Create).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}", users.Show).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}", users.Update).Methods("PUT")
	api.HandleFunc("/users/{id:[0-9]+}/blogs", users.CreateBlog).Methods("POST")

	api.HandleFunc("/blogs", blogs.Index).Methods("GET")
	api.HandleFunc("/blogs/{id:[0-9]+}", blogs.Show).Methods("GET")
	api.HandleFunc("/blogs/{id:[0-9]+}", blogs.Update).Methods("PUT")
	api.HandleFunc("/blogs/{id:[0-9]+}/posts", blogs.CreatePost).Methods("POST")

	api.HandleFunc("/posts/{id:[0-9]+}", posts.Show).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}", posts.Edit).Methods("PUT")
	api.HandleFunc("/posts/{id:[0-9]+}/body", posts.Append).Methods("POST")
	api.HandleFunc("/posts/{id:[0-9]+}/comments", posts.CreateComment).Methods("POST")

	api.HandleFunc("/comments/{id:[0-9]+}", comments.Show).Methods("GET")
	api.HandleFunc("/comments/{id:[0-9]+}", comments.Edit).Methods("PUT")
	api.HandleFunc("/comments/{id:[0-9]+}/body", comments.Append).Methods("POST")

	return router
}
