package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/app/logging"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"
	"inkwell/app/testutil"
)

func setupTestRouter(t *testing.T) (*mux.Router, *services.BlogService) {
	t.Helper()
	store, err := repositories.OpenBadgerStore("", true)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	service := services.NewBlogService(store, services.WithClock(testutil.FixedClock()))
	return SetupRoutes(service, logging.Discard()), service
}

func send(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAPIRoutes(t *testing.T) {
	router, _ := setupTestRouter(t)

	steps := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"register", "POST", "/api/users", `{"name":"Alice","email":"alice@example.com"}`, http.StatusCreated},
		{"create blog", "POST", "/api/users/1/blogs", `{"title":"My Blog"}`, http.StatusCreated},
		{"author post", "POST", "/api/blogs/1/posts", `{"authorId":1,"title":"Hello","body":"World"}`, http.StatusCreated},
		{"comment", "POST", "/api/posts/1/comments", `{"authorId":1,"title":"Re","body":"Nice!"}`, http.StatusCreated},
		{"append post", "POST", "/api/posts/1/body", `{"text":"!"}`, http.StatusOK},
		{"append comment", "POST", "/api/comments/1/body", `{"text":"!"}`, http.StatusOK},
		{"edit post", "PUT", "/api/posts/1", `{"body":"Worlds"}`, http.StatusOK},
		{"edit comment", "PUT", "/api/comments/1", `{"title":"Re:"}`, http.StatusOK},
		{"retitle blog", "PUT", "/api/blogs/1", `{"title":"Our Blog"}`, http.StatusOK},
		{"update user", "PUT", "/api/users/1", `{"name":"Al","email":"al@example.com"}`, http.StatusOK},
		{"list users", "GET", "/api/users", "", http.StatusOK},
		{"list blogs", "GET", "/api/blogs", "", http.StatusOK},
		{"show user", "GET", "/api/users/1", "", http.StatusOK},
		{"show blog", "GET", "/api/blogs/1", "", http.StatusOK},
		{"show post", "GET", "/api/posts/1", "", http.StatusOK},
		{"show comment", "GET", "/api/comments/1", "", http.StatusOK},
		{"missing post", "GET", "/api/posts/5", "", http.StatusNotFound},
		{"wrong method", "DELETE", "/api/posts/1", "", http.StatusMethodNotAllowed},
	}

	for _, step := range steps {
		w := send(router, step.method, step.path, step.body)
		require.Equal(t, step.status, w.Code, "%s: %s", step.name, w.Body.String())
		if step.status == http.StatusMethodNotAllowed {
			continue
		}
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"), step.name)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader), step.name)
	}

	w := send(router, "GET", "/api/comments/1", "")
	var comment services.CommentView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))
	assert.Equal(t, "Re:", comment.Title)
	assert.Equal(t, "Nice!!", comment.Body)
	assert.Equal(t, "Al", comment.AuthorName)
}

func TestWebRoutes(t *testing.T) {
	router, service := setupTestRouter(t)

	alice, err := service.RegisterUser("Alice", "alice@example.com")
	require.NoError(t, err)
	blog, err := service.CreateBlog(alice.ID, "My Blog")
	require.NoError(t, err)
	post, err := service.AuthorPost(alice.ID, blog.ID, "Hello", "World")
	require.NoError(t, err)
	_, err = service.AuthorComment(alice.ID, post.ID, "Re", "Nice!")
	require.NoError(t, err)

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{"/", http.StatusOK, `<a href="/blogs/1">My Blog</a>`},
		{"/blogs/1", http.StatusOK, "<h1>My Blog</h1><p><h2>Hello</h2>World</p>"},
		{"/posts/1", http.StatusOK, "<p><h2>Alice said: Re</h2>Nice!</p>"},
		{"/posts/2", http.StatusNotFound, "Not Found"},
		{"/nowhere", http.StatusNotFound, "404 page not found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := send(router, "GET", tt.path, "")
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
			assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}
