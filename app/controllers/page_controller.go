package controllers

import (
	"bytes"
	"encoding/hex"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/crypto/sha3"

	"inkwell/app/repositories"
	"inkwell/app/services"
	"inkwell/app/views"
)

// PageController serves the rendered blog tree as HTML pages.
type PageController struct {
	service *services.BlogService
	log     *slog.Logger
	pages   map[string]*template.Template
}

type link struct {
	Href string
	Text string
}

// page is the data every template receives. Body holds markup produced by
// the models renderer and is inserted as is.
type page struct {
	Title    string
	Blogs    []*services.BlogView
	Body     template.HTML
	Links    []link
	ParentID int
}

func NewPageController(service *services.BlogService, log *slog.Logger) *PageController {
	pages := make(map[string]*template.Template)
	for _, name := range []string{"index", "blog", "post"} {
		pages[name] = template.Must(template.ParseFS(views.FS, "layout.html", name+".html"))
	}
	return &PageController{service: service, log: log, pages: pages}
}

// Home lists every blog
func (pc *PageController) Home(w http.ResponseWriter, r *http.Request) {
	pc.render(w, r, "index", page{Title: "Blogs", Blogs: pc.service.ListBlogs()})
}

// Blog shows the blog heading with its post summaries
func (pc *PageController) Blog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid blog ID", http.StatusBadRequest)
		return
	}
	bp, err := pc.service.BlogPage(id)
	if err != nil {
		pc.sendPageError(w, err)
		return
	}

	links := make([]link, 0, len(bp.Posts))
	for _, post := range bp.Posts {
		links = append(links, link{Href: "/posts/" + strconv.Itoa(post.ID), Text: post.Title})
	}
	pc.render(w, r, "blog", page{Title: bp.Blog.Title, Body: template.HTML(bp.HTML), Links: links})
}

// Post shows the full post with its comments
func (pc *PageController) Post(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}
	post, html, err := pc.service.PostPage(id)
	if err != nil {
		pc.sendPageError(w, err)
		return
	}
	pc.render(w, r, "post", page{Title: post.Title, Body: template.HTML(html), ParentID: post.BlogID})
}

func (pc *PageController) sendPageError(w http.ResponseWriter, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	pc.log.Error("page failed", "err", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// render executes the page into memory so it can be tagged with an ETag and
// answered with 304 when the client already has it.
func (pc *PageController) render(w http.ResponseWriter, r *http.Request, name string, data page) {
	var buf bytes.Buffer
	if err := pc.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		pc.log.Error("template failed", "page", name, "err", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}

	etag := ETag(buf.Bytes())
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// ETag returns the quoted SHA3-256 digest of body.
func ETag(body []byte) string {
	sum := sha3.Sum256(body)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}
