package services

import "inkwell/app/models"

// UserView is a point-in-time copy of a user and the IDs it links to.
type UserView struct {
	models.UserRecord
	BlogIDs    []int `json:"blogIds"`
	CommentIDs []int `json:"commentIds"`
}

type BlogView struct {
	models.BlogRecord
	PostCount int   `json:"postCount"`
	PostIDs   []int `json:"postIds"`
}

type PostView struct {
	models.PostRecord
	CommentCount int   `json:"commentCount"`
	CommentIDs   []int `json:"commentIds"`
}

type CommentView struct {
	models.CommentRecord
	AuthorName string `json:"authorName"`
}

func userView(u *models.User) *UserView {
	v := &UserView{UserRecord: *u.Record(), BlogIDs: []int{}, CommentIDs: []int{}}
	for _, b := range u.Blogs() {
		v.BlogIDs = append(v.BlogIDs, b.ID)
	}
	for _, c := range u.Comments() {
		v.CommentIDs = append(v.CommentIDs, c.ID)
	}
	return v
}

func blogView(b *models.Blog) *BlogView {
	v := &BlogView{BlogRecord: *b.Record(), PostCount: b.PostCount(), PostIDs: []int{}}
	for _, p := range b.Posts() {
		v.PostIDs = append(v.PostIDs, p.ID)
	}
	return v
}

func postView(p *models.Post) *PostView {
	v := &PostView{PostRecord: *p.Record(), CommentCount: p.CommentCount(), CommentIDs: []int{}}
	for _, c := range p.Comments() {
		v.CommentIDs = append(v.CommentIDs, c.ID)
	}
	return v
}

func commentView(c *models.Comment) *CommentView {
	return &CommentView{CommentRecord: *c.Record(), AuthorName: c.Author().Name()}
}
