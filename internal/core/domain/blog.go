package domain

import (
	"errors"
	"time"
)

// ErrBlogNotFound is returned both when no such post exists and when the
// caller does not own it. Collapsing the two hides other users' post ids.
var ErrBlogNotFound = errors.New("blog not found")

// AuthorSummary is the denormalized author view attached to blog reads.
type AuthorSummary struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
}

// Blog is a post. AuthorID is immutable after creation; a soft-deleted post
// is invisible to every read and mutation path.
type Blog struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Synopsis      string         `json:"synopsis"`
	Content       string         `json:"content"`
	FeaturedImage string         `json:"featuredImage,omitempty"`
	AuthorID      string         `json:"authorId"`
	Author        *AuthorSummary `json:"author,omitempty"`
	IsDeleted     bool           `json:"-"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
