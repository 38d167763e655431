package ports

import (
	"context"

	"github.com/blogit/blogit-api/internal/core/domain"
)

// UpdateBlogFields carries a partial post update. Nil fields are left
// unchanged.
type UpdateBlogFields struct {
	Title         *string
	Synopsis      *string
	Content       *string
	FeaturedImage *string
}

// BlogRepository persists posts. Every read excludes soft-deleted rows, and
// the owned mutations are single conditional writes: a non-existent id, a
// deleted post, and someone else's post all report domain.ErrBlogNotFound.
type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) error
	// FindByID returns the non-deleted post with its author summary.
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	// ListActive returns all non-deleted posts, newest first, with author
	// summaries.
	ListActive(ctx context.Context) ([]domain.Blog, error)
	UpdateOwned(ctx context.Context, id, authorID string, fields UpdateBlogFields) (*domain.Blog, error)
	SoftDeleteOwned(ctx context.Context, id, authorID string) error
}
