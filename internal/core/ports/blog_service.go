package ports

import (
	"context"

	"github.com/blogit/blogit-api/internal/core/domain"
)

// CreateBlogInput carries the fields for a new post. FeaturedImage is an
// optional reference returned by the image store, never the binary itself.
type CreateBlogInput struct {
	Title         string
	Synopsis      string
	Content       string
	FeaturedImage string
}

// BlogService defines use-case operations on posts. Mutations are
// ownership-scoped: authorID must match the post's recorded author.
type BlogService interface {
	Create(ctx context.Context, authorID string, input CreateBlogInput) (*domain.Blog, error)
	ListAll(ctx context.Context) ([]domain.Blog, error)
	GetByID(ctx context.Context, id string) (*domain.Blog, error)
	Update(ctx context.Context, authorID, id string, fields UpdateBlogFields) (*domain.Blog, error)
	SoftDelete(ctx context.Context, authorID, id string) error
}
