package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/blogit/blogit-api/internal/core/domain"
	"github.com/blogit/blogit-api/internal/core/ports"
)

// BlogService implements post CRUD with author-only mutation and soft delete.
type BlogService struct {
	repo   ports.BlogRepository
	logger zerolog.Logger
}

func NewBlogService(repo ports.BlogRepository, logger zerolog.Logger) *BlogService {
	return &BlogService{repo: repo, logger: logger}
}

func (s *BlogService) Create(ctx context.Context, authorID string, input ports.CreateBlogInput) (*domain.Blog, error) {
	if input.Title == "" || input.Synopsis == "" || input.Content == "" {
		return nil, fmt.Errorf("%w: title, synopsis and content are required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	blog := &domain.Blog{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Synopsis:      input.Synopsis,
		Content:       input.Content,
		FeaturedImage: input.FeaturedImage,
		AuthorID:      authorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, blog); err != nil {
		s.logger.Error().Err(err).Msg("failed to create blog")
		return nil, err
	}

	s.logger.Info().Str("blog_id", blog.ID).Str("author_id", authorID).Msg("blog created")
	return s.repo.FindByID(ctx, blog.ID)
}

func (s *BlogService) ListAll(ctx context.Context) ([]domain.Blog, error) {
	return s.repo.ListActive(ctx)
}

func (s *BlogService) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies only the supplied fields. The repository's conditional write
// reports ErrBlogNotFound for a missing, deleted, or foreign post alike.
func (s *BlogService) Update(ctx context.Context, authorID, id string, fields ports.UpdateBlogFields) (*domain.Blog, error) {
	blog, err := s.repo.UpdateOwned(ctx, id, authorID, fields)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("blog_id", id).Str("author_id", authorID).Msg("blog updated")
	return blog, nil
}

// SoftDelete flips the deletion flag; the row is never physically removed.
// Deleted is terminal: the post disappears from every subsequent read and
// mutation.
func (s *BlogService) SoftDelete(ctx context.Context, authorID, id string) error {
	if err := s.repo.SoftDeleteOwned(ctx, id, authorID); err != nil {
		return err
	}
	s.logger.Info().Str("blog_id", id).Str("author_id", authorID).Msg("blog soft-deleted")
	return nil
}
