package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blogit/blogit-api/internal/core/domain"
	"github.com/blogit/blogit-api/internal/core/ports"
)

const blogSelect = `
	SELECT b.id, b.title, b.synopsis, b.content, b.featured_image,
	       b.author_id, b.is_deleted, b.created_at, b.updated_at,
	       u.id, u.first_name, u.last_name, u.username
	FROM blogs b
	JOIN users u ON u.id = b.author_id`

// BlogRepository persists posts in PostgreSQL. Soft-deleted rows are filtered
// out of every query, and owned mutations are single conditional writes so
// the check and the write cannot race.
type BlogRepository struct {
	db *sql.DB
}

func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO blogs (id, title, synopsis, content, featured_image, author_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		blog.ID, blog.Title, blog.Synopsis, blog.Content, blog.FeaturedImage,
		blog.AuthorID, blog.CreatedAt, blog.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	row := r.db.QueryRowContext(ctx, blogSelect+` WHERE b.id = $1 AND NOT b.is_deleted`, id)
	blog, err := scanBlog(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("query blog by id: %w", err)
	}
	return blog, nil
}

func (r *BlogRepository) ListActive(ctx context.Context) ([]domain.Blog, error) {
	rows, err := r.db.QueryContext(ctx, blogSelect+` WHERE NOT b.is_deleted ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query blogs: %w", err)
	}
	defer rows.Close()

	blogs := []domain.Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		blogs = append(blogs, *blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blogs: %w", err)
	}
	return blogs, nil
}

// UpdateOwned applies the supplied fields in one conditional statement.
// Zero rows affected means the post does not exist, is deleted, or belongs
// to someone else — all reported as ErrBlogNotFound.
func (r *BlogRepository) UpdateOwned(ctx context.Context, id, authorID string, fields ports.UpdateBlogFields) (*domain.Blog, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE blogs SET
			title          = COALESCE($3, title),
			synopsis       = COALESCE($4, synopsis),
			content        = COALESCE($5, content),
			featured_image = COALESCE($6, featured_image),
			updated_at     = now()
		 WHERE id = $1 AND author_id = $2 AND NOT is_deleted`,
		id, authorID, fields.Title, fields.Synopsis, fields.Content, fields.FeaturedImage,
	)
	if err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrBlogNotFound
	}

	return r.FindByID(ctx, id)
}

// SoftDeleteOwned flips the deletion flag under the same ownership condition
// as UpdateOwned. The row is never physically removed.
func (r *BlogRepository) SoftDeleteOwned(ctx context.Context, id, authorID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE blogs SET is_deleted = TRUE, updated_at = now()
		 WHERE id = $1 AND author_id = $2 AND NOT is_deleted`,
		id, authorID,
	)
	if err != nil {
		return fmt.Errorf("soft delete blog: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}

func scanBlog(scan func(dest ...any) error) (*domain.Blog, error) {
	var b domain.Blog
	var author domain.AuthorSummary
	err := scan(&b.ID, &b.Title, &b.Synopsis, &b.Content, &b.FeaturedImage,
		&b.AuthorID, &b.IsDeleted, &b.CreatedAt, &b.UpdatedAt,
		&author.ID, &author.FirstName, &author.LastName, &author.Username)
	if err != nil {
		return nil, err
	}
	b.Author = &author
	return &b, nil
}
