package handler

import "github.com/blogit/blogit-api/internal/core/domain"

type createBlogRequest struct {
	Title    string `json:"title"    validate:"required,max=200"`
	Synopsis string `json:"synopsis" validate:"required,max=500"`
	Content  string `json:"content"  validate:"required"`
	ImageURL string `json:"imageUrl"`
}

// updateBlogRequest is a partial update: nil fields stay untouched.
type updateBlogRequest struct {
	Title    *string `json:"title"    validate:"omitempty,min=1,max=200"`
	Synopsis *string `json:"synopsis" validate:"omitempty,min=1,max=500"`
	Content  *string `json:"content"  validate:"omitempty,min=1"`
	ImageURL *string `json:"imageUrl"`
}

type blogListResponse struct {
	Blogs []domain.Blog `json:"blogs"`
}

// uploadResponse carries a presigned PUT URL and the public reference the
// client stores on the post once the upload completes.
type uploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	ImageURL  string `json:"imageUrl"`
}
