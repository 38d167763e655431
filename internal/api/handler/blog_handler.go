package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogit/blogit-api/internal/api/metrics"
	"github.com/blogit/blogit-api/internal/core/domain"
	"github.com/blogit/blogit-api/internal/core/ports"
)

// BlogHandler handles HTTP requests for blog posts.
type BlogHandler struct {
	blogs ports.BlogService
}

func NewBlogHandler(blogs ports.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

// List returns all non-deleted posts, newest first. Public.
//
// @Summary      List all blog posts
// @Tags         blogs
// @Produce      json
// @Success      200  {object}  blogListResponse
// @Failure      500  {object}  errorResponse
// @Router       /blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	blogs, err := h.blogs.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogListResponse{Blogs: blogs})
}

// Get returns a single non-deleted post with its author summary. Public.
//
// @Summary      Get a blog post by id
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "Blog id"
// @Success      200  {object}  domain.Blog
// @Failure      404  {object}  errorResponse
// @Router       /blogs/{id} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	blog, err := h.blogs.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrBlogNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "blog not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, blog)
}

// Create persists a new post owned by the authenticated user.
//
// @Summary      Create a blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        body  body      createBlogRequest  true  "Blog post details"
// @Success      201   {object}  domain.Blog
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createBlogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	blog, err := h.blogs.Create(c.Request().Context(), session.Identity.ID, ports.CreateBlogInput{
		Title:         req.Title,
		Synopsis:      req.Synopsis,
		Content:       req.Content,
		FeaturedImage: req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.BlogsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, blog)
}

// Update applies a partial update to a post the authenticated user owns.
// A foreign or non-existent post yields the same 404.
//
// @Summary      Update an owned blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Blog id"
// @Param        body  body      updateBlogRequest  true  "Fields to update"
// @Success      200   {object}  domain.Blog
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /blogs/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req updateBlogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	blog, err := h.blogs.Update(c.Request().Context(), session.Identity.ID, c.Param("id"), ports.UpdateBlogFields{
		Title:         req.Title,
		Synopsis:      req.Synopsis,
		Content:       req.Content,
		FeaturedImage: req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrBlogNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "blog not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, blog)
}

// Delete soft-deletes a post the authenticated user owns. Same 404 collapse
// as Update.
//
// @Summary      Delete an owned blog post
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "Blog id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.blogs.SoftDelete(c.Request().Context(), session.Identity.ID, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrBlogNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "blog not found"})
		}
		return err
	}

	metrics.BlogsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Blog deleted successfully"})
}
