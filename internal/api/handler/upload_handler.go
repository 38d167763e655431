package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogit/blogit-api/internal/api/metrics"
	"github.com/blogit/blogit-api/internal/core/ports"
)

// UploadHandler hands out presigned upload URLs for blog images.
type UploadHandler struct {
	images ports.ImageStore
}

func NewUploadHandler(images ports.ImageStore) *UploadHandler {
	return &UploadHandler{images: images}
}

// Presign returns a presigned PUT URL and the public reference for a new
// image. The client uploads the binary directly to storage and stores the
// reference on the post.
//
// @Summary      Request an image upload URL
// @Tags         uploads
// @Produce      json
// @Success      200  {object}  uploadResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /uploads [post]
func (h *UploadHandler) Presign(c echo.Context) error {
	if _, err := ctxSession(c); err != nil {
		return err
	}

	key, uploadURL, err := h.images.PresignUpload(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.UploadsPresignedTotal.Inc()
	return c.JSON(http.StatusOK, uploadResponse{
		UploadURL: uploadURL,
		ImageURL:  h.images.PublicURL(key),
	})
}
