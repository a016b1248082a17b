package handler

import (
	"net/http"

	"github.com/NusratJahanNila/plantnet-backend/internal/storage"
	"github.com/labstack/echo/v4"
)

type ImageHandler struct {
	uploader *storage.Uploader
}

func NewImageHandler(uploader *storage.Uploader) *ImageHandler {
	return &ImageHandler{uploader: uploader}
}

type ImageUploadResponse struct {
	URL string `json:"url"`
}

// Upload accepts a multipart "image" field and returns its public URL.
func (h *ImageHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "image file is required"))
	}
	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "could not read image file"))
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	url, err := h.uploader.Upload(c.Request().Context(), src, fileHeader.Filename, contentType)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to upload image"))
	}
	return c.JSON(http.StatusCreated, ImageUploadResponse{URL: url})
}
