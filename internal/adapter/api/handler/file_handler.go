package handler

import (
	"github.com/labstack/echo/v4"

	"huduma/internal/infrastructure/storage"
	"huduma/pkg/errors"
	"huduma/pkg/response"
)

type FileHandler struct {
	storageClient *storage.CloudStorageClient
}

func NewFileHandler(storageClient *storage.CloudStorageClient) *FileHandler {
	return &FileHandler{
		storageClient: storageClient,
	}
}

// Upload stores a multipart file and returns its public URL. Clients attach
// the URL to messages or profiles; nothing references the file server-side.
func (h *FileHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing file upload", err))
	}

	if fileHeader.Size > 5*1024*1024 {
		return response.Error(c, errors.BadRequest("File exceeds the 5MB limit", nil))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read upload", err))
	}
	defer src.Close()

	folder := c.FormValue("folder")
	if folder == "" {
		folder = "attachments"
	}

	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.storageClient.UploadFile(c.Request().Context(), src, contentType, folder)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to store file", err))
	}

	return response.Created(c, map[string]interface{}{
		"url": url,
	})
}
