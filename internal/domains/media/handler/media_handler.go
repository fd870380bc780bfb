package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/media"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// maxUploadSize caps image uploads at 5 MB.
const maxUploadSize = 5 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

type MediaHandler struct {
	storage media.ImageStorage
}

func NewMediaHandler(storage media.ImageStorage) *MediaHandler {
	return &MediaHandler{storage: storage}
}

// Upload accepts a multipart image under the "file" field and returns the
// public URL. Object keys are random, so uploads never collide.
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file field")
		return
	}

	if fileHeader.Size > maxUploadSize {
		response.BadRequest(c, "File exceeds the 5MB upload limit")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		response.BadRequest(c, "Unsupported file type")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Unable to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		response.BadRequest(c, "Unable to read uploaded file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("uploads/%s%s", uuid.NewString(), ext)

	url, err := h.storage.Upload(c.Request.Context(), key, data, contentType)
	if err != nil {
		logger.Error("media upload error", err)
		response.InternalServerError(c, "Upload failed")
		return
	}

	response.Success(c, http.StatusCreated, "File uploaded successfully", gin.H{
		"key": key,
		"url": url,
	})
}
