package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"messmet_backend/internal/storage"
	"messmet_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler раздает загруженные файлы при локальном хранилище.
// При R2 клиенты получают прямые URL и сюда не ходят.
type FileHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewFileHandler(base *BaseHandler, st storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		storage:     st,
	}
}

func (h *FileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	files := rg.Group("/files")
	{
		files.GET("/*filepath", h.ServeFile)
	}
}

func (h *FileHandler) ServeFile(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("filepath"), "/")
	if path == "" || strings.Contains(path, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	reader, err := h.storage.Get(c.Request.Context(), path)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewNotFoundError("File not found"))
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "public, max-age=86400")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		c.Error(err)
	}
}
