package handlers

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"iceai_backend/internal/storage"
	"iceai_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler serves uploads kept in local storage. S3 objects are fetched
// from the bucket URL directly and need no route.
type FileHandler struct {
	*BaseHandler
	storage *storage.LocalStorage
}

func NewFileHandler(base *BaseHandler, storage *storage.LocalStorage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		storage:     storage,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	files := r.Group(h.storage.BaseURL())
	{
		files.GET("/*filepath", h.ServeFile)
		files.HEAD("/*filepath", h.ServeFile)
	}
}

func (h *FileHandler) ServeFile(c *gin.Context) {
	key := strings.TrimPrefix(path.Clean("/"+c.Param("filepath")), "/")
	if key == "" {
		apperrors.HandleError(c, apperrors.ErrNotFound(nil, "storage", "File not found"))
		return
	}

	exists, err := h.storage.Exists(c.Request.Context(), key)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if !exists {
		apperrors.HandleError(c, apperrors.ErrNotFound(nil, "storage", "File not found"))
		return
	}

	full := filepath.Join(h.storage.BasePath(), filepath.FromSlash(key))
	if info, err := os.Stat(full); err != nil || info.IsDir() {
		apperrors.HandleError(c, apperrors.ErrNotFound(err, "storage", "File not found"))
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Header("X-Content-Type-Options", "nosniff")
	c.File(full)
}
