package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"

	"iceai_backend/internal/imageprocessor"
	"iceai_backend/internal/logger"
	"iceai_backend/internal/services/dto"
	"iceai_backend/internal/storage"
	"iceai_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

type UploadConfig struct {
	MaxFileSize  int64
	AllowedTypes []string
}

type UploadService interface {
	// UploadListingImage stores an image for a marketplace listing along with a JPEG preview.
	UploadListingImage(ctx context.Context, userID string, file *multipart.FileHeader) (*dto.ImageUploadResponse, error)
}

type uploadService struct {
	storage   storage.Storage
	processor *imageprocessor.Processor
	config    UploadConfig
}

func NewUploadService(storage storage.Storage, processor *imageprocessor.Processor, config UploadConfig) UploadService {
	if config.MaxFileSize <= 0 {
		config.MaxFileSize = 5 * 1024 * 1024
	}
	if processor == nil {
		processor = imageprocessor.NewProcessor(85, imageprocessor.DefaultMaxDimension)
	}
	return &uploadService{
		storage:   storage,
		processor: processor,
		config:    config,
	}
}

func (s *uploadService) UploadListingImage(ctx context.Context, userID string, file *multipart.FileHeader) (*dto.ImageUploadResponse, error) {
	if file == nil {
		return nil, apperrors.NewValidationMessage("image is required")
	}
	if file.Size > s.config.MaxFileSize {
		return nil, apperrors.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	// Read one byte past the limit so an understated header size is still caught.
	data, err := io.ReadAll(io.LimitReader(src, s.config.MaxFileSize+1))
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("failed to read uploaded file: %w", err))
	}
	if int64(len(data)) > s.config.MaxFileSize {
		return nil, apperrors.ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), s.config.AllowedTypes...) {
		logger.CtxWarn(ctx, "Rejected upload", "mime", mtype.String(), "user_id", userID)
		return nil, apperrors.ErrInvalidFileType
	}

	info, err := s.processor.Inspect(data)
	if err != nil {
		logger.CtxWarn(ctx, "Rejected unreadable image", "mime", mtype.String(), "error", err)
		return nil, apperrors.ErrUnreadableImage
	}
	logger.CtxDebug(ctx, "Image inspected", "format", info.Format, "width", info.Width, "height", info.Height)

	base := path.Join("listings", userID, uuid.NewString())
	key := base + mtype.Extension()
	url, err := s.save(ctx, key, data, mtype.String())
	if err != nil {
		return nil, err
	}

	res := &dto.ImageUploadResponse{
		Success: true,
		URL:     url,
		Width:   info.Width,
		Height:  info.Height,
	}

	// The original is already stored; a failed preview only drops the thumbnail.
	thumb, err := s.processor.Thumbnail(data, imageprocessor.SizeThumbnail)
	if err != nil {
		logger.CtxWarn(ctx, "Thumbnail generation failed", "key", key, "error", err)
	} else if thumbURL, err := s.save(ctx, base+"_"+imageprocessor.SizeThumbnail.Name+".jpg", thumb, "image/jpeg"); err != nil {
		logger.CtxWarn(ctx, "Thumbnail store failed", "key", key, "error", err)
	} else {
		res.ThumbnailURL = thumbURL
	}

	logger.CtxInfo(ctx, "Listing image uploaded", "key", key, "mime", mtype.String(), "size", len(data),
		"width", info.Width, "height", info.Height)
	return res, nil
}

func (s *uploadService) save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := s.storage.Save(ctx, key, bytes.NewReader(data), contentType); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeExternalServiceError, "storage", "Failed to store file", http.StatusBadGateway)
	}
	url, err := s.storage.GetURL(ctx, key)
	if err != nil {
		// Nothing can link to an object without a URL.
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			logger.CtxWarn(ctx, "Failed to remove unreachable upload", "key", key, "error", delErr)
		}
		return "", apperrors.InternalError(err)
	}
	return url, nil
}
