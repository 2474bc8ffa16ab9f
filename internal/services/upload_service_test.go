package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"iceai_backend/internal/imageprocessor"
	"iceai_backend/internal/storage"
	"iceai_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

// testMaxDimension leaves room for the 640x360 fixture.
const testMaxDimension = 1024

func newUploadService(t *testing.T, maxSize int64) (UploadService, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: dir, BaseURL: "/files"})
	require.NoError(t, err)
	return NewUploadService(store, imageprocessor.NewProcessor(80, testMaxDimension), UploadConfig{
		MaxFileSize:  maxSize,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
	}), dir
}

func TestUploadService_StoresImage(t *testing.T) {
	svc, dir := newUploadService(t, 1<<20)
	img := encodePNG(t, 640, 360)

	res, err := svc.UploadListingImage(context.Background(), "7", fileHeader(t, "shot.txt", img))
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, strings.HasPrefix(res.URL, "/files/listings/7/"), res.URL)
	assert.True(t, strings.HasSuffix(res.URL, ".png"), res.URL)
	assert.Equal(t, 640, res.Width)
	assert.Equal(t, 360, res.Height)

	stored, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(res.URL, "/files/")))
	require.NoError(t, err)
	assert.Equal(t, img, stored)

	require.NotEmpty(t, res.ThumbnailURL)
	assert.Equal(t, strings.TrimSuffix(res.URL, ".png")+"_thumb.jpg", res.ThumbnailURL)
	thumb, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(res.ThumbnailURL, "/files/")))
	require.NoError(t, err)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(thumb))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 180, cfg.Height)
}

func TestUploadService_RejectsNonImage(t *testing.T) {
	svc, _ := newUploadService(t, 1024)

	_, err := svc.UploadListingImage(context.Background(), "7", fileHeader(t, "fake.png", []byte("just some text")))
	requireAppError(t, err, apperrors.CodeValidationFailed, http.StatusUnsupportedMediaType)
}

func TestUploadService_RejectsOversizedDimensions(t *testing.T) {
	svc, _ := newUploadService(t, 1<<20)

	_, err := svc.UploadListingImage(context.Background(), "7", fileHeader(t, "wide.png", encodePNG(t, testMaxDimension+1, 4)))
	requireAppError(t, err, apperrors.CodeValidationFailed, http.StatusUnprocessableEntity)
}

func TestUploadService_RejectsLargeFile(t *testing.T) {
	svc, _ := newUploadService(t, 16)

	_, err := svc.UploadListingImage(context.Background(), "7", fileHeader(t, "big.png", encodePNG(t, 8, 8)))
	requireAppError(t, err, apperrors.CodeLimitExceeded, http.StatusRequestEntityTooLarge)
}

// noURLStorage stores files but can never produce a URL for them.
type noURLStorage struct {
	*storage.LocalStorage
}

func (s noURLStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "", errors.New("no public url")
}

func TestUploadService_RemovesUnreachableUpload(t *testing.T) {
	dir := t.TempDir()
	local, err := storage.NewLocalStorage(storage.Config{BasePath: dir, BaseURL: "/files"})
	require.NoError(t, err)
	svc := NewUploadService(noURLStorage{local}, nil, UploadConfig{
		MaxFileSize:  1 << 20,
		AllowedTypes: []string{"image/png"},
	})

	_, err = svc.UploadListingImage(context.Background(), "7", fileHeader(t, "shot.png", encodePNG(t, 16, 16)))
	requireAppError(t, err, apperrors.CodeInternalError, http.StatusInternalServerError)

	entries, err := os.ReadDir(filepath.Join(dir, "listings", "7"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadService_MissingFile(t *testing.T) {
	svc, _ := newUploadService(t, 1024)

	_, err := svc.UploadListingImage(context.Background(), "7", nil)
	requireAppError(t, err, apperrors.CodeValidationFailed, http.StatusBadRequest)
}
