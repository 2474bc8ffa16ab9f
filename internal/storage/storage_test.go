package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveExistsDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: dir, BaseURL: "/files/"})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "listings/7/a.png", strings.NewReader("png"), "image/png"))

	data, err := os.ReadFile(filepath.Join(dir, "listings", "7", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))

	ok, err := s.Exists(ctx, "listings/7/a.png")
	require.NoError(t, err)
	assert.True(t, ok)

	url, err := s.GetURL(ctx, "listings/7/a.png")
	require.NoError(t, err)
	assert.Equal(t, "/files/listings/7/a.png", url)

	require.NoError(t, s.Delete(ctx, "listings/7/a.png"))
	require.NoError(t, s.Delete(ctx, "listings/7/a.png"))
	ok, err = s.Exists(ctx, "listings/7/a.png")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStorage_StaysInsideBasePath(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: filepath.Join(dir, "uploads")})
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), "../../escape.txt", strings.NewReader("x"), "text/plain"))

	_, err = os.Stat(filepath.Join(dir, "uploads", "escape.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "escape.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestNewStorage_UnknownType(t *testing.T) {
	_, err := NewStorage(context.Background(), Config{Type: "ftp"})
	assert.Error(t, err)
}

func TestS3Storage_AgainstStubEndpoint(t *testing.T) {
	var mu sync.Mutex
	objects := map[string]string{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch r.Method {
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			objects[r.URL.Path] = string(body)
			w.WriteHeader(http.StatusOK)
		case http.MethodHead:
			if _, ok := objects[r.URL.Path]; ok {
				w.WriteHeader(http.StatusOK)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer srv.Close()

	s, err := NewS3Storage(context.Background(), Config{
		Bucket:    "listings",
		Region:    "us-east-1",
		AccessKey: "key",
		SecretKey: "secret",
		Endpoint:  srv.URL,
	})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "7/a.png", strings.NewReader("png"), "image/png"))

	mu.Lock()
	_, stored := objects["/listings/7/a.png"]
	mu.Unlock()
	assert.True(t, stored)

	ok, err := s.Exists(ctx, "7/a.png")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Exists(ctx, "7/missing.png")
	require.NoError(t, err)
	assert.False(t, ok)

	url, err := s.GetURL(ctx, "7/a.png")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/listings/7/a.png", url)
}
