// internal/services/storage_service_test.go
package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tab1k/tbd-back/internal/config"
)

func TestNewStorageServiceLocalFallback(t *testing.T) {
	svc, err := NewStorageService(&config.Config{})
	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Nil(t, svc.s3Client)
}

func TestStorageServiceLocalRoundTrip(t *testing.T) {
	svc := &StorageService{config: &config.Config{}, localDir: t.TempDir()}

	res, err := svc.uploadToLocal([]byte("not really a png"), "news/20260831_abcd1234.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/news/20260831_abcd1234.png", res.URL)
	assert.Equal(t, int64(len("not really a png")), res.Size)

	path := filepath.Join(svc.localDir, "news", "20260831_abcd1234.png")
	_, err = os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFile("news/20260831_abcd1234.png"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Deleting a missing key is not an error.
	require.NoError(t, svc.DeleteFile("news/missing.png"))
}

func TestUploadOptionsPerCategory(t *testing.T) {
	svc := &StorageService{config: &config.Config{}}

	videos := svc.GetDefaultUploadOptions("videos")
	assert.Equal(t, "videos", videos.Folder)
	assert.Contains(t, videos.AllowedTypes, ".mp4")
	assert.NotContains(t, videos.AllowedTypes, ".png")

	logo := svc.GetDefaultUploadOptions("logo")
	assert.Contains(t, logo.AllowedTypes, ".svg")

	unknown := svc.GetDefaultUploadOptions("nonsense")
	assert.Equal(t, "general", unknown.Folder)
}

func TestIsValidImageType(t *testing.T) {
	assert.True(t, isValidImageType([]byte{0xFF, 0xD8, 0xFF, 0xE0}))
	assert.True(t, isValidImageType([]byte("\x89PNG\r\n\x1a\n")))
	assert.True(t, isValidImageType([]byte("RIFF\x00\x00\x00\x00WEBP")))
	assert.False(t, isValidImageType([]byte("<svg xmlns=")))
	assert.False(t, isValidImageType([]byte{}))
}
