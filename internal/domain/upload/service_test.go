// internal/domain/upload/service_test.go
package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/config"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := &config.Config{
		Upload: config.UploadConfig{
			MaxSize:           1024 * 1024,
			AllowedExtensions: []string{"jpg", "jpeg", "png", "gif"},
			LocalPath:         t.TempDir(),
			PublicBaseURL:     "/uploads",
		},
	}
	svc := NewService(cfg)
	svc.now = func() time.Time {
		return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func multipartFile(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	return file, header
}

func TestSaveDesignImage(t *testing.T) {
	svc := newTestService(t)
	file, header := multipartFile(t, "my design.png", []byte("png-bytes"))
	defer file.Close()

	result, err := svc.SaveDesignImage(file, header)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(result.Filename, ".png"))
	assert.NotContains(t, result.Filename, "my design", "original name never reaches disk")
	assert.Equal(t, "custom_orders/2025/03/14", filepath.ToSlash(filepath.Dir(result.Filepath)))
	assert.Equal(t, "/uploads/"+result.Filepath, result.URL)
	assert.Equal(t, int64(len("png-bytes")), result.Size)

	stored, err := os.ReadFile(filepath.Join(svc.config.Upload.LocalPath, result.Filepath))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(stored))
}

func TestSaveDesignImageRejectsNonImage(t *testing.T) {
	svc := newTestService(t)
	file, header := multipartFile(t, "notes.pdf", []byte("%PDF"))
	defer file.Close()

	_, err := svc.SaveDesignImage(file, header)
	assert.Error(t, err)
}

func TestSaveDesignImageRejectsOversized(t *testing.T) {
	svc := newTestService(t)
	svc.config.Upload.MaxSize = 4

	file, header := multipartFile(t, "big.jpg", []byte("0123456789"))
	defer file.Close()

	_, err := svc.SaveDesignImage(file, header)
	assert.Error(t, err)
}

func TestUniqueFilenames(t *testing.T) {
	svc := newTestService(t)

	first, headerA := multipartFile(t, "same.jpg", []byte("a"))
	defer first.Close()
	second, headerB := multipartFile(t, "same.jpg", []byte("b"))
	defer second.Close()

	resultA, err := svc.SaveDesignImage(first, headerA)
	require.NoError(t, err)
	resultB, err := svc.SaveDesignImage(second, headerB)
	require.NoError(t, err)
	assert.NotEqual(t, resultA.Filename, resultB.Filename)
}

func TestRemove(t *testing.T) {
	svc := newTestService(t)
	file, header := multipartFile(t, "design.gif", []byte("gif"))
	defer file.Close()

	result, err := svc.SaveDesignImage(file, header)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(result.Filepath))
	_, statErr := os.Stat(filepath.Join(svc.config.Upload.LocalPath, result.Filepath))
	assert.True(t, os.IsNotExist(statErr))

	assert.NoError(t, svc.Remove(result.Filepath), "removing twice is not an error")
	assert.Error(t, svc.Remove("../outside.txt"), "path escape rejected")
}
