// internal/domain/upload/service.go
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/your-org/storefront-backend/internal/config"
)

// Service handles design image uploads for custom orders. Files land in
// a date-partitioned directory under the configured local path and are
// referenced by relative path from the custom order record.
type Service struct {
	config *config.Config
	now    func() time.Time
}

// NewService creates a new upload service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		now:    time.Now,
	}
}

// UploadResult represents a stored upload
type UploadResult struct {
	Filename string `json:"filename"`
	Filepath string `json:"filepath"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
}

// SaveDesignImage validates and stores an uploaded design image
func (s *Service) SaveDesignImage(file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	if err := s.validate(header); err != nil {
		return nil, err
	}

	filename := s.uniqueFilename(header.Filename)
	relativeDir := s.datePartition()
	fullDir := filepath.Join(s.config.Upload.LocalPath, "custom_orders", relativeDir)
	if err := os.MkdirAll(fullDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	fullPath := filepath.Join(fullDir, filename)
	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, file)
	if err != nil {
		os.Remove(fullPath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	relativePath := filepath.ToSlash(filepath.Join("custom_orders", relativeDir, filename))
	return &UploadResult{
		Filename: filename,
		Filepath: relativePath,
		URL:      strings.TrimRight(s.config.Upload.PublicBaseURL, "/") + "/" + relativePath,
		Size:     written,
	}, nil
}

// Remove deletes a stored upload by its relative path
func (s *Service) Remove(relativePath string) error {
	cleaned := filepath.Clean(relativePath)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return fmt.Errorf("invalid upload path: %s", relativePath)
	}
	fullPath := filepath.Join(s.config.Upload.LocalPath, cleaned)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *Service) validate(header *multipart.FileHeader) error {
	if header == nil || header.Filename == "" {
		return fmt.Errorf("no file provided")
	}
	if header.Size > s.config.Upload.MaxSize {
		return fmt.Errorf("file size exceeds %d bytes", s.config.Upload.MaxSize)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	for _, allowed := range s.config.Upload.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return nil
		}
	}
	return fmt.Errorf("file type .%s is not allowed, only images are accepted", ext)
}

// uniqueFilename keeps the original extension but replaces the name with
// a uuid so customer-supplied names never reach the filesystem.
func (s *Service) uniqueFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.New().String() + ext
}

func (s *Service) datePartition() string {
	today := s.now().UTC()
	return filepath.Join(
		fmt.Sprintf("%d", today.Year()),
		fmt.Sprintf("%02d", today.Month()),
		fmt.Sprintf("%02d", today.Day()),
	)
}
