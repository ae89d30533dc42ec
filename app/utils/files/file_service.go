package files

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var allowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// FileService saves uploaded images under a web-servable local folder
// and removes them when the owning row is updated or deleted.
type FileService struct {
	uploadDir string
}

func NewFileService(uploadDir string) *FileService {
	return &FileService{uploadDir: uploadDir}
}

// FilePath builds the relative storage path for an upload, empty when
// no file was submitted.
func (s *FileService) FilePath(header *multipart.FileHeader) string {
	if header == nil || header.Filename == "" {
		return ""
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	return filepath.Join(s.uploadDir, uuid.New().String()+ext)
}

// SaveFile writes the upload to the given path. The extension must be
// one of the allowed image extensions.
func (s *FileService) SaveFile(header *multipart.FileHeader, path string) error {
	if header == nil || path == "" {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	allowed := false
	for _, e := range allowedExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("file extension %s is not allowed", ext)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create upload folder: %w", err)
	}

	src, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// DeleteFile removes a previously saved file. A missing file is not an
// error; the row is already being detached from it.
func (s *FileService) DeleteFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", path).Msg("failed to delete uploaded file")
	}
}
