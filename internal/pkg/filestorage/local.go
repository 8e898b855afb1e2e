package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skillswap/skillswap/internal/pkg/apperrors"
)

// Upload size limits.
const (
	MaxImageSize = 5 << 20   // 5 MB
	MaxVideoSize = 200 << 20 // 200 MB
)

// LocalStorage stores uploaded files on the local filesystem.
type LocalStorage struct {
	basePath string
	logger   zerolog.Logger
}

// NewLocalStorage creates the storage root if needed.
func NewLocalStorage(basePath string, logger zerolog.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{
		basePath: basePath,
		logger:   logger.With().Str("component", "filestorage").Logger(),
	}, nil
}

// ValidateImage checks a course cover image against the size limit.
func ValidateImage(fh *multipart.FileHeader) error {
	if fh.Size > MaxImageSize {
		return apperrors.NewCustomError(apperrors.ErrFileTooLarge,
			fmt.Sprintf("Image %s exceeds the 5MB limit", fh.Filename))
	}
	return nil
}

// ValidateVideo checks a lecture video's size and declared MIME type.
func ValidateVideo(fh *multipart.FileHeader) error {
	if fh.Size > MaxVideoSize {
		return apperrors.NewCustomError(apperrors.ErrFileTooLarge,
			fmt.Sprintf("Video %s exceeds the 200MB limit", fh.Filename))
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "video/") {
		return apperrors.NewCustomError(apperrors.ErrUnsupportedFileType,
			fmt.Sprintf("File %s is not a video (%s)", fh.Filename, contentType))
	}
	return nil
}

// Save writes an uploaded file under a subdirectory of the storage
// root and returns its relative path. The stored name is randomized;
// only the extension is kept from the original.
func (s *LocalStorage) Save(fh *multipart.FileHeader, subDir string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(s.basePath, subDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := uuid.New().String() + filepath.Ext(fh.Filename)
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	rel := filepath.ToSlash(filepath.Join(subDir, name))
	s.logger.Debug().Str("path", rel).Int64("size", fh.Size).Msg("File stored")
	return rel, nil
}

// Delete removes a previously stored file. Missing files are not an
// error.
func (s *LocalStorage) Delete(relPath string) error {
	err := os.Remove(filepath.Join(s.basePath, relPath))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
