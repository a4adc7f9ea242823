package infrastructure

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/baccarifarah/spendLog/config"
	appErrors "github.com/baccarifarah/spendLog/internal/errors"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
}

const maxUploadBytes = 10 << 20

// UploadStore keeps receipt images on local disk, one directory per user.
// Stored names are random, the client-provided name only supplies the
// extension.
type UploadStore struct {
	dir string
}

func NewUploadStore(cfg *config.Config) (*UploadStore, error) {
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, err
	}
	return &UploadStore{dir: cfg.Upload.Dir}, nil
}

func (s *UploadStore) Save(userID, filename string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExtensions[ext] {
		return "", appErrors.NewValidationError("file", "unsupported file type")
	}

	userDir := filepath.Join(s.dir, sanitizeSegment(userID))
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(userDir, name))
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		os.Remove(dst.Name())
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	if written > maxUploadBytes {
		os.Remove(dst.Name())
		return "", appErrors.NewValidationError("file", "file exceeds the 10MB limit")
	}

	return name, nil
}

// Resolve maps a stored name back to its on-disk path, confined to the
// user's directory.
func (s *UploadStore) Resolve(userID, name string) (string, error) {
	userDir := filepath.Join(s.dir, sanitizeSegment(userID))
	path := filepath.Join(userDir, filepath.Base(name))
	if !strings.HasPrefix(path, userDir+string(filepath.Separator)) {
		return "", appErrors.ErrUploadNotFound
	}
	if _, err := os.Stat(path); err != nil {
		return "", appErrors.ErrUploadNotFound
	}
	return path, nil
}

func (s *UploadStore) Remove(userID, name string) error {
	path, err := s.Resolve(userID, name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// sanitizeSegment strips path separators so a user id can never escape
// the upload root.
func sanitizeSegment(segment string) string {
	segment = strings.ReplaceAll(segment, "/", "_")
	segment = strings.ReplaceAll(segment, "\\", "_")
	segment = strings.ReplaceAll(segment, "..", "_")
	return segment
}
