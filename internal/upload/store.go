package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/amoylab/inventory/internal/common/config"
	"github.com/google/uuid"
)

// Store writes uploaded attachments below a directory and hands back
// the relative path recorded on the owning row
type Store struct {
	dir    string
	prefix string
}

// NewStore creates a Store for cfg
func NewStore(cfg config.UploadConfig) *Store {
	return &Store{dir: cfg.Dir, prefix: strings.Trim(cfg.Prefix, "/")}
}

// Dir is the directory files are written to
func (s *Store) Dir() string {
	return s.dir
}

// FromRequest returns the file posted in field, nil when the field is absent or empty
func FromRequest(r *http.Request, field string) (*multipart.FileHeader, error) {
	if field == "" {
		return nil, nil
	}
	_, fh, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	if fh.Filename == "" {
		return nil, nil
	}
	return fh, nil
}

// Save stores fh as <prefix><uuid><ext> and returns "<upload prefix>/<name>".
// A nil fh means no attachment and yields an empty path.
func (s *Store) Save(fh *multipart.FileHeader, prefix string) (string, error) {
	if fh == nil {
		return "", nil
	}

	if err := os.MkdirAll(s.dir, 0775); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := prefix + uuid.NewString() + strings.ToLower(filepath.Ext(filepath.Base(fh.Filename)))
	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path.Join(s.prefix, name), nil
}

// Remove deletes a file previously returned by Save. Unknown paths are ignored.
func (s *Store) Remove(stored string) error {
	name := strings.TrimPrefix(stored, s.prefix+"/")
	if stored == "" || name == stored || strings.ContainsAny(name, `/\`) {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
