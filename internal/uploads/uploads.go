// Package uploads stores product images on local disk and serves them back.
package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/harvestlink/harvestlink/internal/config"
)

// PathPrefix is where uploaded files are served
const PathPrefix = "/uploads/"

// FormField is the multipart field carrying the image
const FormField = "image"

// multipartOverhead allows for boundaries and headers around the file part
const multipartOverhead = 64 << 10

var (
	// ErrTooLarge is returned when the upload exceeds the configured size
	ErrTooLarge = errors.New("file is too large")
	// ErrUnsupportedType is returned when the content is not an accepted image
	ErrUnsupportedType = errors.New("only JPEG, PNG, WebP and GIF images are accepted")
	// ErrMissingFile is returned when the request has no image part
	ErrMissingFile = errors.New("an image file is required in the \"image\" field")
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Store writes images under a directory
type Store struct {
	dir      string
	maxBytes int64
}

// NewStore creates the upload directory if needed
func NewStore(cfg config.UploadsConfig) (*Store, error) {
	dir := filepath.Clean(cfg.GetDir())
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir, maxBytes: cfg.GetMaxBytes()}, nil
}

// MaxBytes returns the largest accepted file
func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// SaveFromRequest reads the image part of a multipart request and stores it.
// It returns the public URL path of the stored file.
func (s *Store) SaveFromRequest(w http.ResponseWriter, r *http.Request) (string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBytes+multipartOverhead)

	file, header, err := r.FormFile(FormField)
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return "", ErrTooLarge
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			return "", ErrMissingFile
		default:
			return "", fmt.Errorf("failed to read upload: %w", err)
		}
	}
	defer func() {
		_ = file.Close()
	}()

	if header.Size > s.maxBytes {
		return "", ErrTooLarge
	}
	return s.Save(file)
}

// Save sniffs and stores an image, returning its public URL path
func (s *Store) Save(src io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(src, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", ErrTooLarge
	}

	contentType := http.DetectContentType(data)
	ext, ok := extensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w (got %s)", ErrUnsupportedType, contentType)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	name := uuid.NewString() + ext
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	slog.Debug("Stored upload", "name", name, "content_type", contentType, "bytes", len(data))
	return PathPrefix + name, nil
}

// Remove deletes a previously stored file by its URL path. URLs outside the
// upload prefix are ignored.
func (s *Store) Remove(url string) error {
	if !strings.HasPrefix(url, PathPrefix) {
		return nil
	}
	name := path.Base(url)
	if name == "." || name == "/" || strings.HasPrefix(name, ".") {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Handler serves stored files read-only, without directory listings
func (s *Store) Handler() http.Handler {
	fs := http.FileServer(noListing{http.Dir(s.dir)})
	return http.StripPrefix(strings.TrimSuffix(PathPrefix, "/"), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		fs.ServeHTTP(w, r)
	}))
}

type noListing struct {
	fs http.FileSystem
}

func (n noListing) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() || strings.HasPrefix(path.Base(name), ".") {
		_ = f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}
