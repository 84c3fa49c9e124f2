package uploads

import (
	"bytes"
	"encoding/base64"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harvestlink/harvestlink/internal/config"
)

// 1x1 transparent PNG
var tinyPNG, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII=")

func newStore(t *testing.T, maxBytes int64) *Store {
	t.Helper()

	s, err := NewStore(config.UploadsConfig{Dir: t.TempDir(), MaxBytes: maxBytes})
	require.NoError(t, err)
	return s
}

func multipartRequest(t *testing.T, field string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, "photo.bin")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/products/x/image", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestStore_Save(t *testing.T) {
	t.Parallel()

	s := newStore(t, 1<<20)

	url, err := s.Save(bytes.NewReader(tinyPNG))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, PathPrefix))
	assert.True(t, strings.HasSuffix(url, ".png"))

	stored, err := os.ReadFile(filepath.Join(s.dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, tinyPNG, stored)

	_, err = s.Save(strings.NewReader("<html><script>alert(1)</script></html>"))
	require.ErrorIs(t, err, ErrUnsupportedType)

	entries, err := os.ReadDir(s.dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "rejected uploads leave no files behind")
}

func TestStore_SaveTooLarge(t *testing.T) {
	t.Parallel()

	s := newStore(t, 16)
	_, err := s.Save(bytes.NewReader(tinyPNG))
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestStore_SaveFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		maxBytes int64
		req      func(t *testing.T) *http.Request
		wantErr  error
	}{
		{
			name:     "png",
			maxBytes: 1 << 20,
			req:      func(t *testing.T) *http.Request { return multipartRequest(t, FormField, tinyPNG) },
		},
		{
			name:     "wrong field",
			maxBytes: 1 << 20,
			req:      func(t *testing.T) *http.Request { return multipartRequest(t, "file", tinyPNG) },
			wantErr:  ErrMissingFile,
		},
		{
			name:     "not multipart",
			maxBytes: 1 << 20,
			req: func(_ *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
			},
			wantErr: ErrMissingFile,
		},
		{
			name:     "text file",
			maxBytes: 1 << 20,
			req:      func(t *testing.T) *http.Request { return multipartRequest(t, FormField, []byte("just some text")) },
			wantErr:  ErrUnsupportedType,
		},
		{
			name:     "over the limit",
			maxBytes: 10,
			req:      func(t *testing.T) *http.Request { return multipartRequest(t, FormField, tinyPNG) },
			wantErr:  ErrTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newStore(t, tt.maxBytes)
			url, err := s.SaveFromRequest(httptest.NewRecorder(), tt.req(t))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, url)
		})
	}
}

func TestStore_HandlerAndRemove(t *testing.T) {
	t.Parallel()

	s := newStore(t, 1<<20)
	url, err := s.Save(bytes.NewReader(tinyPNG))
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.Handle(PathPrefix, s.Handler())

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, url, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, PathPrefix, nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, url, nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	require.NoError(t, s.Remove(url))
	require.NoError(t, s.Remove(url))
	require.NoError(t, s.Remove("https://cdn.example.com/kale.png"))

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, url, nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
