package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists image blobs onto the local filesystem and maps them to
// URLs under a configured public base. It is intended for development and
// single-host deployments where an object storage service is not available.
type FileStore struct {
	basePath string
	baseURL  string
}

// NewFileStore initializes a FileStore rooted at basePath. Stored files are
// addressed as baseURL/<namespace>/<filename>.
func NewFileStore(basePath, baseURL string) (*FileStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("storage: base URL is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}
	return &FileStore{basePath: basePath, baseURL: baseURL}, nil
}

// BasePath returns the configured root directory.
func (s *FileStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Save persists the bytes under namespace/filename and returns the public
// URL for the stored file. Keys are cleaned to prevent directory traversal.
func (s *FileStore) Save(namespace, filename string, data []byte) (string, error) {
	if s == nil {
		return "", errors.New("storage: no store configured")
	}
	key, err := sanitizeKey(namespace + "/" + filename)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("storage: ensure directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

// Read returns the stored bytes for a URL previously returned by Save.
func (s *FileStore) Read(fileURL string) ([]byte, error) {
	key, err := s.keyFromURL(fileURL)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.basePath, filepath.FromSlash(key)))
	if err != nil {
		return nil, fmt.Errorf("storage: read file: %w", err)
	}
	return data, nil
}

// Remove deletes the stored file behind a URL previously returned by Save.
// Removing a file that is already gone is not an error.
func (s *FileStore) Remove(fileURL string) error {
	key, err := s.keyFromURL(fileURL)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.basePath, filepath.FromSlash(key))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove file: %w", err)
	}
	return nil
}

// keyFromURL reverses the URL mapping done by Save. URLs outside the
// configured base are rejected so callers cannot reach arbitrary paths.
func (s *FileStore) keyFromURL(fileURL string) (string, error) {
	if s == nil {
		return "", errors.New("storage: no store configured")
	}
	rest, ok := strings.CutPrefix(fileURL, s.baseURL+"/")
	if !ok {
		return "", fmt.Errorf("storage: url %q is not managed by this store", fileURL)
	}
	return sanitizeKey(rest)
}

// sanitizeKey normalizes a key and prevents escaping the storage root.
func sanitizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("storage: key is required")
	}
	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.TrimPrefix(key, "./")
	key = strings.TrimLeft(key, "/")
	cleaned := filepath.Clean(key)
	cleaned = strings.ReplaceAll(cleaned, "\\", "/")
	if cleaned == "." || strings.HasPrefix(cleaned, "../") {
		return "", errors.New("storage: invalid key")
	}
	return cleaned, nil
}
