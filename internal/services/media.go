package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MediaStore accepts uploaded binary content and returns a stable public
// path the product row can reference.
type MediaStore interface {
	Save(file *multipart.FileHeader) (string, error)
}

// LocalMediaStore writes uploads to a directory on disk. Files get generated
// names, so user-supplied filenames never reach the filesystem.
type LocalMediaStore struct {
	Dir      string // filesystem directory, e.g. "./media"
	BasePath string // public URL prefix, e.g. "/media"
}

func NewLocalMediaStore(dir, basePath string) (*LocalMediaStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &LocalMediaStore{Dir: dir, BasePath: strings.TrimRight(basePath, "/")}, nil
}

func (s *LocalMediaStore) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return "", fmt.Errorf("unsupported image format %q", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}
	return s.BasePath + "/" + name, nil
}
