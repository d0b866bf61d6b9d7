package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes objects below baseDir; they are served over HTTP at publicBase.
type LocalStorage struct {
	baseDir    string
	publicBase string
}

func NewLocalStorage(baseDir, publicBase string) (*LocalStorage, error) {
	baseDir = strings.TrimSpace(baseDir)
	if baseDir == "" {
		baseDir = "data/uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	publicBase = trimBase(publicBase)
	if publicBase == "" {
		publicBase = "/files"
	}
	return &LocalStorage{baseDir: baseDir, publicBase: publicBase}, nil
}

// LocalBaseDir is the directory to expose at PublicBase.
func (s *LocalStorage) LocalBaseDir() string {
	return s.baseDir
}

func (s *LocalStorage) PublicBase() string {
	return s.publicBase
}

func (s *LocalStorage) Put(ctx context.Context, key string, data []byte, _ string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty payload")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	absPath := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("create dir: %w", err)
	}
	if err := os.WriteFile(absPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return s.publicBase + "/" + key, nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(key)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

func (s *LocalStorage) KeyFromURL(url string) (string, bool) {
	return keyUnder(s.publicBase, "", url)
}

var _ Storage = (*LocalStorage)(nil)
