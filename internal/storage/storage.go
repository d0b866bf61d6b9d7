package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/hopeactionjeunesse/hope-site/internal/config"
)

const (
	TypeLocal = "local"
	TypeS3    = "s3"
	TypeR2    = "r2"
)

var ErrInvalidKey = errors.New("storage: invalid object key")

// Storage persists public objects and reports the URL they are served from.
type Storage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// Delete removes the object; a missing object is not an error.
	Delete(ctx context.Context, key string) error
	// KeyFromURL reverses Put's URL. ok is false for URLs this storage did not produce.
	KeyFromURL(url string) (key string, ok bool)
}

func NewStorage(cfg *config.Config) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.StorageType)) {
	case "", TypeLocal:
		return NewLocalStorage(cfg.StorageLocalDir, cfg.StoragePublicBaseURL)
	case TypeS3:
		return NewS3Storage(cfg)
	case TypeR2:
		return NewR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}

// cleanKey rejects empty, absolute and parent-relative keys.
func cleanKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(key)
	if cleaned != key || cleaned == "." || strings.HasPrefix(cleaned, "..") {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}

func joinPrefix(prefix, key string) string {
	cleanPrefix := trimPrefix(prefix)
	if cleanPrefix == "" {
		return strings.TrimLeft(key, "/")
	}
	return path.Join(cleanPrefix, strings.TrimLeft(key, "/"))
}

func trimPrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}

func trimBase(base string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/")
}

// keyUnder strips base + "/" + prefix from url.
func keyUnder(base, prefix, url string) (string, bool) {
	if base == "" {
		return "", false
	}
	rest, found := strings.CutPrefix(url, base+"/")
	if !found {
		return "", false
	}
	if p := trimPrefix(prefix); p != "" {
		rest, found = strings.CutPrefix(rest, p+"/")
		if !found {
			return "", false
		}
	}
	key, err := cleanKey(rest)
	if err != nil {
		return "", false
	}
	return key, true
}
