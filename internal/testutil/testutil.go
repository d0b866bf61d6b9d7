// Package testutil provides shared helpers for package tests.
package testutil

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/hopeactionjeunesse/hope-site/internal/config"
	"github.com/hopeactionjeunesse/hope-site/internal/db"
)

// NewHandle returns a connected handle backed by a temporary SQLite file
// with all tables migrated.
func NewHandle(t *testing.T) *db.Handle {
	t.Helper()
	logrus.SetLevel(logrus.WarnLevel)

	cfg := &config.Config{
		DBType:         db.TypeSQLite,
		DBUrl:          filepath.Join(t.TempDir(), "hope-test.db"),
		DBMaxOpenConns: 1,
	}
	h := db.New(cfg)
	if _, err := h.Get(context.Background()); err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

// UnavailableHandle returns a handle whose connection attempt always fails.
func UnavailableHandle() *db.Handle {
	return db.NewWithOpener(func() (*gorm.DB, error) {
		return nil, errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	})
}

// Gorm exposes the underlying connection for direct assertions.
func Gorm(t *testing.T, h *db.Handle) *gorm.DB {
	t.Helper()
	g, err := h.Get(context.Background())
	if err != nil {
		t.Fatalf("get db: %v", err)
	}
	return g
}

func Ptr[T any](v T) *T {
	return &v
}
