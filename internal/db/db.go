package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hopeactionjeunesse/hope-site/internal/config"
	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/models"
)

const (
	TypePostgres = "postgres"
	TypeMySQL    = "mysql"
	TypeSQLite   = "sqlite"
)

// Handle is the process-wide datastore connection. The first Get connects;
// the outcome, success or failure, is kept until the process exits.
type Handle struct {
	open func() (*gorm.DB, error)

	once sync.Once
	db   *gorm.DB
	err  error
}

func New(cfg *config.Config) *Handle {
	return NewWithOpener(func() (*gorm.DB, error) {
		return Connect(cfg)
	})
}

func NewWithOpener(open func() (*gorm.DB, error)) *Handle {
	return &Handle{open: open}
}

// NewFromGorm wraps an already open connection.
func NewFromGorm(db *gorm.DB) *Handle {
	h := &Handle{db: db}
	h.once.Do(func() {})
	return h
}

func (h *Handle) Get(ctx context.Context) (*gorm.DB, error) {
	h.once.Do(func() {
		h.db, h.err = h.open()
		if h.err != nil {
			logrus.WithError(h.err).Error("[db] connection failed")
			h.err = fmt.Errorf("%w: %v", content.ErrUnavailable, h.err)
		}
	})
	if h.err != nil {
		return nil, h.err
	}
	return h.db.WithContext(ctx), nil
}

func (h *Handle) Close() error {
	if h.db == nil {
		return nil
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// IsUnavailable reports whether err means the datastore could not be reached.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, content.ErrUnavailable) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var connectErr *pgconn.ConnectError
	return errors.As(err, &connectErr)
}

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: strings.EqualFold(cfg.DBType, TypePostgres),
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             2 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.DBConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logrus.WithField("type", cfg.DBType).Info("[db] connected")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Project{},
		&models.TeamMember{},
		&models.ContactMessage{},
	)
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.DBType) {
	case TypePostgres:
		return postgres.Open(cfg.DBUrl), nil
	case TypeMySQL:
		return mysql.Open(cfg.DBUrl), nil
	case TypeSQLite:
		if dir := filepath.Dir(cfg.DBUrl); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create directory %q: %w", dir, err)
			}
		}
		return sqlite.Open(cfg.DBUrl), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}
}
