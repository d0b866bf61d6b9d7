package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/hopeactionjeunesse/hope-site/internal/db"
	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
)

type base struct {
	handle *db.Handle
}

// reader returns nil when the datastore is unavailable; callers then answer
// with an empty result.
func (b base) reader(ctx context.Context, op string) *gorm.DB {
	g, err := b.handle.Get(ctx)
	if err != nil {
		degraded(op, err)
		return nil
	}
	return g
}

func (b base) writer(ctx context.Context) (*gorm.DB, error) {
	return b.handle.Get(ctx)
}

func degraded(op string, err error) {
	logrus.WithError(err).WithField("op", op).Warn("datastore unavailable, returning empty result")
}

func writeErr(err error) error {
	if err == nil {
		return nil
	}
	if db.IsUnavailable(err) && !errors.Is(err, content.ErrUnavailable) {
		return fmt.Errorf("%w: %v", content.ErrUnavailable, err)
	}
	return err
}

// --------------------------------------------------
// Generic listing (services, projects, team members)
// --------------------------------------------------

type listing[T any] struct {
	base
	entity string
}

func (l listing[T]) listAll(ctx context.Context) ([]T, error) {
	q := l.reader(ctx, l.entity+".list_all")
	if q == nil {
		return []T{}, nil
	}

	rows := []T{}
	if err := q.
		Order("display_order ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		if db.IsUnavailable(err) {
			degraded(l.entity+".list_all", err)
			return []T{}, nil
		}
		return nil, err
	}
	return rows, nil
}

func (l listing[T]) listActive(ctx context.Context) ([]T, error) {
	q := l.reader(ctx, l.entity+".list_active")
	if q == nil {
		return []T{}, nil
	}

	rows := []T{}
	if err := q.
		Where("is_active = ?", true).
		Order("display_order ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		if db.IsUnavailable(err) {
			degraded(l.entity+".list_active", err)
			return []T{}, nil
		}
		return nil, err
	}
	return rows, nil
}

func (l listing[T]) getByID(ctx context.Context, id uint) (*T, error) {
	q := l.reader(ctx, l.entity+".get_by_id")
	if q == nil {
		return nil, nil
	}

	var row T
	if err := q.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if db.IsUnavailable(err) {
			degraded(l.entity+".get_by_id", err)
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (l listing[T]) create(ctx context.Context, row *T) error {
	q, err := l.writer(ctx)
	if err != nil {
		return err
	}
	return writeErr(q.Create(row).Error)
}

// update touches only the given columns plus updated_at. An unknown id
// matches no rows and is not an error.
func (l listing[T]) update(ctx context.Context, id uint, columns map[string]any) error {
	q, err := l.writer(ctx)
	if err != nil {
		return err
	}
	columns["updated_at"] = time.Now()
	return writeErr(q.Model(new(T)).Where("id = ?", id).Updates(columns).Error)
}

func (l listing[T]) delete(ctx context.Context, id uint) error {
	q, err := l.writer(ctx)
	if err != nil {
		return err
	}
	return writeErr(q.Where("id = ?", id).Delete(new(T)).Error)
}
