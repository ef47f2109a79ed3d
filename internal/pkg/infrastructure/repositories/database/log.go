package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrEmptyLog = fmt.Errorf("log is empty")

// Log is an append-only sequence of records, ordered by created_at with ties
// broken by id. T must be a gorm model with CreatedAt and ID columns.
type Log[T any] struct {
	db *gorm.DB
}

func NewLog[T any](db *gorm.DB) (*Log[T], error) {
	var model T

	err := db.AutoMigrate(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate %T: %w", model, err)
	}

	return &Log[T]{db: db}, nil
}

func (l *Log[T]) Append(ctx context.Context, record *T) error {
	return l.db.WithContext(ctx).Create(record).Error
}

// Latest returns the most recently created record, or ErrEmptyLog.
func (l *Log[T]) Latest(ctx context.Context) (T, error) {
	var record T

	err := l.db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Take(&record).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return record, ErrEmptyLog
	}

	return record, err
}

func (l *Log[T]) Count(ctx context.Context) (int64, error) {
	var model T
	var n int64

	err := l.db.WithContext(ctx).Model(&model).Count(&n).Error

	return n, err
}
