package repository

import (
	"context"
	"fmt"

	"github.com/dashcommerce/admin-service/internal/domain"
	"github.com/dashcommerce/admin-service/pkg/logger"
	"gorm.io/gorm"
)

// Crud интерфейс доступа к хранилищу для одного вида сущностей.
// Каждая операция — одно обращение к базе, без ретраев.
type Crud[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uint) (T, error)
	Create(ctx context.Context, entity *T) error
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
}

// Store обобщенный GORM-репозиторий, инстанцируемый для каждой сущности
type Store[T any] struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewStore создает репозиторий для сущности T
func NewStore[T any](db *gorm.DB, log *logger.Logger) *Store[T] {
	return &Store[T]{db: db, log: log}
}

// GetAll возвращает все записи в порядке, который отдает база
func (s *Store[T]) GetAll(ctx context.Context) ([]T, error) {
	var items []T
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", translateError(err))
	}
	return items, nil
}

// GetByID возвращает одну запись по первичному ключу
func (s *Store[T]) GetByID(ctx context.Context, id uint) (T, error) {
	var item T
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return item, translateError(err)
	}
	return item, nil
}

// Create вставляет новую запись; id и таймстемпы заполняет база
func (s *Store[T]) Create(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Save перезаписывает существующую запись целиком
func (s *Store[T]) Save(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Save(entity).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Delete удаляет запись безвозвратно. Ноль затронутых строк — ErrNotFound.
func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		s.log.Warn("No rows deleted for ID: %d", id)
		return domain.ErrNotFound
	}
	return nil
}
