package service

import (
	"context"

	"github.com/dashcommerce/admin-service/internal/repository"
	"github.com/dashcommerce/admin-service/pkg/logger"
)

// Mapper описывает одну сущность для обобщенного CRUD-сервиса:
// как построить запись из запроса (значения по умолчанию, обязательные
// поля) и как наложить частичное обновление на существующую запись.
type Mapper[T any, R any] interface {
	// New строит новую запись из запроса на создание
	New(ctx context.Context, req R) (T, error)
	// Apply переносит в запись только присутствующие в запросе поля
	Apply(ctx context.Context, entity *T, req R) error
}

// Crud интерфейс сервиса CRUD-операций над одним видом сущностей
type Crud[T any, R any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uint) (T, error)
	Create(ctx context.Context, req R) (T, error)
	Update(ctx context.Context, id uint, req R) (T, error)
	Delete(ctx context.Context, id uint) error
}

type crudService[T any, R any] struct {
	repo   repository.Crud[T]
	mapper Mapper[T, R]
	log    *logger.Logger
}

// NewCrudService создает обобщенный CRUD-сервис поверх репозитория и маппера
func NewCrudService[T any, R any](repo repository.Crud[T], mapper Mapper[T, R], log *logger.Logger) Crud[T, R] {
	return &crudService[T, R]{
		repo:   repo,
		mapper: mapper,
		log:    log,
	}
}

func (s *crudService[T, R]) GetAll(ctx context.Context) ([]T, error) {
	s.log.Debug("Getting all records")
	return s.repo.GetAll(ctx)
}

func (s *crudService[T, R]) GetByID(ctx context.Context, id uint) (T, error) {
	s.log.Debug("Getting record by ID: %d", id)
	return s.repo.GetByID(ctx, id)
}

func (s *crudService[T, R]) Create(ctx context.Context, req R) (T, error) {
	s.log.Debug("Creating record")
	entity, err := s.mapper.New(ctx, req)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := s.repo.Create(ctx, &entity); err != nil {
		var zero T
		return zero, err
	}

	return entity, nil
}

// Update загружает существующую запись, накладывает присутствующие поля
// запроса и сохраняет результат целиком. Отсутствующие поля не трогаются.
func (s *crudService[T, R]) Update(ctx context.Context, id uint, req R) (T, error) {
	s.log.Debug("Updating record with ID: %d", id)
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := s.mapper.Apply(ctx, &existing, req); err != nil {
		var zero T
		return zero, err
	}

	if err := s.repo.Save(ctx, &existing); err != nil {
		var zero T
		return zero, err
	}

	return existing, nil
}

func (s *crudService[T, R]) Delete(ctx context.Context, id uint) error {
	s.log.Debug("Deleting record with ID: %d", id)
	return s.repo.Delete(ctx, id)
}
