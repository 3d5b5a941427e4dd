package repository

import (
	"errors"
	"strings"

	"github.com/dashcommerce/admin-service/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error codes surfaced as client errors
const (
	pgUniqueViolation     = "23505"
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
)

// translateError приводит ошибку хранилища к доменной таксономии.
// Нарушения ограничений — это ошибки клиента, а не инфраструктуры,
// и не должны схлопываться в generic internal error.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrInvalidData
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return domain.ErrDuplicate
		case pgNotNullViolation, pgForeignKeyViolation:
			return domain.ErrInvalidData
		}
	}

	// sqlite (тесты) отдает нарушения ограничений текстом
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return domain.ErrDuplicate
	case strings.Contains(msg, "NOT NULL constraint failed"),
		strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return domain.ErrInvalidData
	}

	return err
}
