package db

import (
	"fmt"

	"github.com/dashcommerce/admin-service/internal/domain"
	"github.com/dashcommerce/admin-service/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect открывает соединение с PostgreSQL через GORM.
// TranslateError включен, чтобы нарушения ограничений приходили
// как gorm.ErrDuplicatedKey и т.п., а не как сырые ошибки драйвера.
func Connect(dsn string, log *logger.Logger) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying connection pool: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Error("Failed to ping database: %v", err)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Connected to database")
	return gdb, nil
}

// Migrate синхронизирует схему со всеми моделями приложения
func Migrate(gdb *gorm.DB, log *logger.Logger) error {
	err := gdb.AutoMigrate(
		&domain.User{},
		&domain.Customer{},
		&domain.Product{},
		&domain.Order{},
	)
	if err != nil {
		log.Error("Failed to migrate database schema: %v", err)
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	log.Info("Database schema migrated")
	return nil
}

// Close закрывает пул соединений под GORM
func Close(gdb *gorm.DB, log *logger.Logger) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection pool: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("Failed to close database connection: %v", err)
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
