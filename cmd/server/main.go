package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dashcommerce/admin-service/config"
	"github.com/dashcommerce/admin-service/internal/api/rest"
	"github.com/dashcommerce/admin-service/internal/db"
	"github.com/dashcommerce/admin-service/internal/metrics"
	"github.com/dashcommerce/admin-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Загружаем переменные окружения; отсутствие .env не ошибка
	_ = godotenv.Load()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		bootstrapLog := logger.New(logger.INFO)
		bootstrapLog.Fatal("Failed to load configuration: %v", err)
	}

	// Инициализация логгера
	log := logger.New(logger.ParseLevel(cfg.Logging.Level))

	// Инициализация Prometheus
	promRegistry := prometheus.NewRegistry()
	systemMetrics := metrics.NewSystemMetrics(promRegistry, log)
	systemMetrics.StartRecording(15 * time.Second)
	defer systemMetrics.Stop()

	// Подключение к базе данных и миграция схемы
	gdb, err := db.Connect(cfg.Database.GetDSN(), log)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(gdb, log); err != nil {
			log.Error("Failed to close database: %v", err)
		}
	}()

	if err := db.Migrate(gdb, log); err != nil {
		log.Fatal("Failed to migrate database: %v", err)
	}

	// Установка режима Gin
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Настройка маршрутизатора
	router := rest.SetupRouter(gdb, cfg, promRegistry, log)

	// Создание и запуск HTTP сервера
	server := rest.NewServer(router, cfg, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
