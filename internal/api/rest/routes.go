package rest

import (
	"time"

	"github.com/dashcommerce/admin-service/config"
	"github.com/dashcommerce/admin-service/internal/api/rest/handlers"
	"github.com/dashcommerce/admin-service/internal/api/rest/middleware"
	"github.com/dashcommerce/admin-service/internal/domain"
	"github.com/dashcommerce/admin-service/internal/metrics"
	"github.com/dashcommerce/admin-service/internal/repository"
	"github.com/dashcommerce/admin-service/internal/service"
	"github.com/dashcommerce/admin-service/internal/token"
	"github.com/dashcommerce/admin-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRouter настраивает маршрутизатор Gin с маршрутами и middleware
func SetupRouter(db *gorm.DB, cfg *config.Config, registry *prometheus.Registry, log *logger.Logger) *gin.Engine {
	r := gin.New()

	// Подключение middleware
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(gin.Recovery())

	httpMetrics := metrics.NewHTTPMetrics(registry, log)
	r.Use(httpMetrics.Middleware())

	// Endpoint для проверки работоспособности сервиса
	r.GET("/health", handlers.HealthCheck)

	// Prometheus метрики
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Выдача и проверка токенов
	tokens := token.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMn)*time.Minute)
	authMiddleware := middleware.NewAuthMiddleware(tokens, log)

	// Репозитории
	userStore := repository.NewUserStore(db, log)
	customerStore := repository.NewStore[domain.Customer](db, log)
	productStore := repository.NewStore[domain.Product](db, log)
	orderStore := repository.NewStore[domain.Order](db, log)

	// Сервисы
	authService := service.NewAuthService(userStore, tokens, log)
	userService := service.NewUserService(userStore, log)
	customerService := service.NewCustomerService(customerStore, log)
	productService := service.NewProductService(productStore, log)
	orderService := service.NewOrderService(orderStore, customerStore, log)

	// Обработчики
	authHandler := handlers.NewAuthHandler(authService, log)
	userHandler := handlers.NewResource(userService, "User", "users", log)
	customerHandler := handlers.NewResource(customerService, "Customer", "customers", log)
	productHandler := handlers.NewResource(productService, "Product", "products", log)
	orderHandler := handlers.NewResource(orderService, "Order", "orders", log)

	api := r.Group("/api")

	// Аутентификация — единственные незащищенные маршруты
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Все остальное за шлюзом авторизации
	protected := api.Group("", authMiddleware.RequireAuth())

	// Пользователи создаются только через регистрацию, POST отсутствует
	users := protected.Group("/users")
	{
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.Get)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}

	customers := protected.Group("/customers")
	{
		customers.GET("", customerHandler.List)
		customers.GET("/:id", customerHandler.Get)
		customers.POST("", customerHandler.Create)
		customers.PUT("/:id", customerHandler.Update)
		customers.DELETE("/:id", customerHandler.Delete)
	}

	products := protected.Group("/products")
	{
		products.GET("", productHandler.List)
		products.GET("/:id", productHandler.Get)
		products.POST("", productHandler.Create)
		products.PUT("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
	}

	orders := protected.Group("/orders")
	{
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.Get)
		orders.POST("", orderHandler.Create)
		orders.PUT("/:id", orderHandler.Update)
		orders.DELETE("/:id", orderHandler.Delete)
	}

	return r
}
