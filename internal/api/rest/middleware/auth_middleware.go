package middleware

import (
	"net/http"
	"strings"

	"github.com/dashcommerce/admin-service/internal/token"
	"github.com/dashcommerce/admin-service/pkg/logger"
	"github.com/dashcommerce/admin-service/pkg/res"
	"github.com/gin-gonic/gin"
)

const (
	// ContextUsernameKey ключ контекста, под которым лежит имя
	// аутентифицированного пользователя
	ContextUsernameKey = "username"

	authHeaderPrefix = "Bearer "
)

// TokenValidator проверяет токен и возвращает его полезную нагрузку
type TokenValidator interface {
	Validate(tokenString string) (*token.Claims, error)
}

// AuthMiddleware шлюз авторизации для защищенных маршрутов.
// Токен принимается на веру до естественного истечения: запись
// пользователя в базе при проверке не перечитывается.
type AuthMiddleware struct {
	validator TokenValidator
	log       *logger.Logger
}

// NewAuthMiddleware создает шлюз авторизации
func NewAuthMiddleware(validator TokenValidator, log *logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		validator: validator,
		log:       log,
	}
}

// RequireAuth проверяет bearer-токен и кладет имя субъекта в контекст.
// Порядок проверок фиксирован: нет заголовка — 403, не bearer-схема — 403,
// не прошла проверка подписи или срока — 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.reject(c, http.StatusForbidden, "Forbidden")
			return
		}

		if !strings.HasPrefix(authHeader, authHeaderPrefix) {
			m.reject(c, http.StatusForbidden, "Invalid token format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, authHeaderPrefix)
		claims, err := m.validator.Validate(tokenString)
		if err != nil {
			m.log.Warn("Token validation failed. Path: %s, Error: %v", c.Request.URL.Path, err)
			m.reject(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(ContextUsernameKey, claims.Subject)
		c.Next()
	}
}

// reject обрывает запрос, не доходя до обработчика
func (m *AuthMiddleware) reject(c *gin.Context, status int, message string) {
	m.log.Warn("Request rejected. Path: %s, Status: %d, Reason: %s", c.Request.URL.Path, status, message)
	res.JsonMessage(c.Writer, message, status)
	c.Abort()
}
