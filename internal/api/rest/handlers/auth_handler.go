package handlers

import (
	"errors"
	"net/http"

	"github.com/dashcommerce/admin-service/internal/domain"
	"github.com/dashcommerce/admin-service/internal/service"
	"github.com/dashcommerce/admin-service/pkg/logger"
	"github.com/dashcommerce/admin-service/pkg/req"
	"github.com/gin-gonic/gin"
)

// AuthHandler обработчик регистрации и входа
type AuthHandler struct {
	auth *service.AuthService
	log  *logger.Logger
}

// NewAuthHandler создает обработчик аутентификации
func NewAuthHandler(auth *service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  log,
	}
}

// Register регистрирует нового пользователя
func (h *AuthHandler) Register(c *gin.Context) {
	body, err := req.HandleBody[domain.RegisterRequest](c, h.log)
	if err != nil {
		return
	}

	if err := h.auth.Register(c.Request.Context(), *body); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			h.log.Warn("Registration rejected, user already exists: %s", body.Username)
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}

		h.log.Error("Failed to register user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login проверяет учетные данные и возвращает токен
func (h *AuthHandler) Login(c *gin.Context) {
	body, err := req.HandleBody[domain.LoginRequest](c, h.log)
	if err != nil {
		return
	}

	signed, err := h.auth.Login(c.Request.Context(), *body)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.log.Warn("Login rejected for user: %s", body.Username)
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid username or password"})
			return
		}

		h.log.Error("Failed to log in user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, domain.TokenResponse{Token: signed})
}
