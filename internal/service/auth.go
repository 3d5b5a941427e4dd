package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dashcommerce/admin-service/internal/domain"
	"github.com/dashcommerce/admin-service/internal/repository"
	"github.com/dashcommerce/admin-service/internal/token"
	"github.com/dashcommerce/admin-service/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials неверное имя пользователя или пароль.
// Наружу всегда уходит одно и то же сообщение, без уточнения причины.
var ErrInvalidCredentials = errors.New("invalid username or password")

// defaultUserRole роль нового пользователя
const defaultUserRole = "user"

// AuthService регистрация и вход пользователей
type AuthService struct {
	users  *repository.UserStore
	tokens *token.Manager
	log    *logger.Logger
}

// NewAuthService создает сервис аутентификации
func NewAuthService(users *repository.UserStore, tokens *token.Manager, log *logger.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		log:    log,
	}
}

// Register создает нового пользователя с хешированным паролем
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		Username: req.Username,
		Password: string(hashed),
		Email:    req.Email,
		Role:     defaultUserRole,
	}

	if err := s.users.Create(ctx, &user); err != nil {
		return err
	}

	s.log.Info("Registered user: %s", user.Username)
	return nil
}

// Login проверяет учетные данные и выдает токен
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (string, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", err
	}

	s.log.Info("Issued token for user: %s", user.Username)
	return signed, nil
}
