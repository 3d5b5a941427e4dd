package service

import (
	"context"

	"github.com/dashcommerce/admin-service/internal/domain"
	"github.com/dashcommerce/admin-service/internal/repository"
	"github.com/dashcommerce/admin-service/pkg/logger"
)

type userMapper struct{}

// NewUserService создает CRUD-сервис пользователей.
// Создание пользователей идет только через регистрацию (см. AuthService);
// CRUD-маршруты пользователей не включают POST.
func NewUserService(repo repository.Crud[domain.User], log *logger.Logger) Crud[domain.User, domain.UserRequest] {
	return NewCrudService(repo, userMapper{}, log)
}

func (userMapper) New(_ context.Context, _ domain.UserRequest) (domain.User, error) {
	var v domain.ValidationErrors
	v.Add("user", "users are created via the register endpoint")
	return domain.User{}, v
}

func (userMapper) Apply(_ context.Context, user *domain.User, req domain.UserRequest) error {
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	return nil
}
