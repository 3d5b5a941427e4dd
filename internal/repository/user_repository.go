package repository

import (
	"context"

	"github.com/dashcommerce/admin-service/internal/domain"
	"github.com/dashcommerce/admin-service/pkg/logger"
	"gorm.io/gorm"
)

// UserStore репозиторий пользователей: общий CRUD плюс поиск по имени
type UserStore struct {
	*Store[domain.User]
	db *gorm.DB
}

// NewUserStore создает репозиторий пользователей
func NewUserStore(db *gorm.DB, log *logger.Logger) *UserStore {
	return &UserStore{
		Store: NewStore[domain.User](db, log),
		db:    db,
	}
}

// GetByUsername возвращает пользователя по имени, используется при входе
func (s *UserStore) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return domain.User{}, translateError(err)
	}
	return user, nil
}
