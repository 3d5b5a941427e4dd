package domain

import "time"

// User представляет учетную запись администратора или оператора
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Role      string    `json:"role" gorm:"not null;default:user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserRequest частичное представление пользователя для обновления.
// Отсутствующие поля остаются без изменений.
type UserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// RegisterRequest тело запроса регистрации
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// LoginRequest тело запроса входа
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse ответ с выданным токеном
type TokenResponse struct {
	Token string `json:"token"`
}
