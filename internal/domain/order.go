package domain

import "time"

// Order представляет заказ, принадлежащий одному покупателю
type Order struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CustomerID  uint      `json:"customerId" gorm:"not null"`
	Customer    *Customer `json:"-" gorm:"foreignKey:CustomerID"`
	TotalAmount float64   `json:"totalAmount" gorm:"not null"`
	Status      string    `json:"status" gorm:"not null;default:pending"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OrderRequest частичное представление заказа.
// При создании customerId и totalAmount обязательны, status по умолчанию "pending".
// При обновлении перезаписываются только присутствующие поля.
type OrderRequest struct {
	CustomerID  *uint    `json:"customerId"`
	TotalAmount *float64 `json:"totalAmount"`
	Status      *string  `json:"status"`
}
