package service

import (
	"context"

	"github.com/dashcommerce/admin-service/internal/domain"
	"github.com/dashcommerce/admin-service/internal/repository"
	"github.com/dashcommerce/admin-service/pkg/logger"
)

type customerMapper struct{}

// NewCustomerService создает CRUD-сервис покупателей
func NewCustomerService(repo repository.Crud[domain.Customer], log *logger.Logger) Crud[domain.Customer, domain.CustomerRequest] {
	return NewCrudService(repo, customerMapper{}, log)
}

func (customerMapper) New(_ context.Context, req domain.CustomerRequest) (domain.Customer, error) {
	var v domain.ValidationErrors
	if req.Name == nil || *req.Name == "" {
		v.Add("name", "name is required")
	}
	if req.Email == nil || *req.Email == "" {
		v.Add("email", "email is required")
	}
	if v.HasErrors() {
		return domain.Customer{}, v
	}

	return domain.Customer{
		Name:    *req.Name,
		Email:   *req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}, nil
}

func (customerMapper) Apply(_ context.Context, customer *domain.Customer, req domain.CustomerRequest) error {
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}
	if req.Address != nil {
		customer.Address = req.Address
	}
	return nil
}
