package service

import (
	"context"

	"github.com/dashcommerce/admin-service/internal/domain"
	"github.com/dashcommerce/admin-service/internal/repository"
	"github.com/dashcommerce/admin-service/pkg/logger"
)

type productMapper struct{}

// NewProductService создает CRUD-сервис товаров
func NewProductService(repo repository.Crud[domain.Product], log *logger.Logger) Crud[domain.Product, domain.ProductRequest] {
	return NewCrudService(repo, productMapper{}, log)
}

func (productMapper) New(_ context.Context, req domain.ProductRequest) (domain.Product, error) {
	var v domain.ValidationErrors
	if req.Name == nil || *req.Name == "" {
		v.Add("name", "name is required")
	}
	if req.Price == nil {
		v.Add("price", "price is required")
	}
	if v.HasErrors() {
		return domain.Product{}, v
	}

	product := domain.Product{
		Name:        *req.Name,
		Description: req.Description,
		Price:       *req.Price,
	}
	// stock по умолчанию 0
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	return product, nil
}

func (productMapper) Apply(_ context.Context, product *domain.Product, req domain.ProductRequest) error {
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	return nil
}
