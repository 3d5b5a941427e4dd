package service

import (
	"context"
	"errors"

	"github.com/dashcommerce/admin-service/internal/domain"
	"github.com/dashcommerce/admin-service/internal/repository"
	"github.com/dashcommerce/admin-service/pkg/logger"
)

// defaultOrderStatus статус нового заказа, если он не указан в запросе
const defaultOrderStatus = "pending"

type orderMapper struct {
	customers repository.Crud[domain.Customer]
}

// NewOrderService создает CRUD-сервис заказов. Репозиторий покупателей
// нужен для проверки, что заказ ссылается на существующего покупателя.
func NewOrderService(repo repository.Crud[domain.Order], customers repository.Crud[domain.Customer], log *logger.Logger) Crud[domain.Order, domain.OrderRequest] {
	return NewCrudService(repo, orderMapper{customers: customers}, log)
}

func (m orderMapper) New(ctx context.Context, req domain.OrderRequest) (domain.Order, error) {
	var v domain.ValidationErrors
	if req.CustomerID == nil {
		v.Add("customerId", "customerId is required")
	}
	if req.TotalAmount == nil {
		v.Add("totalAmount", "totalAmount is required")
	}
	if v.HasErrors() {
		return domain.Order{}, v
	}

	if err := m.checkCustomer(ctx, *req.CustomerID); err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		CustomerID:  *req.CustomerID,
		TotalAmount: *req.TotalAmount,
		Status:      defaultOrderStatus,
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	return order, nil
}

func (m orderMapper) Apply(ctx context.Context, order *domain.Order, req domain.OrderRequest) error {
	if req.CustomerID != nil {
		if err := m.checkCustomer(ctx, *req.CustomerID); err != nil {
			return err
		}
		order.CustomerID = *req.CustomerID
	}
	if req.TotalAmount != nil {
		order.TotalAmount = *req.TotalAmount
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	return nil
}

// checkCustomer убеждается, что покупатель существует, прежде чем
// привязывать к нему заказ. Схема несет FK-ограничение как подстраховку.
func (m orderMapper) checkCustomer(ctx context.Context, customerID uint) error {
	_, err := m.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			var v domain.ValidationErrors
			v.Add("customerId", "referenced customer does not exist")
			return v
		}
		return err
	}
	return nil
}
