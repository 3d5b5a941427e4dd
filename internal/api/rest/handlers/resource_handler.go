package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dashcommerce/admin-service/internal/domain"
	"github.com/dashcommerce/admin-service/internal/service"
	"github.com/dashcommerce/admin-service/pkg/logger"
	"github.com/dashcommerce/admin-service/pkg/req"
	"github.com/gin-gonic/gin"
)

// Resource обобщенный HTTP-обработчик CRUD-операций над одним видом
// сущностей. Инстанцируется для пользователей, покупателей, товаров
// и заказов вместо четырех переписанных друг с друга контроллеров.
type Resource[T any, R any] struct {
	service service.Crud[T, R]
	name    string // единственное число, например "Product"
	plural  string // множественное число, например "products"
	log     *logger.Logger
}

// NewResource создает обработчик ресурса
func NewResource[T any, R any](svc service.Crud[T, R], name, plural string, log *logger.Logger) *Resource[T, R] {
	return &Resource[T, R]{
		service: svc,
		name:    name,
		plural:  plural,
		log:     log,
	}
}

// List возвращает все записи. Пустая коллекция — это 404, а не пустой
// массив: исторический контракт этого API, который сохраняется как есть.
func (h *Resource[T, R]) List(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if len(items) == 0 {
		h.log.Warn("No %s found", h.plural)
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("No %s found", h.plural)})
		return
	}

	h.log.Info("Returned %d %s", len(items), h.plural)
	c.JSON(http.StatusOK, items)
}

// Get возвращает одну запись по id
func (h *Resource[T, R]) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.log.Info("Returned %s with ID: %d", strings.ToLower(h.name), id)
	c.JSON(http.StatusOK, item)
}

// Create создает запись и возвращает её целиком, включая id и таймстемпы
func (h *Resource[T, R]) Create(c *gin.Context) {
	body, err := req.HandleBody[R](c, h.log)
	if err != nil {
		return
	}

	item, err := h.service.Create(c.Request.Context(), *body)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.log.Info("Created %s", strings.ToLower(h.name))
	c.JSON(http.StatusCreated, item)
}

// Update накладывает частичное обновление: поля, отсутствующие в теле
// запроса, сохраняют прежние значения
func (h *Resource[T, R]) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	body, err := req.HandleBody[R](c, h.log)
	if err != nil {
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, *body)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.log.Info("Updated %s with ID: %d", strings.ToLower(h.name), id)
	c.JSON(http.StatusOK, item)
}

// Delete удаляет запись безвозвратно, успех — 204 без тела
func (h *Resource[T, R]) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	h.log.Info("Deleted %s with ID: %d", strings.ToLower(h.name), id)
	c.Status(http.StatusNoContent)
}

// parseID разбирает идентификатор из пути; при ошибке сам отвечает 400
func (h *Resource[T, R]) parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		h.log.Warn("Invalid %s ID: %s", strings.ToLower(h.name), raw)
		c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Invalid %s ID format", strings.ToLower(h.name))})
		return 0, false
	}
	return uint(id), true
}

// handleError переводит доменную ошибку в HTTP-ответ. Любая
// непредвиденная ошибка хранилища наружу уходит одним и тем же
// generic-сообщением, без деталей.
func (h *Resource[T, R]) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.log.Warn("%s not found: %v", h.name, err)
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("%s not found", h.name)})
	case errors.Is(err, domain.ErrDuplicate):
		h.log.Warn("%s duplicate: %v", h.name, err)
		c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("%s already exists", h.name)})
	case errors.Is(err, domain.ErrInvalidData):
		h.log.Warn("%s validation failed: %v", h.name, err)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		h.log.Error("Failed to process %s request: %v", strings.ToLower(h.name), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
