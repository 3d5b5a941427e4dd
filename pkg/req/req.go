package req

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/dashcommerce/admin-service/pkg/logger"
	"github.com/dashcommerce/admin-service/pkg/res"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Decode декодирует JSON из io.Reader в структуру типа T.
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return payload, err
	}
	return payload, nil
}

// IsValid валидирует структуру типа T по её validate-тегам.
func IsValid[T any](payload T) error {
	return validate.Struct(payload)
}

// HandleBody декодирует, валидирует и обрабатывает тело запроса.
// При ошибке сам пишет JSON-ответ и возвращает nil.
func HandleBody[T any](c *gin.Context, log *logger.Logger) (*T, error) {
	body, err := Decode[T](c.Request.Body)
	if err != nil {
		log.Warn("Failed to decode request body: %v", err)
		res.JsonMessage(c.Writer, "Invalid request body", http.StatusBadRequest)
		return nil, err
	}

	if err := IsValid(body); err != nil {
		log.Warn("Request body validation failed: %v", err)
		res.JsonMessage(c.Writer, "Invalid request data", http.StatusBadRequest)
		return nil, err
	}

	return &body, nil
}
