package res

import (
	"encoding/json"
	"net/http"
)

// MessageResponse представляет формат JSON-ответа с человекочитаемым сообщением.
// Используется и для ошибок, и для подтверждений — наружу никогда не уходит
// ничего, кроме поля message.
type MessageResponse struct {
	Message string `json:"message"`
}

// JsonResponse отправляет JSON-ответ с заданным статусом.
func JsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// JsonMessage отправляет JSON-ответ вида {"message": ...} с заданным статусом.
func JsonMessage(w http.ResponseWriter, message string, status int) {
	JsonResponse(w, MessageResponse{Message: message}, status)
}
