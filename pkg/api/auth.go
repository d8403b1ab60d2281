package api

import (
	"encoding/json"

	"github.com/iudanet/carscope/internal/models"
)

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	AccessToken string       `json:"access_token"`   // JWT access token, sub = id пользователя
	User        *models.User `json:"user,omitempty"` // отдается не всеми версиями backend
	TokenType   string       `json:"token_type"`     // всегда "bearer"
}

// ErrorResponse представляет ответ с ошибкой.
// Detail бывает строкой или списком ошибок валидации, поэтому хранится как есть.
type ErrorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

// Message возвращает текст ошибки, если detail - строка
func (e *ErrorResponse) Message() string {
	var msg string
	if err := json.Unmarshal(e.Detail, &msg); err == nil {
		return msg
	}
	return string(e.Detail)
}
