package api

import "github.com/iudanet/khutwa/internal/models"

// SignUpRequest представляет запрос на регистрацию нового пользователя
type SignUpRequest struct {
	Name        string      `json:"name"`                  // полное имя
	Email       string      `json:"email"`                 // email, используется для входа
	Password    string      `json:"password"`              // пароль в открытом виде (только по TLS)
	Phone       string      `json:"phone,omitempty"`       // телефон (опционально)
	Role        models.Role `json:"role,omitempty"`        // patient по умолчанию
	DateOfBirth string      `json:"dateOfBirth,omitempty"` // YYYY-MM-DD
}

// SignInRequest представляет запрос на аутентификацию
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse представляет ответ на успешные sign-up и sign-in
type AuthResponse struct {
	User    *models.User `json:"user,omitempty"` // может отсутствовать, тогда профиль запрашивается отдельно
	Token   string       `json:"token"`          // bearer token
	Message string       `json:"message,omitempty"`
}

// ProfileResponse представляет ответ GET/PUT /users/profile
type ProfileResponse struct {
	User *models.User `json:"user"`
}

// MessageResponse представляет ответ без данных
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Errors  map[string]string `json:"errors,omitempty"`  // ошибки по полям формы
	Error   string            `json:"error,omitempty"`   // описание ошибки
	Message string            `json:"message,omitempty"` // сообщение для пользователя
}
