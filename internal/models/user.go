package models

import "time"

// Role определяет роль пользователя в системе
type Role string

const (
	RolePatient Role = "patient" // пациент, владелец сенсорных данных
	RoleDoctor  Role = "doctor"  // врач, обычно получатель доступа
	RoleAdmin   Role = "admin"   // администратор, управляет образовательным контентом
)

// Profile содержит дополнительные данные профиля
type Profile struct {
	DateOfBirth string `json:"dateOfBirth,omitempty"` // дата рождения в формате YYYY-MM-DD
	Photo       string `json:"photo,omitempty"`       // имя файла фотографии на сервере
}

// User представляет пользователя в системе.
// На клиенте хранится копия только для чтения, перезаписывается целиком
// после каждого успешного запроса профиля.
type User struct {
	CreatedAt    time.Time `json:"createdAt"`       // время создания
	ID           string    `json:"id"`              // UUID пользователя
	Name         string    `json:"name"`            // полное имя
	Email        string    `json:"email"`           // уникальный email
	Phone        string    `json:"phone,omitempty"` // телефон (опционально)
	Role         Role      `json:"role"`            // роль пользователя
	PasswordHash string    `json:"-"`               // bcrypt хеш пароля (только на сервере)
	Profile      Profile   `json:"profile"`         // вложенный профиль
}

// IsAdmin сообщает, является ли пользователь администратором
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
