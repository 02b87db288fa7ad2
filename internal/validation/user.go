package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/iudanet/khutwa/internal/models"
)

// EmailPattern определяет допустимый формат email: что-то@что-то.что-то без пробелов
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PhonePattern допускает ведущий +, цифры, пробелы, дефисы и скобки
var PhonePattern = regexp.MustCompile(`^\+?[0-9 ()\-]{6,20}$`)

const (
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 6
	// MaxNameLen максимальная длина имени
	MaxNameLen = 100
	// DateLayout формат даты рождения
	DateLayout = "2006-01-02"
)

// ValidateEmail проверяет формат email
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email address is required")
	}
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("please enter a valid email address")
	}
	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}

// ValidateName проверяет имя пользователя
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("full name is required")
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}
	return nil
}

// ValidatePhone проверяет телефон; пустой телефон допустим
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !PhonePattern.MatchString(phone) {
		return fmt.Errorf("phone number can only contain digits, spaces, dashes, parentheses and a leading +")
	}
	return nil
}

// ValidateDateOfBirth проверяет дату рождения в формате YYYY-MM-DD; пустая дата допустима
func ValidateDateOfBirth(date string) error {
	if date == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return fmt.Errorf("date of birth must be in YYYY-MM-DD format")
	}
	if t.After(time.Now()) {
		return fmt.Errorf("date of birth cannot be in the future")
	}
	return nil
}

// ValidateRole проверяет роль; пустая роль допустима (будет patient)
func ValidateRole(role models.Role) error {
	switch role {
	case "", models.RolePatient, models.RoleDoctor, models.RoleAdmin:
		return nil
	default:
		return fmt.Errorf("role must be one of: patient, doctor, admin")
	}
}
