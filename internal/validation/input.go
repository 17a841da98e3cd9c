package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Константы валидации
const (
	MaxNameLength     = 200
	MaxEmailLength    = 254
	MaxAddressLength  = 1000
	MaxCommentLength  = 2000
	MinMessageLength  = 1
	MaxMessageLength  = 5000
	MaxItemNameLength = 300
	MaxQuantity       = 100
	MaxPrice          = 1000000.0
	MaxCodesNeeded    = 20
)

// ValidateLength проверяет длину строки в рунах.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateRequired проверяет, что поле непустое после обрезки пробелов.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s обязателен", fieldName)
	}
	return nil
}

// ValidateEmail проверяет формат email. Проверка нарочно мягкая:
// символ @ и точка в доменной части.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email обязателен")
	}

	email = strings.TrimSpace(email)
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return fmt.Errorf("email должен быть не более %d символов", MaxEmailLength)
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("некорректный формат email")
	}

	localPart, domainPart := parts[0], parts[1]
	if len(localPart) == 0 || len(localPart) > 64 {
		return fmt.Errorf("локальная часть email должна быть от 1 до 64 символов")
	}
	if len(domainPart) == 0 || !strings.Contains(domainPart, ".") {
		return fmt.Errorf("доменная часть email должна содержать точку")
	}
	if strings.HasPrefix(domainPart, ".") || strings.HasSuffix(domainPart, ".") {
		return fmt.Errorf("некорректный формат email")
	}

	return nil
}

// ValidateQuantity проверяет количество в позиции заказа.
func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("количество должно быть не менее 1")
	}
	if quantity > MaxQuantity {
		return fmt.Errorf("количество должно быть не более %d", MaxQuantity)
	}
	return nil
}

// ValidatePrice проверяет цену позиции заказа.
func ValidatePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("цена не может быть отрицательной")
	}
	if price > MaxPrice {
		return fmt.Errorf("цена должна быть не более %.0f", MaxPrice)
	}
	return nil
}

// ValidateCodesNeeded проверяет число предпродажных кодов в заявке.
func ValidateCodesNeeded(n int) error {
	if n < 1 {
		return fmt.Errorf("codes_needed должен быть не менее 1")
	}
	if n > MaxCodesNeeded {
		return fmt.Errorf("codes_needed должен быть не более %d", MaxCodesNeeded)
	}
	return nil
}
