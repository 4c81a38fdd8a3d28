package validation

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

// UsernamePattern только латинские буквы, цифры и нижнее подчеркивание, 3-32 символа
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 32
	MinPasswordLen = 8
	MaxPasswordLen = 72 // предел bcrypt в байтах
)

var (
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
)

// ValidateUsername проверяет, что username соответствует UsernamePattern
func ValidateUsername(username string) error {
	switch {
	case username == "":
		return ErrEmptyUsername
	case len(username) < MinUsernameLen:
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	case len(username) > MaxUsernameLen:
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	case !UsernamePattern.MatchString(username):
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}
	return nil
}

// ValidatePassword проверяет пароль учетной записи.
// Длина в символах не меньше MinPasswordLen, в байтах не больше MaxPasswordLen.
func ValidatePassword(password string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case utf8.RuneCountInString(password) < MinPasswordLen:
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	case len(password) > MaxPasswordLen:
		return fmt.Errorf("password must not exceed %d bytes", MaxPasswordLen)
	}
	return nil
}
