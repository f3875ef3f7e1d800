package validation

import (
	"regexp"
	"strings"
)

// Patrones de formato para los campos de registro.
var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
)

// Símbolos aceptados en el password.
const passwordSymbols = "@$!%*?&"

// Error describe un fallo de formato en un campo concreto. Es corregible por el usuario.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ValidateSignup aplica las reglas de formato en orden fijo (email, username,
// password) y corta en el primer fallo. No hace I/O.
func ValidateSignup(email, username, password string) error {
	if !emailPattern.MatchString(email) {
		return &Error{Field: "email", Message: "formato de email inválido"}
	}
	if !usernamePattern.MatchString(username) {
		return &Error{Field: "username", Message: "el username debe tener entre 3 y 20 caracteres y solo puede contener letras, números y guion bajo"}
	}
	if err := validatePassword(password); err != nil {
		return err
	}
	return nil
}

// validatePassword exige mínimo 8 caracteres, al menos una mayúscula, un dígito
// y un símbolo del conjunto permitido. Se implementa con un barrido de clases
// de caracteres porque RE2 no soporta lookahead.
func validatePassword(password string) error {
	msg := "el password debe tener al menos 8 caracteres, una mayúscula, un número y un símbolo (@$!%*?&)"
	if len(password) < 8 {
		return &Error{Field: "password", Message: msg}
	}
	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			// permitido, no cuenta para ninguna clase obligatoria
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		default:
			return &Error{Field: "password", Message: msg}
		}
	}
	if !hasUpper || !hasDigit || !hasSymbol {
		return &Error{Field: "password", Message: msg}
	}
	return nil
}
