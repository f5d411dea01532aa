package entity

import (
	"strings"

	"golang.org/x/text/cases"
)

var emailFolder = cases.Fold()

// NormalizeEmail recorta espacios y pliega mayúsculas/minúsculas. Todas las comparaciones de email
// (registro, login, pedidos por cliente) pasan por aquí.
func NormalizeEmail(email string) string {
	return emailFolder.String(strings.TrimSpace(email))
}

// NormalizePhone quita todos los espacios.
func NormalizePhone(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}

// ValidPhone 9 dígitos tras quitar espacios.
func ValidPhone(phone string) bool {
	p := NormalizePhone(phone)
	if len(p) != 9 {
		return false
	}
	for i := 0; i < len(p); i++ {
		if p[i] < '0' || p[i] > '9' {
			return false
		}
	}
	return true
}
