// Package idgen genera los identificadores visibles del pedido: número de orden y token de seguimiento.
package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

const (
	// TokenAlphabet caracteres permitidos en un token de seguimiento.
	TokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// TokenLength longitud fija del token de seguimiento.
	TokenLength = 10

	orderNumberDigits = 6
)

var alphabetSize = big.NewInt(int64(len(TokenAlphabet)))

// TrackingToken genera un token de 10 caracteres [A-Z0-9] con crypto/rand.
// El token es el único secreto para consultar un pedido sin autenticación.
func TrackingToken() (string, error) {
	buf := make([]byte, TokenLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("idgen: token: %w", err)
		}
		buf[i] = TokenAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// ValidTrackingToken verifica el formato (longitud y alfabeto), no su existencia.
func ValidTrackingToken(s string) bool {
	if len(s) != TokenLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// OrderNumber arma el número legible: prefijo + últimos 6 dígitos del timestamp en milisegundos.
// No garantiza unicidad; solo es "muy probablemente único".
func OrderNumber(prefix string, now time.Time) string {
	ms := fmt.Sprintf("%0*d", orderNumberDigits, now.UnixMilli())
	return prefix + ms[len(ms)-orderNumberDigits:]
}

// NewID devuelve un UUID v4 como string para identidades internas.
func NewID() string {
	return uuid.New().String()
}
