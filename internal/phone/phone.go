package phone

import (
	"strings"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
)

// Normalize strips formatting from a US phone number and returns it in E.164.
// 10 digits get a "+1" prefix; 11 digits are accepted only with a leading "1".
// Anything else is rejected before any record is created.
func Normalize(raw string) (string, error) {
	digits := stripNonDigits(raw)

	switch {
	case len(digits) == 10:
		return "+1" + digits, nil
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return "+" + digits, nil
	default:
		return "", domain.ErrInvalidPhone
	}
}

// SanitizeCode reduces free-text input to at most six digits, mirroring the
// sign-up form's input mask.
func SanitizeCode(raw string) string {
	digits := stripNonDigits(raw)
	if len(digits) > 6 {
		return digits[:6]
	}
	return digits
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
