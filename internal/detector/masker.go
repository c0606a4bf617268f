package detector

import (
	"strings"
)

const genericMask = "[REDACTED]"

// Mask converts a raw matched value into a display-safe string for the given
// category, preserving only a minimal distinguishing fragment.
//
// Categories without a dedicated rule fall back to a first-4/last-4 reveal
// for values longer than 10 characters and the generic mask otherwise. The
// fallback may partially reveal short values; that is accepted behavior.
func Mask(category, value string) string {
	switch category {
	case CategoryIdentityNumber:
		return "***-**-" + lastDigits(value, 4)
	case CategoryPaymentCard:
		return "****-****-****-" + lastDigits(value, 4)
	case CategoryEmailAddress:
		return maskEmail(value)
	case CategoryPhoneNumber:
		return "***-***-" + lastDigits(value, 4)
	default:
		runes := []rune(value)
		if len(runes) > 10 {
			return string(runes[:4]) + "..." + string(runes[len(runes)-4:])
		}
		return genericMask
	}
}

// lastDigits returns the last n digits of the value, ignoring separators.
func lastDigits(value string, n int) string {
	digits := make([]byte, 0, len(value))
	for i := 0; i < len(value); i++ {
		if value[i] >= '0' && value[i] <= '9' {
			digits = append(digits, value[i])
		}
	}
	if len(digits) < n {
		return string(digits)
	}
	return string(digits[len(digits)-n:])
}

// maskEmail reveals only the first character of the local part plus the full
// domain, e.g. "j***@example.com".
func maskEmail(value string) string {
	at := strings.Index(value, "@")
	if at <= 0 {
		return genericMask
	}
	return value[:1] + "***" + value[at:]
}
