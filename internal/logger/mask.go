package logger

import (
	"strings"
	"unicode/utf8"
)

const maskedPrefixRunes = 2

// MaskEmail прячет локальную часть кроме первых символов, домен оставляет:
// "alice@acme.com" → "al***@acme.com".
func MaskEmail(email string) string {
	at := strings.IndexRune(email, '@')
	if at <= 0 {
		return "***"
	}
	local, domain := email[:at], email[at:]

	// режем по рунам, иначе кириллица ломается посередине
	cut := 0
	for i := 0; i < maskedPrefixRunes && cut < len(local); i++ {
		_, size := utf8.DecodeRuneInString(local[cut:])
		cut += size
	}
	return local[:cut] + "***" + domain
}
