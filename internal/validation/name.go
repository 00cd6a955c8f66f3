package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxNameLength is counted in runes, not bytes.
const MaxNameLength = 200

// ValidateName checks a goal intent name. Surrounding whitespace is ignored,
// but a name is a single line of printable text.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New("name is required")
	}
	if !utf8.ValidString(trimmed) {
		return errors.New("name is not valid UTF-8")
	}
	if strings.IndexFunc(trimmed, unicode.IsControl) >= 0 {
		return errors.New("name must not contain control characters")
	}
	if n := utf8.RuneCountInString(trimmed); n > MaxNameLength {
		return fmt.Errorf("name is %d characters, max %d", n, MaxNameLength)
	}
	return nil
}
