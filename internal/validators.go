package internal

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var placeholderKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// PlaceholderKeysValidator checks that every key of a custom substitution map
// can actually be referenced from a {{key[i]}} placeholder.
func PlaceholderKeysValidator(fl validator.FieldLevel) bool {

	custom, ok := fl.Field().Interface().(map[string][]string)

	if !ok {
		return false
	}

	for key := range custom {
		if !placeholderKeyPattern.MatchString(key) {
			return false
		}
	}

	return true
}
