package validation

import (
	"regexp"
	"strings"
)

// CSS class names: no leading digit, no whitespace or selector syntax.
var classNameRE = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)

// ValidateClassName checks that value can be used as a marker class.
func ValidateClassName(field, value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{field + " cannot be empty"}
	}
	if !classNameRE.MatchString(value) {
		return []string{field + " must be a valid CSS class name (got: " + value + ")"}
	}
	return nil
}

// ValidateStorageKey checks a persistence key.
func ValidateStorageKey(field, value string) []string {
	value = strings.TrimSpace(value)
	var errs []string

	if value == "" {
		return append(errs, field+" cannot be empty")
	}
	if strings.ContainsAny(value, "\r\n\x00") {
		errs = append(errs, field+" must not contain newlines or NUL")
	}
	if len(value) > 200 {
		errs = append(errs, field+" is too long")
	}
	return errs
}
