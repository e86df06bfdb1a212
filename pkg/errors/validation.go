package errors

import (
	"regexp"
	"strings"
	"unicode"
)

const maxLabelIDLength = 128

var (
	eventNamePattern = regexp.MustCompile(`^on[a-zA-Z]+$`)
	styleKeyPattern  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
)

// ValidateLabelID validates a label identifier. IDs end up in SVG id
// attributes and line keys, so they must be short and free of whitespace
// and markup characters. An empty ID is allowed.
func ValidateLabelID(id string) error {
	if len(id) > maxLabelIDLength {
		return New(ErrCodeInvalidLabel, "label id too long (max %d characters)", maxLabelIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidLabel, "label id %q contains whitespace or control characters", id)
		}
	}
	if strings.ContainsAny(id, `<>&"'`) {
		return New(ErrCodeInvalidLabel, "label id %q contains markup characters", id)
	}
	return nil
}

// ValidatePath validates a document path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateVerticalAnchor checks a vertical anchor name from a document.
// Empty means "use the default".
func ValidateVerticalAnchor(s string) error {
	switch s {
	case "", "start", "middle", "end":
		return nil
	}
	return New(ErrCodeInvalidLabel, "invalid vertical anchor %q (want start, middle or end)", s)
}

// ValidateTextAnchor checks a text anchor name from a document.
func ValidateTextAnchor(s string) error {
	switch s {
	case "", "start", "middle", "end", "inherit":
		return nil
	}
	return New(ErrCodeInvalidLabel, "invalid text anchor %q (want start, middle, end or inherit)", s)
}

// ValidateDirection checks a writing direction from a document.
func ValidateDirection(s string) error {
	switch s {
	case "", "ltr", "rtl", "inherit":
		return nil
	}
	return New(ErrCodeInvalidLabel, "invalid direction %q (want ltr, rtl or inherit)", s)
}

// ValidateEventName checks an event handler attribute name such as
// onclick. Names end up verbatim as SVG attribute names.
func ValidateEventName(name string) error {
	if !eventNamePattern.MatchString(name) {
		return New(ErrCodeInvalidLabel, "invalid event name %q (want on followed by letters)", name)
	}
	return nil
}

// ValidateStyleKey checks a style property name such as font_size or fontSize.
func ValidateStyleKey(key string) error {
	if !styleKeyPattern.MatchString(key) {
		return New(ErrCodeInvalidLabel, "invalid style property %q", key)
	}
	return nil
}

// ValidateStyleValue checks a string style value. Values are written into
// an inline CSS declaration list, so they cannot contain declaration or
// block delimiters.
func ValidateStyleValue(key, value string) error {
	if strings.ContainsAny(value, ";{}") {
		return New(ErrCodeInvalidLabel, "style property %q value %q contains ';', '{' or '}'", key, value)
	}
	return nil
}
