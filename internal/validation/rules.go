// Package validation holds the request rules shared by the principal DTOs.
package validation

import (
	"regexp"
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/ourshop/shop/internal/errors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// WrapValidationError wraps validation errors as ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email accepts a basic address shape.
var Email = validation.NewStringRuleWithError(
	emailRegex.MatchString,
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NotBlank rejects strings that are empty after trimming.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// Username rejects whitespace and control characters inside the name. Surrounding
// whitespace is tolerated because the use cases trim it.
var Username = validation.NewStringRuleWithError(
	func(s string) bool {
		return !strings.ContainsFunc(strings.TrimSpace(s), func(r rune) bool {
			return unicode.IsSpace(r) || unicode.IsControl(r)
		})
	},
	validation.NewError("validation_username", "must not contain whitespace or control characters"),
)
