// Package validate provides small, pure input predicates shared across features.
package validate

import (
	"github.com/go-playground/validator/v10"
)

// emailRule is the validator tag applied to email addresses.
// It is the same rule gin applies through `binding:"email"`.
const emailRule = "required,email"

var v = validator.New()

// Email reports whether s is a well-formed email address.
// It is deterministic and never panics.
func Email(s string) bool {
	return v.Var(s, emailRule) == nil
}
