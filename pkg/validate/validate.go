// Package validate checks the login and sign-up form before it is submitted.
package validate

import (
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password the form accepts.
const MinPasswordLength = 6

// Error messages keyed by field in Result.Errors.
const (
	MsgUsernameRequired = "Username is required"
	MsgPasswordRequired = "Password is required"
	MsgPasswordTooShort = "Password must be at least 6 characters"
)

// Form is the submitted login form. Empty strings mean the field was absent.
type Form struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Result carries per-field messages. Errors is never nil.
type Result struct {
	Valid  bool              `json:"isValid"`
	Errors map[string]string `json:"errors"`
}

// Check validates f field by field.
func Check(f Form) Result {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Username) == "" {
		errs["username"] = MsgUsernameRequired
	}

	switch {
	case strings.TrimSpace(f.Password) == "":
		errs["password"] = MsgPasswordRequired
	case utf8.RuneCountInString(f.Password) < MinPasswordLength:
		errs["password"] = MsgPasswordTooShort
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
