// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"unicode"
)

var specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)

// ValidatePassword checks if a password meets signup requirements:
// 6-20 characters with at least one lowercase letter, one uppercase letter,
// one digit, and one special character.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}

	if len(password) > 20 {
		return fmt.Errorf("password must not exceed 20 characters")
	}

	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	if !specialCharRegex.MatchString(password) {
		return fmt.Errorf("password must contain at least one special character (!@#$%%^&*)")
	}

	return nil
}

// ValidateUsername checks if a username meets signup requirements.
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}

	if len(username) > 10 {
		return fmt.Errorf("username must not exceed 10 characters")
	}

	return nil
}

// ValidateSignup validates a signup request and returns the list of problems
// found, empty when the input is acceptable.
func ValidateSignup(username, password string) []error {
	var errs []error
	if err := ValidateUsername(username); err != nil {
		errs = append(errs, err)
	}
	if err := ValidatePassword(password); err != nil {
		errs = append(errs, err)
	}
	return errs
}
