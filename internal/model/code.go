// Package model defines the domain types shared across the application.
package model

// CodeLength is the required length of secret codes and guesses
const CodeLength = 4

// Code is a passcode string of exactly CodeLength ASCII digits.
// Leading zeros are significant, so codes are never treated as numbers.
type Code string

// ValidateCode checks that a code is exactly CodeLength ASCII digits
func ValidateCode(code Code) error {
	if len(code) != CodeLength {
		return ErrInvalidCodeFormat
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return ErrInvalidCodeFormat
		}
	}
	return nil
}
