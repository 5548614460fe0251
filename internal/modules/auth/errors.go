package auth

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrPhoneTaken         = errors.New("phone number already registered")
	ErrInvalidCredentials = errors.New("invalid phone or password")
)
