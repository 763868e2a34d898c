package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials access restricted")
	ErrNoSession          = errors.New("no active session")
	ErrPasswordMismatch   = errors.New("old password incorrect")
)
