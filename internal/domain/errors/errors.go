package errors

import "errors"

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrPhoneExists        = errors.New("phone already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrInvalidSearchField = errors.New("invalid search field")
	ErrRemoteImport       = errors.New("remote import failed")
)
