package dal

import "errors"

var (
	ErrSessionNotFound      = errors.New("checkout session not found")
	ErrSessionAlreadyExists = errors.New("checkout session already exists")
)
