package adapter

import "errors"

var (
	ErrValidation          = errors.New("request rejected by server validation")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found on server")
	ErrConflict            = errors.New("gamer tag conflict")
	ErrInternalServerError = errors.New("internal server error")
)
