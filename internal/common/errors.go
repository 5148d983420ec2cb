package common

import "errors"

var (

	// repository specific errors
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")

	// service specific errors
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	ErrInvalidToken        = errors.New("invalid token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// transport specific errors
	ErrUnavailable = errors.New("server unavailable")
)
