package service

import "errors"

var (
	// ErrInvalidID is returned when a path identifier is not a valid ObjectID
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidInput is returned when a value is empty after sanitizing
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict is returned when a unique key is already taken
	ErrConflict = errors.New("already exists")
	// ErrInvalidToken covers missing, malformed, expired and badly signed tokens
	ErrInvalidToken = errors.New("invalid token")
	// ErrGatewayUnavailable is returned when no payment gateway is configured
	ErrGatewayUnavailable = errors.New("payment gateway not configured")
)
