package utils

import "errors"

var (
	ErrCityRequired        = errors.New("city is required")
	ErrInvalidInput        = errors.New("invalid input")
	ErrProviderUnavailable = errors.New("provider unavailable")
)
