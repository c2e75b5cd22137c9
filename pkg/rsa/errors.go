package rsa

import "errors"

var (
	ErrParse           = errors.New("not a non-negative decimal integer")
	ErrPrimeTooSmall   = errors.New("prime factor must be at least 2")
	ErrTotientTooSmall = errors.New("totient must be at least 2")
	ErrInvalidKey      = errors.New("inconsistent key")
	ErrNilKey          = errors.New("key is nil")
)
