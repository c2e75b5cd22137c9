package arith

import "errors"

var (
	ErrNoInverse      = errors.New("no modular inverse exists")
	ErrInvalidModulus = errors.New("modulus must be positive")
)
