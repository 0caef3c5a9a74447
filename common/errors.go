package common

import "errors"

var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidState     = errors.New("invalid state")
)
