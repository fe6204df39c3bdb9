package services

import "errors"

// Every failure returned by this package wraps exactly one of these.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("unprocessable entity")
	ErrInternal      = errors.New("internal error")
)
