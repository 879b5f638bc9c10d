package adapter

import "errors"

// ErrMailDispatch wraps every failure to hand a message over to the mail
// gateway.
var ErrMailDispatch = errors.New("mail dispatch failed")

// Status errors of the mail gateway, mapped by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
