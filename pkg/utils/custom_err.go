package utils

import "errors"

var (
	ErrNoImage              = errors.New("no image uploaded")
	ErrInvalidMonth         = errors.New("invalid month")
	ErrInvalidAction        = errors.New("invalid credits action")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrModelCallFailed      = errors.New("model call failed")
	ErrMalformedModelOutput = errors.New("malformed model output")
	ErrLatexmkNotFound      = errors.New("latexmk not found")
	ErrRenderFailed         = errors.New("report rendering failed")
	ErrDatabaseError        = errors.New("database error")
)
