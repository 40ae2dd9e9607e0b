package apperrors

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrUnknownTheme  = errors.New("unknown theme preset")
	ErrBadBackupFile = errors.New("backup file is not valid")
)
