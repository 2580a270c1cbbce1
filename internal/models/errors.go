package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("expense not found")
	ErrFieldMissing     = errors.New("a required field is missing")
)
