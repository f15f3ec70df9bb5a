package model

import "errors"

// Service error taxonomy. Handlers match these with errors.Is to pick an HTTP status.
var (
	ErrStoreUnavailable     = errors.New("inventory store is unavailable")
	ErrSchemaMissing        = errors.New("departments sheet is missing")
	ErrInvalidDepartment    = errors.New("department name is not usable for code generation")
	ErrMissingRequiredField = errors.New("required field is missing")
	ErrDuplicateCode        = errors.New("item code already exists")
	ErrNotFound             = errors.New("item not found")
)
