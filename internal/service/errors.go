package service

import "errors"

var (
	ErrValidation            = errors.New("validation")             // 400
	ErrNotFound              = errors.New("not found")              // 404 (400 inside remove validation)
	ErrInsufficientStock     = errors.New("insufficient stock")     // 400
	ErrConflictingParameters = errors.New("conflicting parameters") // 400
	ErrMissingSelector       = errors.New("missing selector")       // 400
	ErrPermissionDenied      = errors.New("permission denied")      // 403
)
