package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// It is also returned when a resource exists but belongs to a different
// owner, so callers cannot distinguish the two cases.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")
