package domain

import "github.com/rai/clean-directory-go/modules/shared/types"

// Domain errors - business rule violations.
var (
	ErrTermNotFound = types.NotFound("term not found")

	ErrTermNameRequired = types.Validation("term name is required")
	ErrTermNameTooLong  = types.Validation("term name must be at most 100 characters")
	ErrTermNameInvalid  = types.Validation("term name contains invalid characters")

	ErrTermDescriptionRequired = types.Validation("term description must not be blank")
	ErrTermDescriptionTooLong  = types.Validation("term description must be at most 500 characters")
	ErrTermDescriptionInvalid  = types.Validation("term description contains invalid characters")
)
