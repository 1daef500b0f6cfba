package domain

import "github.com/rai/clean-directory-go/modules/shared/types"

// Domain errors - business rule violations.
// These errors are part of the domain language.
var (
	// User errors
	ErrUserNotFound = types.NotFound("user not found")
	ErrEmailExists  = types.Conflict("email already exists", nil)

	// Name errors
	ErrFirstNameRequired = types.Validation("first name is required")
	ErrFirstNameTooLong  = types.Validation("first name must be at most 50 characters")
	ErrFirstNameInvalid  = types.Validation("first name may contain letters, dashes and apostrophes only")
	ErrLastNameRequired  = types.Validation("last name is required")
	ErrLastNameTooLong   = types.Validation("last name must be at most 50 characters")
	ErrLastNameInvalid   = types.Validation("last name may contain letters, dashes and apostrophes only")

	// Demographics errors
	ErrDemographicValuesRequired = types.Validation("demographic entries need at least one value")
	ErrDemographicValueRequired  = types.Validation("demographic value must not be blank")
	ErrDemographicValueTooLong   = types.Validation("demographic value must be at most 100 characters")
	ErrDemographicValueInvalid   = types.Validation("demographic value contains invalid characters")
)
