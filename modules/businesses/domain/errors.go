package domain

import "github.com/rai/clean-directory-go/modules/shared/types"

// Domain errors - business rule violations.
var (
	ErrBusinessNotFound = types.NotFound("business not found")

	ErrBusinessNameRequired = types.Validation("business name is required")
	ErrBusinessNameTooLong  = types.Validation("business name must be at most 100 characters")
	ErrBusinessNameInvalid  = types.Validation("business name contains invalid characters")

	ErrBusinessDescriptionRequired = types.Validation("business description must not be blank")
	ErrBusinessDescriptionTooLong  = types.Validation("business description must be at most 500 characters")
	ErrBusinessDescriptionInvalid  = types.Validation("business description contains invalid characters")

	ErrContactInfoEmpty = types.Validation("contact info requires at least one of email, phone, address or website")

	ErrSocialPlatformRequired = types.Validation("social media platform is required")
	ErrSocialPlatformInvalid  = types.Validation("social media platform may contain lowercase letters and digits (max 30)")

	ErrHoursDayRequired   = types.Validation("opening hours day is required")
	ErrHoursRequired      = types.Validation("opening hours are required")
	ErrHoursInvalid       = types.Validation("opening hours must be at most 50 characters")
	ErrServiceRequired    = types.Validation("service name is required")
	ErrServiceTooLong     = types.Validation("service name must be at most 80 characters")
	ErrServiceInvalid     = types.Validation("service name contains invalid characters")
	ErrExtraKeyRequired   = types.Validation("feature key is required")
	ErrExtraValueRequired = types.Validation("feature value is required")
)
