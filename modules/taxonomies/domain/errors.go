package domain

import "github.com/rai/clean-directory-go/modules/shared/types"

// Domain errors - business rule violations.
var (
	ErrTaxonomyNotFound = types.NotFound("taxonomy not found")

	ErrTaxonomyNameRequired = types.Validation("taxonomy name is required")
	ErrTaxonomyNameTooLong  = types.Validation("taxonomy name must be at most 100 characters")
	ErrTaxonomyNameInvalid  = types.Validation("taxonomy name contains invalid characters")

	ErrTaxonomyDescriptionRequired = types.Validation("taxonomy description must not be blank")
	ErrTaxonomyDescriptionTooLong  = types.Validation("taxonomy description must be at most 500 characters")
	ErrTaxonomyDescriptionInvalid  = types.Validation("taxonomy description contains invalid characters")
)
