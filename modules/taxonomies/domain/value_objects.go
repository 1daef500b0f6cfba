package domain

import "github.com/rai/clean-directory-go/modules/shared/types"

var (
	nameRule = types.TextRule{
		MaxLen:     100,
		Allowed:    types.LabelRune,
		ErrEmpty:   ErrTaxonomyNameRequired,
		ErrTooLong: ErrTaxonomyNameTooLong,
		ErrInvalid: ErrTaxonomyNameInvalid,
	}
	descriptionRule = types.TextRule{
		MaxLen:     500,
		Allowed:    types.TextRune,
		ErrEmpty:   ErrTaxonomyDescriptionRequired,
		ErrTooLong: ErrTaxonomyDescriptionTooLong,
		ErrInvalid: ErrTaxonomyDescriptionInvalid,
	}
)

// TaxonomyName is the display name of a taxonomy, e.g. "Country".
type TaxonomyName struct {
	value string
}

func NewTaxonomyName(value string) (TaxonomyName, error) {
	v, err := nameRule.Apply(value)
	if err != nil {
		return TaxonomyName{}, err
	}
	return TaxonomyName{value: v}, nil
}

func (n TaxonomyName) String() string { return n.value }

// TaxonomyDescription is free text describing a taxonomy.
type TaxonomyDescription struct {
	value string
}

func NewTaxonomyDescription(value string) (TaxonomyDescription, error) {
	v, err := descriptionRule.Apply(value)
	if err != nil {
		return TaxonomyDescription{}, err
	}
	return TaxonomyDescription{value: v}, nil
}

func (d TaxonomyDescription) String() string { return d.value }
