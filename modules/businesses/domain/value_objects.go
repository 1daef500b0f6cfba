package domain

import "github.com/rai/clean-directory-go/modules/shared/types"

var (
	nameRule = types.TextRule{
		MaxLen:     100,
		Allowed:    types.LabelRune,
		ErrEmpty:   ErrBusinessNameRequired,
		ErrTooLong: ErrBusinessNameTooLong,
		ErrInvalid: ErrBusinessNameInvalid,
	}
	descriptionRule = types.TextRule{
		MaxLen:     500,
		Allowed:    types.TextRune,
		ErrEmpty:   ErrBusinessDescriptionRequired,
		ErrTooLong: ErrBusinessDescriptionTooLong,
		ErrInvalid: ErrBusinessDescriptionInvalid,
	}
)

// BusinessName is the display name of a business, e.g. "Smith & Sons Ltd.".
type BusinessName struct {
	value string
}

func NewBusinessName(value string) (BusinessName, error) {
	v, err := nameRule.Apply(value)
	if err != nil {
		return BusinessName{}, err
	}
	return BusinessName{value: v}, nil
}

func (n BusinessName) String() string { return n.value }

// BusinessDescription is free text describing a business.
type BusinessDescription struct {
	value string
}

func NewBusinessDescription(value string) (BusinessDescription, error) {
	v, err := descriptionRule.Apply(value)
	if err != nil {
		return BusinessDescription{}, err
	}
	return BusinessDescription{value: v}, nil
}

func (d BusinessDescription) String() string { return d.value }
