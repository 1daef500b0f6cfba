package domain

import "github.com/rai/clean-directory-go/modules/shared/types"

var (
	nameRule = types.TextRule{
		MaxLen:     100,
		Allowed:    types.LabelRune,
		ErrEmpty:   ErrTermNameRequired,
		ErrTooLong: ErrTermNameTooLong,
		ErrInvalid: ErrTermNameInvalid,
	}
	descriptionRule = types.TextRule{
		MaxLen:     500,
		Allowed:    types.TextRune,
		ErrEmpty:   ErrTermDescriptionRequired,
		ErrTooLong: ErrTermDescriptionTooLong,
		ErrInvalid: ErrTermDescriptionInvalid,
	}
)

// TermName is the display name of a term, e.g. "Germany".
type TermName struct {
	value string
}

func NewTermName(value string) (TermName, error) {
	v, err := nameRule.Apply(value)
	if err != nil {
		return TermName{}, err
	}
	return TermName{value: v}, nil
}

func (n TermName) String() string { return n.value }

// TermDescription is free text describing a term.
type TermDescription struct {
	value string
}

func NewTermDescription(value string) (TermDescription, error) {
	v, err := descriptionRule.Apply(value)
	if err != nil {
		return TermDescription{}, err
	}
	return TermDescription{value: v}, nil
}

func (d TermDescription) String() string { return d.value }
