package domain

import "github.com/rai/clean-directory-go/modules/shared/types"

var (
	firstNameRule = types.TextRule{
		MaxLen:     50,
		Allowed:    types.NameRune,
		ErrEmpty:   ErrFirstNameRequired,
		ErrTooLong: ErrFirstNameTooLong,
		ErrInvalid: ErrFirstNameInvalid,
	}
	lastNameRule = types.TextRule{
		MaxLen:     50,
		Allowed:    types.NameRune,
		ErrEmpty:   ErrLastNameRequired,
		ErrTooLong: ErrLastNameTooLong,
		ErrInvalid: ErrLastNameInvalid,
	}
)

// FirstName is a value object representing a user's given name.
// Value objects are immutable and compared by value.
type FirstName struct {
	value string
}

func NewFirstName(value string) (FirstName, error) {
	v, err := firstNameRule.Apply(value)
	if err != nil {
		return FirstName{}, err
	}
	return FirstName{value: v}, nil
}

func (n FirstName) String() string { return n.value }

// LastName is a value object representing a user's family name.
type LastName struct {
	value string
}

func NewLastName(value string) (LastName, error) {
	v, err := lastNameRule.Apply(value)
	if err != nil {
		return LastName{}, err
	}
	return LastName{value: v}, nil
}

func (n LastName) String() string { return n.value }
