package types

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrEmailRequired   = Validation("email is required")
	ErrEmailInvalid    = Validation("email format is invalid")
	ErrPhoneRequired   = Validation("phone number is required")
	ErrPhoneInvalid    = Validation("phone number format is invalid")
	ErrWebsiteRequired = Validation("website url is required")
	ErrWebsiteInvalid  = Validation("website url must start with http:// or https://")
	ErrAddressInvalid  = Validation("address requires line, city and country")
	ErrTagRequired     = Validation("tag is required")
	ErrTagInvalid      = Validation("tag may contain lowercase letters, digits and dashes (max 30)")
)

// EmailAddress is a value object representing a validated email address.
type EmailAddress struct {
	value string
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NewEmailAddress creates a validated EmailAddress. The address is lowercased.
func NewEmailAddress(value string) (EmailAddress, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return EmailAddress{}, ErrEmailRequired
	}
	if !emailRegex.MatchString(value) {
		return EmailAddress{}, ErrEmailInvalid
	}
	return EmailAddress{value: value}, nil
}

func (e EmailAddress) String() string { return e.value }
func (e EmailAddress) IsZero() bool   { return e.value == "" }

// PhoneNumber is a loosely formatted phone number with 7 to 15 digits.
type PhoneNumber struct {
	value string
}

func NewPhoneNumber(value string) (PhoneNumber, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return PhoneNumber{}, ErrPhoneRequired
	}
	digits := 0
	for i, r := range value {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return PhoneNumber{}, ErrPhoneInvalid
		}
	}
	if digits < 7 || digits > 15 {
		return PhoneNumber{}, ErrPhoneInvalid
	}
	return PhoneNumber{value: value}, nil
}

func (p PhoneNumber) String() string { return p.value }

// WebsiteURL is an absolute http(s) URL.
type WebsiteURL struct {
	value string
}

func NewWebsiteURL(value string) (WebsiteURL, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return WebsiteURL{}, ErrWebsiteRequired
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return WebsiteURL{}, ErrWebsiteInvalid
	}
	u, err := url.Parse(value)
	if err != nil || u.Host == "" {
		return WebsiteURL{}, ErrWebsiteInvalid
	}
	return WebsiteURL{value: value}, nil
}

func (w WebsiteURL) String() string { return w.value }

// PhysicalAddress is a postal address. PostalCode is optional.
type PhysicalAddress struct {
	line       string
	city       string
	postalCode string
	country    string
}

func NewPhysicalAddress(line, city, postalCode, country string) (PhysicalAddress, error) {
	line = strings.TrimSpace(line)
	city = strings.TrimSpace(city)
	postalCode = strings.TrimSpace(postalCode)
	country = strings.TrimSpace(country)
	if line == "" || city == "" || country == "" {
		return PhysicalAddress{}, ErrAddressInvalid
	}
	return PhysicalAddress{line: line, city: city, postalCode: postalCode, country: country}, nil
}

func (a PhysicalAddress) Line() string       { return a.line }
func (a PhysicalAddress) City() string       { return a.city }
func (a PhysicalAddress) PostalCode() string { return a.postalCode }
func (a PhysicalAddress) Country() string    { return a.country }

func (a PhysicalAddress) String() string {
	parts := []string{a.line, a.city}
	if a.postalCode != "" {
		parts = append(parts, a.postalCode)
	}
	return strings.Join(append(parts, a.country), ", ")
}

// Tag is a short lowercase label.
type Tag struct {
	value string
}

var tagRule = TextRule{
	MaxLen: 30,
	Allowed: func(r rune) bool {
		return (r >= 'a' && r <= 'z') || unicode.IsDigit(r) || r == '-'
	},
	ErrEmpty:   ErrTagRequired,
	ErrTooLong: ErrTagInvalid,
	ErrInvalid: ErrTagInvalid,
}

func NewTag(value string) (Tag, error) {
	v, err := tagRule.Apply(strings.ToLower(value))
	if err != nil {
		return Tag{}, err
	}
	return Tag{value: v}, nil
}

func (t Tag) String() string { return t.value }
