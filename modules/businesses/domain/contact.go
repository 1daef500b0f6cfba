package domain

import "github.com/rai/clean-directory-go/modules/shared/types"

// ContactInfo is how a business can be reached. Every channel is optional but
// at least one must be present.
type ContactInfo struct {
	email   *types.EmailAddress
	phone   *types.PhoneNumber
	address *types.PhysicalAddress
	website *types.WebsiteURL
}

func NewContactInfo(
	email *types.EmailAddress,
	phone *types.PhoneNumber,
	address *types.PhysicalAddress,
	website *types.WebsiteURL,
) (ContactInfo, error) {
	if email == nil && phone == nil && address == nil && website == nil {
		return ContactInfo{}, ErrContactInfoEmpty
	}
	return ContactInfo{email: email, phone: phone, address: address, website: website}, nil
}

func (c ContactInfo) Email() (types.EmailAddress, bool) {
	if c.email == nil {
		return types.EmailAddress{}, false
	}
	return *c.email, true
}

func (c ContactInfo) Phone() (types.PhoneNumber, bool) {
	if c.phone == nil {
		return types.PhoneNumber{}, false
	}
	return *c.phone, true
}

func (c ContactInfo) Address() (types.PhysicalAddress, bool) {
	if c.address == nil {
		return types.PhysicalAddress{}, false
	}
	return *c.address, true
}

func (c ContactInfo) Website() (types.WebsiteURL, bool) {
	if c.website == nil {
		return types.WebsiteURL{}, false
	}
	return *c.website, true
}

// AddressSnapshot is the serialized form of a postal address.
type AddressSnapshot struct {
	Line       string `json:"line"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country"`
}

// ContactSnapshot is the serialized form of ContactInfo, used in events and
// read models.
type ContactSnapshot struct {
	Email   string           `json:"email,omitempty"`
	Phone   string           `json:"phone,omitempty"`
	Address *AddressSnapshot `json:"address,omitempty"`
	Website string           `json:"website,omitempty"`
}

func (c ContactInfo) Snapshot() ContactSnapshot {
	var s ContactSnapshot
	if c.email != nil {
		s.Email = c.email.String()
	}
	if c.phone != nil {
		s.Phone = c.phone.String()
	}
	if c.address != nil {
		s.Address = &AddressSnapshot{
			Line:       c.address.Line(),
			City:       c.address.City(),
			PostalCode: c.address.PostalCode(),
			Country:    c.address.Country(),
		}
	}
	if c.website != nil {
		s.Website = c.website.String()
	}
	return s
}
