package http

import (
	"github.com/rai/clean-directory-go/modules/businesses/application/commands"
	"github.com/rai/clean-directory-go/modules/businesses/application/queries"
	"github.com/rai/clean-directory-go/modules/businesses/domain"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

type createBusinessRequest struct {
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	Contact     *contactRequest   `json:"contact"`
	SocialMedia map[string]string `json:"social_media"`
	Features    *featuresRequest  `json:"features"`
}

type updateBusinessRequest struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Contact     *contactRequest   `json:"contact"`
	SocialMedia map[string]string `json:"social_media"`
	Features    *featuresRequest  `json:"features"`
}

type contactRequest struct {
	Email   *string         `json:"email"`
	Phone   *string         `json:"phone"`
	Address *addressRequest `json:"address"`
	Website *string         `json:"website"`
}

type addressRequest struct {
	Line       string `json:"line"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type featuresRequest struct {
	Hours    []hoursRequest    `json:"hours"`
	Services []string          `json:"services"`
	Tags     []string          `json:"tags"`
	Extra    map[string]string `json:"extra"`
}

type hoursRequest struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

type searchBusinessesRequest struct {
	Filter queries.Filter `json:"filter"`
	Limit  *int           `json:"limit"`
	Offset int            `json:"offset"`
}

func (req createBusinessRequest) toCommand() (commands.CreateBusinessCommand, error) {
	name, err := domain.NewBusinessName(req.Name)
	if err != nil {
		return commands.CreateBusinessCommand{}, err
	}
	cmd := commands.CreateBusinessCommand{Name: name}
	if cmd.Description, err = parseDescription(req.Description); err != nil {
		return commands.CreateBusinessCommand{}, err
	}
	if cmd.Contact, err = req.Contact.parse(); err != nil {
		return commands.CreateBusinessCommand{}, err
	}
	if cmd.SocialMedia, err = parseSocialMedia(req.SocialMedia); err != nil {
		return commands.CreateBusinessCommand{}, err
	}
	if cmd.Features, err = req.Features.parse(); err != nil {
		return commands.CreateBusinessCommand{}, err
	}
	return cmd, nil
}

func (req updateBusinessRequest) toCommand(id types.BusinessID) (commands.UpdateBusinessCommand, error) {
	cmd := commands.UpdateBusinessCommand{BusinessID: id}
	var err error
	if req.Name != nil {
		name, err := domain.NewBusinessName(*req.Name)
		if err != nil {
			return commands.UpdateBusinessCommand{}, err
		}
		cmd.Name = &name
	}
	if cmd.Description, err = parseDescription(req.Description); err != nil {
		return commands.UpdateBusinessCommand{}, err
	}
	if cmd.Contact, err = req.Contact.parse(); err != nil {
		return commands.UpdateBusinessCommand{}, err
	}
	if cmd.SocialMedia, err = parseSocialMedia(req.SocialMedia); err != nil {
		return commands.UpdateBusinessCommand{}, err
	}
	if cmd.Features, err = req.Features.parse(); err != nil {
		return commands.UpdateBusinessCommand{}, err
	}
	return cmd, nil
}

func parseDescription(raw *string) (*domain.BusinessDescription, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := domain.NewBusinessDescription(*raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (req *contactRequest) parse() (*domain.ContactInfo, error) {
	if req == nil {
		return nil, nil
	}
	var (
		email   *types.EmailAddress
		phone   *types.PhoneNumber
		address *types.PhysicalAddress
		website *types.WebsiteURL
	)
	if req.Email != nil {
		e, err := types.NewEmailAddress(*req.Email)
		if err != nil {
			return nil, err
		}
		email = &e
	}
	if req.Phone != nil {
		p, err := types.NewPhoneNumber(*req.Phone)
		if err != nil {
			return nil, err
		}
		phone = &p
	}
	if req.Address != nil {
		a, err := types.NewPhysicalAddress(req.Address.Line, req.Address.City, req.Address.PostalCode, req.Address.Country)
		if err != nil {
			return nil, err
		}
		address = &a
	}
	if req.Website != nil {
		u, err := types.NewWebsiteURL(*req.Website)
		if err != nil {
			return nil, err
		}
		website = &u
	}
	c, err := domain.NewContactInfo(email, phone, address, website)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// parseSocialMedia treats an absent map as "no change"; an empty object
// clears every profile.
func parseSocialMedia(raw map[string]string) (*domain.SocialMedia, error) {
	if raw == nil {
		return nil, nil
	}
	s, err := domain.NewSocialMedia(raw)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (req *featuresRequest) parse() (*domain.BusinessFeatures, error) {
	if req == nil {
		return nil, nil
	}
	hours := make([]domain.HoursEntry, 0, len(req.Hours))
	for _, h := range req.Hours {
		entry, err := domain.NewHoursEntry(h.Day, h.Hours)
		if err != nil {
			return nil, err
		}
		hours = append(hours, entry)
	}
	services := make([]domain.ServiceName, 0, len(req.Services))
	for _, s := range req.Services {
		svc, err := domain.NewServiceName(s)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	tags := make([]types.Tag, 0, len(req.Tags))
	for _, t := range req.Tags {
		tag, err := types.NewTag(t)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	f, err := domain.NewBusinessFeatures(hours, services, tags, req.Extra)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
