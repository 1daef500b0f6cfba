package domain

import (
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/rai/clean-directory-go/modules/shared/types"
)

var platformRule = types.TextRule{
	MaxLen: 30,
	Allowed: func(r rune) bool {
		return (r >= 'a' && r <= 'z') || unicode.IsDigit(r)
	},
	ErrEmpty:   ErrSocialPlatformRequired,
	ErrTooLong: ErrSocialPlatformInvalid,
	ErrInvalid: ErrSocialPlatformInvalid,
}

// SocialMedia maps a platform name (e.g. "instagram") to the business's
// profile link on that platform. Platform names are lowercased.
type SocialMedia struct {
	links map[string]types.WebsiteURL
}

func NewSocialMedia(links map[string]string) (SocialMedia, error) {
	out := make(map[string]types.WebsiteURL, len(links))
	for platform, link := range links {
		p, err := platformRule.Apply(strings.ToLower(platform))
		if err != nil {
			return SocialMedia{}, err
		}
		u, err := types.NewWebsiteURL(link)
		if err != nil {
			return SocialMedia{}, err
		}
		out[p] = u
	}
	return SocialMedia{links: out}, nil
}

// Platforms returns the platform names in lexical order.
func (s SocialMedia) Platforms() []string {
	return slices.Sorted(maps.Keys(s.links))
}

// Link returns the profile link for platform, if any.
func (s SocialMedia) Link(platform string) (types.WebsiteURL, bool) {
	u, ok := s.links[strings.ToLower(platform)]
	return u, ok
}

func (s SocialMedia) Len() int { return len(s.links) }

// Map returns the links in serialized form.
func (s SocialMedia) Map() map[string]string {
	out := make(map[string]string, len(s.links))
	for p, u := range s.links {
		out[p] = u.String()
	}
	return out
}
