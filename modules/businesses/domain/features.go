package domain

import (
	"maps"
	"slices"
	"strings"

	"github.com/rai/clean-directory-go/modules/shared/types"
)

var serviceRule = types.TextRule{
	MaxLen:     80,
	Allowed:    types.LabelRune,
	ErrEmpty:   ErrServiceRequired,
	ErrTooLong: ErrServiceTooLong,
	ErrInvalid: ErrServiceInvalid,
}

// HoursEntry is the opening hours for one day, e.g. ("Mon", "9am-5pm").
type HoursEntry struct {
	day   string
	hours string
}

func NewHoursEntry(day, hours string) (HoursEntry, error) {
	day = strings.TrimSpace(day)
	hours = strings.TrimSpace(hours)
	if day == "" {
		return HoursEntry{}, ErrHoursDayRequired
	}
	if hours == "" {
		return HoursEntry{}, ErrHoursRequired
	}
	if len(day) > 50 || len(hours) > 50 {
		return HoursEntry{}, ErrHoursInvalid
	}
	return HoursEntry{day: day, hours: hours}, nil
}

func (h HoursEntry) Day() string   { return h.day }
func (h HoursEntry) Hours() string { return h.hours }

// ServiceName names a service the business offers.
type ServiceName struct {
	value string
}

func NewServiceName(value string) (ServiceName, error) {
	v, err := serviceRule.Apply(value)
	if err != nil {
		return ServiceName{}, err
	}
	return ServiceName{value: v}, nil
}

func (s ServiceName) String() string { return s.value }

// BusinessFeatures describes what a business offers: opening hours,
// services, descriptive tags and free-form extra attributes.
type BusinessFeatures struct {
	hours    []HoursEntry
	services []ServiceName
	tags     []types.Tag
	extra    map[string]string
}

// NewBusinessFeatures copies its inputs. Extra keys and values are trimmed
// and must not be blank.
func NewBusinessFeatures(hours []HoursEntry, services []ServiceName, tags []types.Tag, extra map[string]string) (BusinessFeatures, error) {
	cleaned := make(map[string]string, len(extra))
	for k, v := range extra {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" {
			return BusinessFeatures{}, ErrExtraKeyRequired
		}
		if v == "" {
			return BusinessFeatures{}, ErrExtraValueRequired
		}
		cleaned[k] = v
	}
	return BusinessFeatures{
		hours:    slices.Clone(hours),
		services: slices.Clone(services),
		tags:     slices.Clone(tags),
		extra:    cleaned,
	}, nil
}

func (f BusinessFeatures) Hours() []HoursEntry      { return slices.Clone(f.hours) }
func (f BusinessFeatures) Services() []ServiceName  { return slices.Clone(f.services) }
func (f BusinessFeatures) Tags() []types.Tag        { return slices.Clone(f.tags) }
func (f BusinessFeatures) Extra() map[string]string { return maps.Clone(f.extra) }

// HasTag reports whether the features carry tag.
func (f BusinessFeatures) HasTag(tag string) bool {
	return slices.ContainsFunc(f.tags, func(t types.Tag) bool { return t.String() == tag })
}

// HoursSnapshot is the serialized form of an HoursEntry.
type HoursSnapshot struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// FeaturesSnapshot is the serialized form of BusinessFeatures.
type FeaturesSnapshot struct {
	Hours    []HoursSnapshot   `json:"hours,omitempty"`
	Services []string          `json:"services,omitempty"`
	Tags     []string          `json:"tags,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

func (f BusinessFeatures) Snapshot() FeaturesSnapshot {
	s := FeaturesSnapshot{Extra: maps.Clone(f.extra)}
	for _, h := range f.hours {
		s.Hours = append(s.Hours, HoursSnapshot{Day: h.day, Hours: h.hours})
	}
	for _, svc := range f.services {
		s.Services = append(s.Services, svc.String())
	}
	for _, t := range f.tags {
		s.Tags = append(s.Tags, t.String())
	}
	return s
}
