package domain

import (
	"maps"
	"slices"

	"github.com/rai/clean-directory-go/modules/shared/types"
)

var demographicValueRule = types.TextRule{
	MaxLen:     100,
	Allowed:    types.LabelRune,
	ErrEmpty:   ErrDemographicValueRequired,
	ErrTooLong: ErrDemographicValueTooLong,
	ErrInvalid: ErrDemographicValueInvalid,
}

// Demographics maps a taxonomy (e.g. "Age range") to the values a user
// reported for it. It is immutable once built.
type Demographics struct {
	values map[types.TaxonomyID][]string
}

// NewDemographics validates and copies the given entries. Values are trimmed
// and duplicates within one taxonomy are dropped, keeping the first.
func NewDemographics(entries map[types.TaxonomyID][]string) (Demographics, error) {
	values := make(map[types.TaxonomyID][]string, len(entries))
	for taxonomyID, raw := range entries {
		if len(raw) == 0 {
			return Demographics{}, ErrDemographicValuesRequired
		}
		var clean []string
		for _, r := range raw {
			v, err := demographicValueRule.Apply(r)
			if err != nil {
				return Demographics{}, err
			}
			if !slices.Contains(clean, v) {
				clean = append(clean, v)
			}
		}
		values[taxonomyID] = clean
	}
	return Demographics{values: values}, nil
}

// Values returns the values recorded for a taxonomy.
func (d Demographics) Values(taxonomyID types.TaxonomyID) []string {
	return slices.Clone(d.values[taxonomyID])
}

// Taxonomies returns the taxonomies with recorded values in identifier order.
func (d Demographics) Taxonomies() []types.TaxonomyID {
	return slices.SortedFunc(maps.Keys(d.values), types.TaxonomyID.Compare)
}

func (d Demographics) Len() int { return len(d.values) }

// Has reports whether value is recorded under taxonomyID.
func (d Demographics) Has(taxonomyID types.TaxonomyID, value string) bool {
	return slices.Contains(d.values[taxonomyID], value)
}

// Map renders the demographics keyed by taxonomy id string.
func (d Demographics) Map() map[string][]string {
	out := make(map[string][]string, len(d.values))
	for id, v := range d.values {
		out[id.String()] = slices.Clone(v)
	}
	return out
}
