package types_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rai/clean-directory-go/modules/shared/types"
)

func TestNewEmailAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"lowercases and trims", "  Ada@Example.COM ", "ada@example.com", nil},
		{"empty", "  ", "", types.ErrEmailRequired},
		{"missing domain", "ada@", "", types.ErrEmailInvalid},
		{"missing tld", "ada@example", "", types.ErrEmailInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.NewEmailAddress(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got.String() != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContactValueObjects_Validation(t *testing.T) {
	tests := []struct {
		name    string
		build   func() error
		wantErr error
	}{
		{"phone ok", func() error { _, err := types.NewPhoneNumber("+49 (30) 123-4567"); return err }, nil},
		{"phone too short", func() error { _, err := types.NewPhoneNumber("12345"); return err }, types.ErrPhoneInvalid},
		{"phone letters", func() error { _, err := types.NewPhoneNumber("555-CALL-NOW"); return err }, types.ErrPhoneInvalid},
		{"phone plus inside", func() error { _, err := types.NewPhoneNumber("12+3456789"); return err }, types.ErrPhoneInvalid},
		{"phone empty", func() error { _, err := types.NewPhoneNumber(""); return err }, types.ErrPhoneRequired},
		{"website ok", func() error { _, err := types.NewWebsiteURL("https://rosies.example"); return err }, nil},
		{"website no scheme", func() error { _, err := types.NewWebsiteURL("rosies.example"); return err }, types.ErrWebsiteInvalid},
		{"website no host", func() error { _, err := types.NewWebsiteURL("https://"); return err }, types.ErrWebsiteInvalid},
		{"address ok", func() error { _, err := types.NewPhysicalAddress("1 Main St", "Springfield", "", "US"); return err }, nil},
		{"address no city", func() error { _, err := types.NewPhysicalAddress("1 Main St", " ", "12345", "US"); return err }, types.ErrAddressInvalid},
		{"tag ok", func() error { _, err := types.NewTag("Gluten-Free"); return err }, nil},
		{"tag space", func() error { _, err := types.NewTag("gluten free"); return err }, types.ErrTagInvalid},
		{"tag too long", func() error { _, err := types.NewTag(strings.Repeat("a", 31)); return err }, types.ErrTagInvalid},
		{"tag empty", func() error { _, err := types.NewTag(""); return err }, types.ErrTagRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, types.ErrValidation) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestPhysicalAddress_String(t *testing.T) {
	withPostal, _ := types.NewPhysicalAddress("1 Main St", "Springfield", "12345", "US")
	withoutPostal, _ := types.NewPhysicalAddress("1 Main St", "Springfield", "", "US")

	if got := withPostal.String(); got != "1 Main St, Springfield, 12345, US" {
		t.Errorf("got %q", got)
	}
	if got := withoutPostal.String(); got != "1 Main St, Springfield, US" {
		t.Errorf("got %q", got)
	}
}

func TestTextRule_Apply(t *testing.T) {
	errEmpty := types.Validation("empty")
	errLong := types.Validation("long")
	errBad := types.Validation("bad")
	rule := types.TextRule{MaxLen: 5, Allowed: types.NameRune, ErrEmpty: errEmpty, ErrTooLong: errLong, ErrInvalid: errBad}

	tests := []struct {
		input   string
		want    string
		wantErr error
	}{
		{" Ana ", "Ana", nil},
		{"O'Neil", "", errLong},
		{"", "", errEmpty},
		{"R2D2", "", errBad},
		{"Jean-", "Jean-", nil},
		{"An\xffa", "", errBad},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := rule.Apply(tt.input)
			if err != tt.wantErr {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextRule_RejectsInvalidUTF8(t *testing.T) {
	errBad := types.Validation("bad")
	rules := map[string]types.TextRule{
		"default": {ErrEmpty: errBad, ErrTooLong: errBad, ErrInvalid: errBad},
		"text":    {Allowed: types.TextRune, ErrEmpty: errBad, ErrTooLong: errBad, ErrInvalid: errBad},
		"label":   {Allowed: types.LabelRune, ErrEmpty: errBad, ErrTooLong: errBad, ErrInvalid: errBad},
		"name":    {Allowed: types.NameRune, ErrEmpty: errBad, ErrTooLong: errBad, ErrInvalid: errBad},
	}

	for name, rule := range rules {
		t.Run(name, func(t *testing.T) {
			if got, err := rule.Apply("ab\xffcd"); err != errBad {
				t.Errorf("Apply = %q, %v; want invalid", got, err)
			}
		})
	}
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("bus down")
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"validation", types.Validation("bad"), types.ErrValidation},
		{"not found", types.NotFound("gone"), types.ErrNotFound},
		{"forbidden", types.Forbidden("no"), types.ErrForbidden},
		{"conflict", types.Conflict("publishing", cause), types.ErrConflict},
		{"plain", cause, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := types.KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf = %v, want %v", got, tt.want)
			}
		})
	}

	conflict := types.Conflict("publishing", cause)
	if !errors.Is(conflict, cause) {
		t.Error("conflict should unwrap to its cause")
	}
	if got := conflict.Error(); got != "conflict: publishing: bus down" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIdentifiers(t *testing.T) {
	id := types.NewBusinessID()
	parsed, err := types.ParseBusinessID(id.String())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed != id || parsed.Compare(id) != 0 {
		t.Error("parsed id should equal the original")
	}
	if id.IsZero() || !(types.BusinessID{}).IsZero() {
		t.Error("unexpected IsZero result")
	}
	if _, err := types.ParseTermID("not-a-uuid"); !errors.Is(err, types.ErrInvalidID) {
		t.Errorf("error = %v, want ErrInvalidID", err)
	}
}
