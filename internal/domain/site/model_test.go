package site

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultProfile_Valid tests that the published profile passes validation.
func TestDefaultProfile_Valid(t *testing.T) {
	if err := DefaultProfile().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestDefaultProfile_TierOrder tests that tiers keep their declared order.
func TestDefaultProfile_TierOrder(t *testing.T) {
	want := []string{"Bronze", "Silver", "Gold", "Platinum"}
	tiers := DefaultProfile().Tiers
	if len(tiers) != len(want) {
		t.Fatalf("got %d tiers, want %d", len(tiers), len(want))
	}
	for i, name := range want {
		if tiers[i].Name != name {
			t.Errorf("tier %d: got %q, want %q", i, tiers[i].Name, name)
		}
	}
	if tiers[3].Amount != "$1000" {
		t.Errorf("platinum amount: got %q, want $1000", tiers[3].Amount)
	}
}

// TestProfile_Validate_Violations tests each required field.
func TestProfile_Validate_Violations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *Profile)
		want   error
	}{
		{"empty name", func(p *Profile) { p.Name = " " }, ErrMissingName},
		{"empty tagline", func(p *Profile) { p.Tagline = "" }, ErrMissingTagline},
		{"empty email", func(p *Profile) { p.Contact.Email = "" }, ErrMissingEmail},
		{"empty paypal", func(p *Profile) { p.Donations.PayPalURL = "" }, ErrMissingPayPal},
		{"no tiers", func(p *Profile) { p.Tiers = nil }, ErrNoTiers},
		{"tier without amount", func(p *Profile) { p.Tiers[0].Amount = "" }, ErrInvalidTier},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultProfile()
			tc.mutate(&p)
			if err := p.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

// TestProfile_Clone_Independent tests that mutating a clone leaves the source intact.
func TestProfile_Clone_Independent(t *testing.T) {
	src := DefaultProfile()
	c := src.Clone()

	c.Tiers[0].Perks[0] = "changed"
	c.Tiers[1].Name = "changed"
	c.Contact.Socials[0].Href = "changed"
	c.MissionPoints[0] = "changed"
	c.Goal.Uses[0] = "changed"

	if src.Tiers[0].Perks[0] == "changed" {
		t.Error("tier perks share backing array with clone")
	}
	if src.Tiers[1].Name == "changed" {
		t.Error("tiers share backing array with clone")
	}
	if src.Contact.Socials[0].Href == "changed" {
		t.Error("socials share backing array with clone")
	}
	if src.MissionPoints[0] == "changed" || src.Goal.Uses[0] == "changed" {
		t.Error("string slices share backing array with clone")
	}
}

// TestProfile_Heading tests the headline fallback to the tagline.
func TestProfile_Heading(t *testing.T) {
	p := DefaultProfile()
	if got := p.Heading(); got != "Disc Golf that Builds Community" {
		t.Errorf("got %q", got)
	}
	p.Headline = ""
	if got := p.Heading(); got != p.Tagline {
		t.Errorf("got %q, want tagline %q", got, p.Tagline)
	}
}

// TestProfile_VolunteerMailto tests the pre-filled volunteer hours mail link.
func TestProfile_VolunteerMailto(t *testing.T) {
	got := DefaultProfile().VolunteerMailto()
	want := "mailto:info@peninsuladiscgolfclub.org?subject=Volunteer%20Hours%20Log&body=Name:%0AHours:%0ADate:%0AActivity:"
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

// TestMetrics_Period tests the period label default.
func TestMetrics_Period(t *testing.T) {
	if got := (Metrics{}).Period(); got != "This Year" {
		t.Errorf("got %q, want This Year", got)
	}
	if got := (Metrics{PeriodLabel: "2025 YTD"}).Period(); got != "2025 YTD" {
		t.Errorf("got %q, want 2025 YTD", got)
	}
}

// TestLoadProfile tests decoding an override file.
func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	body := `{
		"name": "Fixture Club",
		"tagline": "Fixture tagline",
		"contact": {"email": "fixture@example.org"},
		"donations": {"paypalUrl": "https://example.org/donate"},
		"tiers": [{"name": "Only", "amount": "$1", "perks": ["One"]}]
	}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Fixture Club" || p.Tiers[0].Perks[0] != "One" {
		t.Errorf("unexpected profile: %+v", p)
	}
}

// TestLoadProfile_UnknownField tests that unknown keys are rejected.
func TestLoadProfile_UnknownField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	if err := os.WriteFile(path, []byte(`{"name":"x","bogus":true}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProfile(path); err == nil {
		t.Error("expected error for unknown field")
	}
}

// TestLoadProfile_Invalid tests that a decoded but invalid profile is rejected.
func TestLoadProfile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	if err := os.WriteFile(path, []byte(`{"name":"x"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProfile(path); !errors.Is(err, ErrMissingTagline) {
		t.Errorf("got %v, want ErrMissingTagline", err)
	}
}
