package site

import (
	"errors"
	"net/url"
	"strings"
)

// Tier is a named sponsorship package.
// INVARIANT: Amount is informational only and never parsed.
type Tier struct {
	Name   string   `json:"name"`
	Amount string   `json:"amount"` // e.g. "$250"
	Perks  []string `json:"perks"`  // display order
}

// Social is an outbound link to one of the club's social profiles.
type Social struct {
	Name string `json:"name"`
	Href string `json:"href"`
	Icon string `json:"icon"` // "instagram" or "facebook"
}

// Contact holds the public contact details.
type Contact struct {
	Email   string   `json:"email"`
	Address string   `json:"address"`
	Socials []Social `json:"socials"`
}

// Metrics are the impact numbers shown in the volunteer section.
type Metrics struct {
	VolunteerHours int    `json:"volunteerHours"`
	PeriodLabel    string `json:"periodLabel"`
}

// Logos references the two logo variants. Paths are asset names resolved
// through the asset manifest.
type Logos struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// QRCodes references the quick-donate QR images.
type QRCodes struct {
	PayPal string `json:"paypal"`
	Venmo  string `json:"venmo"`
}

// Goal is the fundraising goal card.
type Goal struct {
	Label  string   `json:"label"`  // e.g. "Our 2026 Goal"
	Amount string   `json:"amount"` // e.g. "$30,000"
	Uses   []string `json:"uses"`
}

// Donations holds the third-party donation endpoints.
type Donations struct {
	PayPalURL           string `json:"paypalUrl"`
	ZeffyFormURL        string `json:"zeffyFormUrl"`
	ZeffyModalURL       string `json:"zeffyModalUrl"`
	ZeffyThermometerURL string `json:"zeffyThermometerUrl"`
	ZeffyScriptURL      string `json:"zeffyScriptUrl"`
}

// Profile is the organization profile rendered by the site.
// It is a load-time constant: the view receives a Clone and never mutates it.
type Profile struct {
	Name           string    `json:"name"`
	Tagline        string    `json:"tagline"`
	Headline       string    `json:"headline"`
	Blurb          string    `json:"blurb"`   // markdown
	Mission        string    `json:"mission"` // markdown
	MissionPoints  []string  `json:"missionPoints"`
	Goal           Goal      `json:"goal"`
	HelpItems      []string  `json:"helpItems"`
	VolunteerTasks []string  `json:"volunteerTasks"`
	Metrics        Metrics   `json:"metrics"`
	Contact        Contact   `json:"contact"`
	Logos          Logos     `json:"logos"`
	HeroImage      string    `json:"heroImage"`
	QR             QRCodes   `json:"qr"`
	Donations      Donations `json:"donations"`
	Tiers          []Tier    `json:"tiers"`
}

var (
	ErrMissingName    = errors.New("profile name is required")
	ErrMissingTagline = errors.New("profile tagline is required")
	ErrMissingEmail   = errors.New("contact email is required")
	ErrMissingPayPal  = errors.New("paypal donation url is required")
	ErrNoTiers        = errors.New("at least one sponsorship tier is required")
	ErrInvalidTier    = errors.New("sponsorship tier needs a name and an amount")
)

// Validate checks the profile's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(p.Tagline) == "" {
		return ErrMissingTagline
	}
	if strings.TrimSpace(p.Contact.Email) == "" {
		return ErrMissingEmail
	}
	if strings.TrimSpace(p.Donations.PayPalURL) == "" {
		return ErrMissingPayPal
	}
	if len(p.Tiers) == 0 {
		return ErrNoTiers
	}
	for _, t := range p.Tiers {
		if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.Amount) == "" {
			return ErrInvalidTier
		}
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate shared slices.
// PRE: none
// POST: returned profile shares no backing arrays with p
func (p Profile) Clone() Profile {
	c := p
	c.MissionPoints = cloneStrings(p.MissionPoints)
	c.Goal.Uses = cloneStrings(p.Goal.Uses)
	c.HelpItems = cloneStrings(p.HelpItems)
	c.VolunteerTasks = cloneStrings(p.VolunteerTasks)
	if p.Contact.Socials != nil {
		c.Contact.Socials = make([]Social, len(p.Contact.Socials))
		copy(c.Contact.Socials, p.Contact.Socials)
	}
	if p.Tiers != nil {
		c.Tiers = make([]Tier, len(p.Tiers))
		for i, t := range p.Tiers {
			t.Perks = cloneStrings(t.Perks)
			c.Tiers[i] = t
		}
	}
	return c
}

// Heading returns the hero heading, falling back to the tagline.
func (p Profile) Heading() string {
	if h := strings.TrimSpace(p.Headline); h != "" {
		return h
	}
	return p.Tagline
}

// VolunteerMailto builds the mailto link used to log volunteer hours.
// PRE: Contact.Email is set
// POST: returns a mailto URL with a pre-filled subject and body template
func (p Profile) VolunteerMailto() string {
	q := "subject=" + url.PathEscape("Volunteer Hours Log") +
		"&body=" + url.PathEscape("Name:\nHours:\nDate:\nActivity:")
	return "mailto:" + p.Contact.Email + "?" + q
}

// Period returns the reporting period label shown next to the hours.
func (m Metrics) Period() string {
	if m.PeriodLabel == "" {
		return "This Year"
	}
	return m.PeriodLabel
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
