package site

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultProfile returns the club's published content.
//
// Image fields are asset names relative to the static directory; the web
// adapter resolves them to fingerprinted URLs.
func DefaultProfile() Profile {
	return Profile{
		Name:     "Peninsula Disc Golf Club",
		Tagline:  "Strengthening Connections and People Through Disc Golf",
		Headline: "Disc Golf that Builds Community",
		Blurb: "Help Us Grow the Long Beach Dunes Disc Golf Course! The Peninsula Disc Golf Club is " +
			"transforming rolling dunes into a free-to-play 18-hole disc golf course. With over 1,000 " +
			"volunteer hours and strong local support, we’ve built tee pads, baskets and signage and " +
			"welcomed over 700 unique players from across the country.",
		Mission: "We expand access to healthy outdoor recreation through disc golf, steward local " +
			"courses with volunteer labor, and host inclusive events and youth programs.",
		MissionPoints: []string{
			"Maintain and improve public disc-golf courses",
			"Host community events and tournaments",
			"Promote stewardship of dunes and local ecology",
		},
		Goal: Goal{
			Label:  "Our 2026 Goal",
			Amount: "$30,000",
			Uses: []string{
				"Tee pads and baskets for new holes and practice areas",
				"Professional signage",
				"Safe and effective land clearing and mowing",
				"Benches, erosion control, and course improvements",
			},
		},
		HelpItems: []string{
			"Make a tax-deductible donation today",
			"Sponsor a hole or sign with a donation and get your business logo on signage",
			"Join us as a volunteer and help us finish the course",
		},
		VolunteerTasks: []string{
			"Join work parties for trail and tee maintenance",
			"Help at youth clinics and beginner days",
			"Contribute signage, tools, or printing (in-kind)",
			"Share updates on social to spread the word",
		},
		Metrics: Metrics{VolunteerHours: 520, PeriodLabel: "2025 YTD"},
		Contact: Contact{
			Email:   "info@peninsuladiscgolfclub.org",
			Address: "Long Beach, WA",
			Socials: []Social{
				{Name: "Instagram", Href: "https://instagram.com/longbeachdunesdiscgolf", Icon: "instagram"},
				{Name: "Facebook", Href: "https://www.facebook.com/profile.php?id=100087858846267", Icon: "facebook"},
			},
		},
		Logos:     Logos{Light: "img/logo-light.svg", Dark: "img/logo-dark.svg"},
		HeroImage: "img/hero.svg",
		QR:        QRCodes{PayPal: "img/paypal-qr.svg", Venmo: "img/venmo-qr.svg"},
		Donations: Donations{
			PayPalURL:           "https://www.paypal.com/donate/?hosted_button_id=NFN35LVULXANN",
			ZeffyFormURL:        "https://www.zeffy.com/embed/donation-form/help-us-grow-the-long-beach-dunes-disc-golf-course",
			ZeffyModalURL:       "https://www.zeffy.com/embed/donation-form/help-us-grow-the-long-beach-dunes-disc-golf-course?modal=true",
			ZeffyThermometerURL: "https://www.zeffy.com/embed/thermometer/help-us-grow-the-long-beach-dunes-disc-golf-course",
			ZeffyScriptURL:      "https://zeffy-scripts.s3.ca-central-1.amazonaws.com/embed-form-script.min.js",
		},
		Tiers: []Tier{
			{Name: "Bronze", Amount: "$250", Perks: []string{"Thank-you post on social media", "Name on website"}},
			{Name: "Silver", Amount: "$500", Perks: []string{"All Bronze perks", "Sticker pack / shout-out"}},
			{Name: "Gold", Amount: "$750", Perks: []string{"All Silver perks", "Logo on website", "Logo on quarterly update"}},
			{Name: "Platinum", Amount: "$1000", Perks: []string{"All Gold perks", "Small logo on tee sign (season)", "Event-day shout-out"}},
		},
	}
}

// LoadProfile reads a profile from a JSON file, rejecting unknown fields.
// PRE: path names a readable JSON file
// POST: returns a validated profile or an error
func LoadProfile(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()

	var p Profile
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("decode profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return p, nil
}
