package palette

// Palette is the set of colors and derived values for one color scheme.
type Palette struct {
	Name           string // "light" or "dark"
	Bg             string
	Text           string
	Subtext        string
	Border         string
	CardBg         string
	CardShadow     string
	NavBg          string
	HeroOverlay    string
	Accent         string
	AccentBorder   string
	SoftAlt        string
	ListText       string
	VolunteerBg    string
	DonateGradient string
}

// Brand colors of the payment providers.
const (
	BrandZeffy      = "#00B386"
	BrandPayPal     = "#003087"
	BrandVenmo      = "#3D95CE"
	BrandTextOnDark = "#ffffff"
)

const (
	NameLight = "light"
	NameDark  = "dark"
)

// Light returns the default palette.
func Light() Palette {
	return Palette{
		Name:           NameLight,
		Bg:             "#ffffff",
		Text:           "#18181b",
		Subtext:        "#52525b",
		Border:         "#e4e4e7",
		CardBg:         "#ffffff",
		CardShadow:     "0 1px 2px rgba(0,0,0,0.06)",
		NavBg:          "rgba(255,255,255,0.85)",
		HeroOverlay:    "rgba(0,0,0,0.4)",
		Accent:         "#10b981",
		AccentBorder:   "#059669",
		SoftAlt:        "#f9fafb",
		ListText:       "#374151",
		VolunteerBg:    "#fafafa",
		DonateGradient: "linear-gradient(90deg,#ecfdf5,#e0f2fe)",
	}
}

// Dark returns the palette used when the system prefers a dark scheme.
func Dark() Palette {
	return Palette{
		Name:           NameDark,
		Bg:             "#18181b",
		Text:           "#fafafa",
		Subtext:        "#a1a1aa",
		Border:         "#27272a",
		CardBg:         "#111113",
		CardShadow:     "0 1px 2px rgba(0,0,0,0.25)",
		NavBg:          "rgba(24,24,27,0.85)",
		HeroOverlay:    "rgba(0,0,0,0.6)",
		Accent:         "#10b981",
		AccentBorder:   "#059669",
		SoftAlt:        "#1f1f23",
		ListText:       "#e2e8f0",
		VolunteerBg:    "#0b0b0c",
		DonateGradient: "linear-gradient(90deg,#052e2b,#0b2a33)",
	}
}

// For selects the palette for the given preference.
func For(dark bool) Palette {
	if dark {
		return Dark()
	}
	return Light()
}
