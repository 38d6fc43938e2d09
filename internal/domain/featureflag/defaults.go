package featureflag

// Keys of the optional page features.
const (
	ZeffyModal  = "zeffy_modal"
	ZeffyEmbed  = "zeffy_embed"
	PayPalQR    = "paypal_qr"
	ContactForm = "contact_form"
)

// DefaultFlags returns the known feature flags and their default settings.
//
// Each flag covers one optional block of the page. All are on by default.
func DefaultFlags() []FeatureFlag {
	return []FeatureFlag{
		{
			Key:         ZeffyModal,
			Description: "Zeffy modal donate button (loads the vendor embed script)",
			Enabled:     true,
		},
		{
			Key:         ZeffyEmbed,
			Description: "Zeffy donation form and thermometer iframes in the hero",
			Enabled:     true,
		},
		{
			Key:         PayPalQR,
			Description: "PayPal QR quick-donate card",
			Enabled:     true,
		},
		{
			Key:         ContactForm,
			Description: "Contact form (demo, not wired to an endpoint)",
			Enabled:     true,
		},
	}
}

// Defaults returns the default flag set.
func Defaults() Set {
	s, _ := NewSet(DefaultFlags())
	return s
}
