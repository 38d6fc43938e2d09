package palette

import (
	"fmt"
	"strings"
)

// rule pairs a selector with a style.
type rule struct {
	selector string
	style    Style
}

// brandRules do not depend on the palette.
func brandRules() []rule {
	return []rule{
		{".btn-zeffy", ButtonSolid(BrandZeffy)},
		{".btn-paypal", ButtonSolid(BrandPayPal)},
		{".btn-venmo", ButtonSolid(BrandVenmo)},
	}
}

// paletteRules maps a palette onto the page's component classes.
func paletteRules(p Palette) []rule {
	return []rule{
		{"body", NewStyle("background", p.Bg, "color", p.Text)},
		{".nav", NewStyle("background", p.NavBg, "border-bottom", "1px solid "+p.Border)},
		{".nav-link", NavLink(p.Text)},
		{".subtext", NewStyle("color", p.Subtext)},
		{".hero-overlay", NewStyle("background", p.HeroOverlay)},
		{".frost", NewStyle("border", "1px solid "+p.Border, "box-shadow", p.CardShadow)},
		{".card", Card(p)},
		{".card-head", NewStyle("border-bottom", "1px solid "+p.Border)},
		{".btn-primary", ButtonPrimary(p)},
		{".btn-secondary", ButtonSecondary(p)},
		{".input", Input(p)},
		{".textarea", Textarea(p)},
		{".soft-alt", NewStyle("background", p.SoftAlt, "border-top", "1px solid "+p.Border, "border-bottom", "1px solid "+p.Border)},
		{".list-text", NewStyle("color", p.ListText)},
		{".volunteer", NewStyle("background", p.VolunteerBg, "border-bottom", "1px solid "+p.Border)},
		{".stat", NewStyle("border", "1px solid "+p.Border, "background", p.CardBg)},
		{".donate-strip", NewStyle("background", p.DonateGradient, "border-top", "1px solid "+p.Border, "border-bottom", "1px solid "+p.Border)},
		{".qr-card", NewStyle("border", "1px solid "+p.Border, "background", p.CardBg)},
		{".social", NewStyle("border", "1px solid "+p.Border, "background", p.CardBg, "color", p.Text)},
		{".footer", NewStyle("border-top", "1px solid "+p.Border, "background", p.CardBg)},
		{".strong-text", NewStyle("color", p.Text)},
		{".dialog-content", NewStyle("background", p.CardBg, "color", p.Text, "border", "1px solid "+p.Border)},
		{".dialog-head", NewStyle("border-bottom", "1px solid "+p.Border)},
	}
}

// Stylesheet renders the component classes for both palettes. Palette rules
// are scoped by the data-theme attribute on the root element so the page can
// switch palettes by flipping that attribute.
// PRE: light.Name and dark.Name are distinct
// POST: returns CSS text with one block per palette
func Stylesheet(light, dark Palette) string {
	var b strings.Builder
	for _, r := range brandRules() {
		writeRule(&b, r.selector, r.style)
	}
	for _, p := range []Palette{light, dark} {
		scope := fmt.Sprintf(`:root[data-theme="%s"]`, p.Name)
		for _, r := range paletteRules(p) {
			writeRule(&b, scope+" "+r.selector, r.style)
		}
	}
	return b.String()
}

func writeRule(b *strings.Builder, selector string, s Style) {
	b.WriteString(selector)
	b.WriteString(" { ")
	b.WriteString(s.String())
	b.WriteString(" }\n")
}
