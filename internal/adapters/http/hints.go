package web

import (
	"net/http"
	"strings"

	"pdgc/internal/domain/colorscheme"
)

// colorSchemeHint is the client hint carrying prefers-color-scheme.
const colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

// hintSource reads the color-scheme client hint. Browsers that do not send
// it get an unsupported source and the light palette; the page script
// corrects the theme before first paint.
func hintSource(r *http.Request) colorscheme.Source {
	v := strings.ToLower(strings.Trim(r.Header.Get(colorSchemeHint), `" `))
	switch v {
	case "dark":
		return colorscheme.Fixed{Dark: true, Supported: true}
	case "light":
		return colorscheme.Fixed{Supported: true}
	}
	return colorscheme.Unsupported
}

// advertiseHints asks the browser to send the hint on subsequent requests,
// and to retry this one with it.
func advertiseHints(h http.Header) {
	h.Set("Accept-CH", colorSchemeHint)
	h.Set("Critical-CH", colorSchemeHint)
	h.Add("Vary", colorSchemeHint)
}
