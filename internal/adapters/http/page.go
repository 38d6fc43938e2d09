package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"pdgc/internal/domain/colorscheme"
	"pdgc/internal/domain/featureflag"
	"pdgc/internal/domain/modal"
	"pdgc/internal/domain/palette"
	"pdgc/internal/domain/site"
	"pdgc/internal/domain/widget"
)

// Page is one view of the donation site. It owns the view-scoped state:
// the color-scheme subscription, the Venmo dialog and the head scripts.
//
//	p := NewPage(s)
//	p.Mount(src)
//	defer p.Unmount()
//	err := p.Render(w, RenderInput{})
type Page struct {
	site     *Site
	profile  site.Profile
	detector *colorscheme.Detector
	venmo    *modal.Controller
	head     *widget.Head
}

// NewPage creates an unmounted page over its own copy of the profile.
func NewPage(s *Site) *Page {
	return &Page{
		site:     s,
		profile:  s.Profile.Clone(),
		detector: colorscheme.NewDetector(colorscheme.Unsupported),
		venmo:    modal.NewController(),
		head:     &widget.Head{},
	}
}

// Mount starts following src and mounts the embed scripts the enabled
// features need.
// PRE: none; a nil src behaves as unsupported
// POST: Theme follows src until Unmount; the Zeffy script is mounted at most once
func (p *Page) Mount(src colorscheme.Source) {
	p.detector.Stop()
	p.detector = colorscheme.NewDetector(src)
	p.detector.OnChange(func(dark bool) {
		p.site.Metrics.ThemeChanged(palette.For(dark).Name)
	})
	p.detector.Start()

	if p.site.Flags.Enabled(featureflag.ZeffyModal) {
		p.head.Mount(widget.Script{Src: p.profile.Donations.ZeffyScriptURL, Async: true})
	}
}

// Unmount releases the color-scheme subscription. Head scripts stay
// mounted, as they would in a browser document.
func (p *Page) Unmount() {
	p.detector.Stop()
}

// Theme returns the active palette name.
func (p *Page) Theme() string {
	return palette.For(p.detector.Dark()).Name
}

// Venmo returns the Venmo dialog controller.
func (p *Page) Venmo() *modal.Controller {
	return p.venmo
}

// Head returns the page's mounted scripts.
func (p *Page) Head() *widget.Head {
	return p.head
}

// RenderInput carries the per-request values of a render.
type RenderInput struct {
	Nonce     string        // CSP nonce for the inline theme script
	CSRFField template.HTML // hidden token input for the contact form
}

// assetURLs are the fingerprinted URLs a page references.
type assetURLs struct {
	SiteCSS, ThemeCSS, SiteJS string
	Logo, LogoLight, LogoDark string
	Hero, PayPalQR, VenmoQR   string
}

// features are the feature flags the templates branch on.
type features struct {
	ZeffyModal  bool
	ZeffyEmbed  bool
	PayPalQR    bool
	ContactForm bool
}

type pageData struct {
	Profile         site.Profile
	Theme           string
	Assets          assetURLs
	Features        features
	Scripts         []widget.Script
	ModalOpen       bool
	VolunteerHours  string
	VolunteerMailto string
	Year            int
	Nonce           string
	CSRFField       template.HTML
}

func (p *Page) data(in RenderInput) pageData {
	dark := p.detector.Dark()
	b := p.site.Assets
	logo := p.profile.Logos.Light
	if dark {
		logo = p.profile.Logos.Dark
	}
	flags := p.site.Flags

	return pageData{
		Profile: p.profile,
		Theme:   palette.For(dark).Name,
		Assets: assetURLs{
			SiteCSS:   b.URL("css/site.css"),
			ThemeCSS:  b.URL(themeAsset),
			SiteJS:    b.URL("js/site.js"),
			Logo:      b.URL(logo),
			LogoLight: b.URL(p.profile.Logos.Light),
			LogoDark:  b.URL(p.profile.Logos.Dark),
			Hero:      b.URL(p.profile.HeroImage),
			PayPalQR:  b.URL(p.profile.QR.PayPal),
			VenmoQR:   b.URL(p.profile.QR.Venmo),
		},
		Features: features{
			ZeffyModal:  flags.Enabled(featureflag.ZeffyModal),
			ZeffyEmbed:  flags.Enabled(featureflag.ZeffyEmbed),
			PayPalQR:    flags.Enabled(featureflag.PayPalQR),
			ContactForm: flags.Enabled(featureflag.ContactForm),
		},
		Scripts:         p.head.Scripts(),
		ModalOpen:       p.venmo.IsOpen(),
		VolunteerHours:  formatCount(p.profile.Metrics.VolunteerHours),
		VolunteerMailto: p.profile.VolunteerMailto(),
		Year:            p.now().Year(),
		Nonce:           in.Nonce,
		CSRFField:       in.CSRFField,
	}
}

func (p *Page) now() time.Time {
	if p.site.Now != nil {
		return p.site.Now()
	}
	return time.Now()
}

// Render writes the full HTML document. Nothing is written if rendering fails.
// PRE: none
// POST: w receives one complete document, or err is non-nil and w is untouched
func (p *Page) Render(w io.Writer, in RenderInput) error {
	start := time.Now()
	var buf bytes.Buffer
	if err := p.site.tmpl.ExecuteTemplate(&buf, "layout", p.data(in)); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	p.site.Perf.RecordRender("layout", start)
	_, err := buf.WriteTo(w)
	return err
}
