package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"pdgc/internal/adapters/http/assets"
	"pdgc/internal/adapters/http/metrics"
	"pdgc/internal/adapters/http/middleware"
	"pdgc/internal/adapters/http/perf"
	"pdgc/internal/domain/featureflag"
	"pdgc/internal/domain/palette"
	"pdgc/internal/domain/site"
)

//go:embed static
var staticFiles embed.FS

//go:embed templates/*.html
var templateFiles embed.FS

// themeAsset is the source name of the generated palette stylesheet.
const themeAsset = "css/theme.css"

// Site is everything needed to render and serve the donation page.
// It is built once at startup and shared read-only by all requests.
type Site struct {
	Profile site.Profile
	Flags   featureflag.Set
	Assets  *assets.Bundle
	Metrics *metrics.Metrics
	Perf    *perf.Collector
	Now     func() time.Time

	tmpl *template.Template
}

// NewSite validates the profile, fingerprints the static files and parses
// the page templates.
// PRE: profile is the loaded organization profile
// POST: returns a Site ready for NewMux or Render, or the first error
func NewSite(profile site.Profile, flags featureflag.Set) (*Site, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("static files: %w", err)
	}
	css := palette.Stylesheet(palette.Light(), palette.Dark())
	bundle, err := assets.Build(static, map[string][]byte{themeAsset: []byte(css)})
	if err != nil {
		return nil, fmt.Errorf("build assets: %w", err)
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Site{
		Profile: profile.Clone(),
		Flags:   flags,
		Assets:  bundle,
		Now:     time.Now,
		tmpl:    tmpl,
	}, nil
}

// Options configures the HTTP surface around a Site.
type Options struct {
	CSRFKey        []byte
	Secure         bool // HTTPS-only cookies
	TrustedOrigins []string
	TrustProxy     bool                    // honor X-Forwarded-For / X-Real-IP
	Limiter        *middleware.RateLimiter // nil disables rate limiting
	SlowRequestMs  int
	Debug          bool // expose /debug/perf
	Version        string
}

// NewMux wires HTTP handlers for the site.
func NewMux(s *Site, opts Options) http.Handler {
	h := &handlers{site: s, version: opts.Version}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Recoverer)
	r.Use(middleware.Timing(s.Perf, s.Metrics, opts.SlowRequestMs))

	r.Handle(assets.Prefix+"*", s.Assets)
	r.Get("/healthz", h.health)
	r.Handle("/metrics", s.Metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.SecurityHeaders(contentPolicy(s.Profile)))
		if opts.Limiter != nil {
			r.Use(middleware.RateLimit(opts.Limiter, s.Metrics.RateLimited))
		}
		r.Use(middleware.CSRF(opts.CSRFKey, opts.Secure, opts.TrustedOrigins))

		r.Get("/", h.home)
		if opts.Debug {
			r.Get("/debug/perf", h.perf)
		}
	})

	return r
}

// contentPolicy allows the page's third-party embeds and nothing else.
func contentPolicy(p site.Profile) middleware.Policy {
	d := p.Donations
	return middleware.Policy{
		ScriptSrc: origins(d.ZeffyScriptURL),
		FrameSrc:  origins(d.ZeffyFormURL, d.ZeffyThermometerURL, d.ZeffyModalURL),
	}
}

// origins returns the distinct scheme://host origins of the given URLs,
// skipping empty or unparsable ones.
func origins(urls ...string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			continue
		}
		o := u.Scheme + "://" + u.Host
		if !seen[o] {
			seen[o] = true
			out = append(out, o)
		}
	}
	return out
}
