package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"pdgc/internal/adapters/http/middleware"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set).
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

var countPrinter = message.NewPrinter(language.English)

var funcMap = template.FuncMap{
	"markdown": renderMarkdown,
	"icon":     icon,
}

func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// formatCount groups digits for display, e.g. 1200 -> "1,200".
func formatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("internal_error",
		"request_id", middleware.RequestIDFromContext(r.Context()),
		"path", r.URL.Path,
		"error", err.Error(),
	)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json_encode_failed", "error", err.Error())
	}
}

type handlers struct {
	site    *Site
	version string
}

// home renders the donation page in the theme the client hinted at.
func (h *handlers) home(w http.ResponseWriter, r *http.Request) {
	page := NewPage(h.site)
	page.Mount(hintSource(r))
	defer page.Unmount()

	advertiseHints(w.Header())
	var buf bytes.Buffer
	err := page.Render(&buf, RenderInput{
		Nonce:     middleware.Nonce(r.Context()),
		CSRFField: csrf.TemplateField(r),
	})
	if err != nil {
		internalError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("write_aborted", "error", err.Error())
		return
	}
	h.site.Metrics.PageRendered(page.Theme())
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok", "version": h.version})
}

// perf serves the last hour of timings.
func (h *handlers) perf(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.site.Perf.Snapshot(time.Now().Add(-time.Hour), 10))
}
