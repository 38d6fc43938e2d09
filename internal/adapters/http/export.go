package web

import (
	"io"
	"strings"

	"pdgc/internal/adapters/http/assets"
	"pdgc/internal/domain/colorscheme"
)

// RenderStatic renders the page with no request values: the light
// palette until the page script reads the system preference, a closed
// dialog and no CSRF field.
func (s *Site) RenderStatic(w io.Writer) error {
	page := NewPage(s)
	page.Mount(colorscheme.Unsupported)
	defer page.Unmount()
	return page.Render(w, RenderInput{})
}

// StaticFiles returns every fingerprinted asset keyed by its path under
// the site root.
func (s *Site) StaticFiles() map[string][]byte {
	files := s.Assets.Files()
	out := make(map[string][]byte, len(files))
	for _, f := range files {
		out[strings.TrimPrefix(assets.Prefix, "/")+f.Name] = f.Body
	}
	return out
}
