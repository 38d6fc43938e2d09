// Package assets fingerprints static files and resolves their public paths.
//
// Every file is published under a content-hashed name so it can be served
// with a far-future cache lifetime:
//
//	bundle, _ := assets.Build(staticFS, map[string][]byte{"css/theme.css": css})
//	bundle.URL("css/site.css") // "/assets/css/site-3f9c2a61d04b7e18.css"
package assets

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Prefix is the URL path under which fingerprinted files are served.
const Prefix = "/assets/"

// hashBytes is the number of digest bytes kept in a fingerprint.
const hashBytes = 8

// ErrEmptyBundle is returned when no files were found to publish.
var ErrEmptyBundle = errors.New("assets: no files to publish")

// File is one published asset.
type File struct {
	Source      string // e.g. "css/site.css"
	Name        string // e.g. "css/site-3f9c2a61d04b7e18.css"
	ContentType string
	Body        []byte
}

// Manifest maps source names to fingerprinted names.
// It is safe for concurrent use.
type Manifest struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{entries: make(map[string]string)}
}

// Set adds or replaces an entry.
func (m *Manifest) Set(source, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[source] = name
}

// Resolve returns the fingerprinted name for source, or source unchanged
// when it is unknown.
func (m *Manifest) Resolve(source string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if name, ok := m.entries[source]; ok {
		return name
	}
	return source
}

// Bundle is an immutable set of fingerprinted files.
type Bundle struct {
	manifest *Manifest
	files    map[string]File // by fingerprinted name
}

// Build walks fsys and publishes every regular file, plus the generated
// files in extra (keyed by source name). Entries in extra replace files of
// the same name in fsys.
// PRE: fsys is non-nil
// POST: every file is reachable by its fingerprinted name; returns
// ErrEmptyBundle if nothing was published
func Build(fsys fs.FS, extra map[string][]byte) (*Bundle, error) {
	sources := make(map[string][]byte)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		body, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		sources[p] = body
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk assets: %w", err)
	}
	for name, body := range extra {
		sources[name] = body
	}
	if len(sources) == 0 {
		return nil, ErrEmptyBundle
	}

	b := &Bundle{manifest: NewManifest(), files: make(map[string]File, len(sources))}
	for src, body := range sources {
		name := Fingerprint(src, body)
		b.manifest.Set(src, name)
		b.files[name] = File{
			Source:      src,
			Name:        name,
			ContentType: contentType(src),
			Body:        body,
		}
	}
	return b, nil
}

// Fingerprint returns the content-hashed name for a file: the stem, a dash,
// the first bytes of the BLAKE2b-256 digest in hex, then the extension.
func Fingerprint(source string, body []byte) string {
	sum := blake2b.Sum256(body)
	ext := path.Ext(source)
	stem := strings.TrimSuffix(source, ext)
	return stem + "-" + hex.EncodeToString(sum[:hashBytes]) + ext
}

// URL returns the public path for source.
func (b *Bundle) URL(source string) string {
	return Prefix + b.manifest.Resolve(source)
}

// Files returns the published files ordered by name.
func (b *Bundle) Files() []File {
	out := make([]File, 0, len(b.files))
	for _, f := range b.files {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ServeHTTP serves fingerprinted files. Requests must have Prefix stripped
// or still carry it; unknown names are 404.
func (b *Bundle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	name := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, Prefix), "/")
	f, ok := b.files[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Header().Set("ETag", `"`+strings.TrimSuffix(path.Base(f.Name), path.Ext(f.Name))+`"`)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(f.Body)
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
