package assets

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"css/site.css":   {Data: []byte("body { margin: 0; }")},
		"js/site.js":     {Data: []byte("console.log(1)")},
		"img/hero.svg":   {Data: []byte("<svg></svg>")},
		"img/README.txt": {Data: []byte("notes")},
	}
}

// TestFingerprint tests the hashed name format.
func TestFingerprint(t *testing.T) {
	got := Fingerprint("css/site.css", []byte("a"))
	if !regexp.MustCompile(`^css/site-[0-9a-f]{16}\.css$`).MatchString(got) {
		t.Errorf("got %q", got)
	}
	if Fingerprint("css/site.css", []byte("a")) != got {
		t.Error("fingerprint should be deterministic")
	}
	if Fingerprint("css/site.css", []byte("b")) == got {
		t.Error("different content should change the fingerprint")
	}
}

// TestBuild_ResolvesAndServes tests that every source resolves to a served file.
func TestBuild_ResolvesAndServes(t *testing.T) {
	b, err := Build(testFS(), map[string][]byte{"css/theme.css": []byte(":root{}")})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(b.Files()) != 5 {
		t.Fatalf("got %d files, want 5", len(b.Files()))
	}

	url := b.URL("css/theme.css")
	if !strings.HasPrefix(url, Prefix+"css/theme-") {
		t.Fatalf("url = %q", url)
	}

	rec := httptest.NewRecorder()
	b.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != ":root{}" {
		t.Errorf("body = %q", rec.Body.String())
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/css") {
		t.Errorf("content-type = %q", rec.Header().Get("Content-Type"))
	}
	if !strings.Contains(rec.Header().Get("Cache-Control"), "immutable") {
		t.Errorf("cache-control = %q", rec.Header().Get("Cache-Control"))
	}
}

// TestBuild_ExtraOverrides tests that generated files replace embedded ones.
func TestBuild_ExtraOverrides(t *testing.T) {
	b, err := Build(testFS(), map[string][]byte{"css/site.css": []byte("generated")})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	rec := httptest.NewRecorder()
	b.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, b.URL("css/site.css"), nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "generated" {
		t.Errorf("got %d %q", rec.Code, rec.Body.String())
	}
}

// TestBundle_UnknownAndUnhashed tests that only fingerprinted names are served.
func TestBundle_UnknownAndUnhashed(t *testing.T) {
	b, err := Build(testFS(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, p := range []string{"/assets/css/site.css", "/assets/nope.js"} {
		rec := httptest.NewRecorder()
		b.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", p, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	b.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, b.URL("js/site.js"), nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", rec.Code)
	}
}

// TestBuild_Empty tests the empty bundle error.
func TestBuild_Empty(t *testing.T) {
	if _, err := Build(fstest.MapFS{}, nil); err != ErrEmptyBundle {
		t.Errorf("got %v, want ErrEmptyBundle", err)
	}
}

// TestManifest_ResolveUnknown tests passthrough of unknown names.
func TestManifest_ResolveUnknown(t *testing.T) {
	m := NewManifest()
	m.Set("a.js", "a-1.js")
	if m.Resolve("b.js") != "b.js" {
		t.Error("unknown source should pass through")
	}
	if m.Resolve("a.js") != "a-1.js" {
		t.Error("known source should resolve")
	}
	m.Set("a.js", "a-2.js")
	if m.Resolve("a.js") != "a-2.js" {
		t.Error("Set should replace an entry")
	}
}
