package orchestrators

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SiteRenderer produces the static form of the site.
type SiteRenderer interface {
	// RenderStatic writes the page document without any per-request values.
	RenderStatic(w io.Writer) error
	// StaticFiles returns the published files keyed by slash-separated
	// path relative to the output root, e.g. "assets/css/site-<hash>.css".
	StaticFiles() map[string][]byte
}

// ExportSiteInput carries parameters for ExportSite.
type ExportSiteInput struct {
	OutDir string
	Clean  bool // remove OutDir before writing
}

// ExportSiteDeps holds dependencies for ExportSite.
type ExportSiteDeps struct {
	Site SiteRenderer
}

// ExportSiteResult summarizes what was written.
type ExportSiteResult struct {
	Files int
	Bytes int64
}

var (
	ErrMissingOutDir = errors.New("output directory is required")
	ErrUnsafeOutDir  = errors.New("refusing to clean the current or root directory")
	ErrUnsafePath    = errors.New("static file path escapes the output directory")
)

// ExecuteExportSite writes index.html and every fingerprinted asset under
// input.OutDir, for hosting the site without a server.
// PRE: deps.Site is non-nil
// POST: OutDir holds index.html and assets/; returns counts of what was written
func ExecuteExportSite(ctx context.Context, input ExportSiteInput, deps ExportSiteDeps) (ExportSiteResult, error) {
	var res ExportSiteResult
	if strings.TrimSpace(input.OutDir) == "" {
		return res, ErrMissingOutDir
	}
	out := filepath.Clean(input.OutDir)

	if input.Clean {
		if abs, err := filepath.Abs(out); err != nil || out == "." || abs == filepath.Dir(abs) {
			return res, ErrUnsafeOutDir
		}
		if err := os.RemoveAll(out); err != nil {
			return res, fmt.Errorf("clean %s: %w", out, err)
		}
	}

	var page bytes.Buffer
	if err := deps.Site.RenderStatic(&page); err != nil {
		return res, fmt.Errorf("render page: %w", err)
	}

	files := deps.Site.StaticFiles()
	files["index.html"] = page.Bytes()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		dst, err := outputPath(out, name)
		if err != nil {
			return res, err
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return res, fmt.Errorf("create dir for %s: %w", name, err)
		}
		if err := os.WriteFile(dst, files[name], 0o644); err != nil {
			return res, fmt.Errorf("write %s: %w", name, err)
		}
		res.Files++
		res.Bytes += int64(len(files[name]))
	}

	slog.Info("site_exported", "dir", out, "files", res.Files, "bytes", res.Bytes)
	return res, nil
}

// outputPath maps a slash-separated name into out, rejecting names that
// would land outside it.
func outputPath(out, name string) (string, error) {
	rel := filepath.FromSlash(name)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}
	return filepath.Join(out, rel), nil
}
