// Package widget mounts third-party embed scripts into a page head.
package widget

import "sync"

// Script is an external script reference.
type Script struct {
	Src   string
	Async bool
}

// Head collects the external scripts of one rendered page.
type Head struct {
	mu      sync.Mutex
	scripts []Script
}

// Mount inserts s unless a script with the same Src is already present.
// There is no load tracking and no retry; a script that fails to load in
// the browser leaves its controls inert.
// PRE: s.Src is non-empty
// POST: exactly one script with s.Src is present; returns true if inserted
func (h *Head) Mount(s Script) bool {
	if s.Src == "" {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, existing := range h.scripts {
		if existing.Src == s.Src {
			return false
		}
	}
	h.scripts = append(h.scripts, s)
	return true
}

// Scripts returns the mounted scripts in insertion order.
func (h *Head) Scripts() []Script {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Script, len(h.scripts))
	copy(out, h.scripts)
	return out
}
