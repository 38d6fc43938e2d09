package widget

import "testing"

const zeffySrc = "https://zeffy-scripts.s3.ca-central-1.amazonaws.com/embed-form-script.min.js"

// TestHead_MountIdempotent tests that mounting twice leaves one script.
func TestHead_MountIdempotent(t *testing.T) {
	var h Head
	if !h.Mount(Script{Src: zeffySrc, Async: true}) {
		t.Error("first mount should insert")
	}
	if h.Mount(Script{Src: zeffySrc, Async: true}) {
		t.Error("second mount should not insert")
	}

	scripts := h.Scripts()
	if len(scripts) != 1 {
		t.Fatalf("got %d scripts, want 1", len(scripts))
	}
	if !scripts[0].Async {
		t.Error("expected async script")
	}
}

// TestHead_KeepsOrder tests that distinct scripts keep insertion order.
func TestHead_KeepsOrder(t *testing.T) {
	var h Head
	h.Mount(Script{Src: "a.js"})
	h.Mount(Script{Src: "b.js"})
	h.Mount(Script{Src: "a.js"})

	got := h.Scripts()
	if len(got) != 2 || got[0].Src != "a.js" || got[1].Src != "b.js" {
		t.Errorf("got %+v", got)
	}
}

// TestHead_EmptySrc tests that an empty source is ignored.
func TestHead_EmptySrc(t *testing.T) {
	var h Head
	if h.Mount(Script{}) {
		t.Error("empty src should not mount")
	}
	if len(h.Scripts()) != 0 {
		t.Error("expected no scripts")
	}
}

// TestHead_ScriptsCopy tests that callers cannot mutate the head through Scripts.
func TestHead_ScriptsCopy(t *testing.T) {
	var h Head
	h.Mount(Script{Src: "a.js"})
	s := h.Scripts()
	s[0].Src = "changed"
	if h.Scripts()[0].Src != "a.js" {
		t.Error("Scripts should return a copy")
	}
}
