package featureflag

import (
	"errors"
	"testing"
)

// TestDefaults_AllEnabled verifies every default flag starts on.
func TestDefaults_AllEnabled(t *testing.T) {
	s := Defaults()
	for _, key := range []string{ZeffyModal, ZeffyEmbed, PayPalQR, ContactForm} {
		if !s.Enabled(key) {
			t.Errorf("expected %s enabled", key)
		}
	}
	if s.Enabled("nope") {
		t.Error("unknown key should be disabled")
	}
}

// TestSet_Apply verifies toggles are parsed and applied without mutating the source.
func TestSet_Apply(t *testing.T) {
	base := Defaults()
	s, err := base.Apply(" zeffy_modal=off, paypal_qr = false ,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Enabled(ZeffyModal) || s.Enabled(PayPalQR) {
		t.Error("expected toggled flags off")
	}
	if !s.Enabled(ContactForm) {
		t.Error("untouched flag should stay on")
	}
	if !base.Enabled(ZeffyModal) {
		t.Error("Apply mutated the receiver")
	}
}

// TestSet_Apply_Errors verifies malformed and unknown toggles are rejected.
func TestSet_Apply_Errors(t *testing.T) {
	if _, err := Defaults().Apply("bogus=on"); !errors.Is(err, ErrUnknownFlag) {
		t.Errorf("got %v, want ErrUnknownFlag", err)
	}
	if _, err := Defaults().Apply("zeffy_modal"); !errors.Is(err, ErrBadToggle) {
		t.Errorf("got %v, want ErrBadToggle", err)
	}
	if _, err := Defaults().Apply("zeffy_modal=maybe"); !errors.Is(err, ErrBadToggle) {
		t.Errorf("got %v, want ErrBadToggle", err)
	}
}

// TestNewSet_MissingKey verifies validation runs on construction.
func TestNewSet_MissingKey(t *testing.T) {
	if _, err := NewSet([]FeatureFlag{{Description: "x"}}); !errors.Is(err, ErrMissingKey) {
		t.Errorf("got %v, want ErrMissingKey", err)
	}
}

// TestSet_List verifies flags are listed by key.
func TestSet_List(t *testing.T) {
	list := Defaults().List()
	if len(list) != 4 {
		t.Fatalf("got %d flags, want 4", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Key > list[i].Key {
			t.Errorf("not sorted: %s before %s", list[i-1].Key, list[i].Key)
		}
	}
}
