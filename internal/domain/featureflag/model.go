package featureflag

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// FeatureFlag controls whether an optional part of the page is rendered.
//
// Key is stable and referenced by templates and the page view.
type FeatureFlag struct {
	Key         string
	Description string
	Enabled     bool
}

var (
	ErrMissingKey  = errors.New("feature flag key is required")
	ErrUnknownFlag = errors.New("unknown feature flag")
	ErrBadToggle   = errors.New("feature toggle must be key=on or key=off")
)

// Validate checks required fields for a FeatureFlag.
// PRE: FeatureFlag struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (f *FeatureFlag) Validate() error {
	if f.Key == "" {
		return ErrMissingKey
	}
	return nil
}

// Set is the resolved flag configuration for one site.
type Set struct {
	flags map[string]FeatureFlag
}

// NewSet builds a set from the given flags.
// PRE: every flag passes Validate
func NewSet(flags []FeatureFlag) (Set, error) {
	s := Set{flags: make(map[string]FeatureFlag, len(flags))}
	for _, f := range flags {
		if err := f.Validate(); err != nil {
			return Set{}, err
		}
		s.flags[f.Key] = f
	}
	return s, nil
}

// Enabled reports whether key is switched on. Unknown keys are off.
func (s Set) Enabled(key string) bool {
	return s.flags[key].Enabled
}

// List returns the flags sorted by key.
func (s Set) List() []FeatureFlag {
	out := make([]FeatureFlag, 0, len(s.flags))
	for _, f := range s.flags {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Apply returns a copy of s with the given toggles applied.
// toggles is a comma separated list such as "zeffy_modal=off,paypal_qr=on".
// PRE: none
// POST: s is not mutated; unknown keys or malformed toggles return an error
func (s Set) Apply(toggles string) (Set, error) {
	out := Set{flags: make(map[string]FeatureFlag, len(s.flags))}
	for k, f := range s.flags {
		out.flags[k] = f
	}
	for _, part := range strings.Split(toggles, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			return Set{}, fmt.Errorf("%w: %q", ErrBadToggle, part)
		}
		key = strings.TrimSpace(key)
		f, known := out.flags[key]
		if !known {
			return Set{}, fmt.Errorf("%w: %q", ErrUnknownFlag, key)
		}
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "on", "true", "1":
			f.Enabled = true
		case "off", "false", "0":
			f.Enabled = false
		default:
			return Set{}, fmt.Errorf("%w: %q", ErrBadToggle, part)
		}
		out.flags[key] = f
	}
	return out, nil
}
