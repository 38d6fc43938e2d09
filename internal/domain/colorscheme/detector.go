// Package colorscheme tracks the system light/dark preference for a view.
//
// A Detector owns one subscription to a preference Source for the lifetime
// of the view that started it:
//
//	d := colorscheme.NewDetector(src)
//	d.Start()
//	defer d.Stop()
//	pal := palette.For(d.Dark())
package colorscheme

import "sync"

// Source reports the system color-scheme preference.
type Source interface {
	// Query returns the current preference. supported is false when the
	// preference cannot be determined.
	Query() (dark, supported bool)
	// Subscribe registers fn for preference changes and returns a function
	// that removes the registration.
	Subscribe(fn func(dark bool)) (unsubscribe func())
}

// Fixed is a Source with a single reading that never changes, such as a
// value taken from a request header.
type Fixed struct {
	Dark      bool
	Supported bool
}

// Query implements Source.
func (f Fixed) Query() (bool, bool) { return f.Dark, f.Supported }

// Subscribe implements Source. A fixed reading never fires.
func (f Fixed) Subscribe(func(bool)) func() { return func() {} }

// Unsupported is the Source used when no preference is available.
var Unsupported = Fixed{}

// Detector exposes the current preference as a boolean.
// INVARIANT: at most one subscription is held at a time.
type Detector struct {
	life        sync.Mutex // serializes Start and Stop
	unsubscribe func()     // guarded by life

	mu       sync.Mutex
	src      Source
	dark     bool
	onChange func(dark bool)
}

// NewDetector creates a detector over src. A nil src behaves like Unsupported.
func NewDetector(src Source) *Detector {
	if src == nil {
		src = Unsupported
	}
	return &Detector{src: src}
}

// OnChange sets a callback invoked after each preference change while started.
func (d *Detector) OnChange(fn func(dark bool)) {
	d.mu.Lock()
	d.onChange = fn
	d.mu.Unlock()
}

// Start reads the initial preference and subscribes to changes.
// PRE: none
// POST: Dark reflects the source; an unsupported source yields false.
// Calling Start while started is a no-op.
func (d *Detector) Start() {
	d.life.Lock()
	defer d.life.Unlock()
	if d.unsubscribe != nil {
		return
	}

	dark, ok := d.src.Query()
	d.mu.Lock()
	d.dark = ok && dark
	d.mu.Unlock()

	d.unsubscribe = d.src.Subscribe(d.update)
	if d.unsubscribe == nil {
		d.unsubscribe = func() {}
	}
}

// Stop removes the subscription. Safe to call more than once.
// POST: the source holds no listener registered by this detector
func (d *Detector) Stop() {
	d.life.Lock()
	defer d.life.Unlock()
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
}

// Dark reports whether the dark palette should be used.
func (d *Detector) Dark() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dark
}

func (d *Detector) update(dark bool) {
	d.mu.Lock()
	d.dark = dark
	cb := d.onChange
	d.mu.Unlock()
	if cb != nil {
		cb(dark)
	}
}
