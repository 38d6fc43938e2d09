package modal

import "sync"

// State is the visibility of the dialog.
type State int

const (
	Closed State = iota
	Open
)

// String returns "closed" or "open".
func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Target is the region of the dialog that received a pointer activation.
type Target int

const (
	// TargetBackdrop is the overlay outside the dialog content.
	TargetBackdrop Target = iota
	// TargetContent is anything inside the dialog content.
	TargetContent
)

// Controller is the open/closed state machine of the donation dialog.
// INVARIANT: starts Closed; there is no terminal state.
type Controller struct {
	mu    sync.Mutex
	state State
}

// NewController returns a closed controller.
func NewController() *Controller {
	return &Controller{state: Closed}
}

// Open shows the dialog. Opening an open dialog is a no-op.
// POST: State() == Open
func (c *Controller) Open() {
	c.set(Open)
}

// Close hides the dialog via the explicit close control.
// POST: State() == Closed
func (c *Controller) Close() {
	c.set(Closed)
}

// Activate handles a pointer activation while the dialog is shown.
// Activations on the backdrop close it; activations inside the content
// leave the state unchanged.
// PRE: none
// POST: returns the resulting state
func (c *Controller) Activate(t Target) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Open && t == TargetBackdrop {
		c.state = Closed
	}
	return c.state
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsOpen reports whether the dialog is shown.
func (c *Controller) IsOpen() bool {
	return c.State() == Open
}

func (c *Controller) set(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}
