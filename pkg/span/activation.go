package span

// Activation is an opaque activate callback attached to a link label or
// image embed. The engine builds one per activatable element per render
// and releases the previous generation before rebuilding, so handles to
// stale content never outlive a render.
type Activation struct {
	// Target is the raw URL the element points at.
	Target string

	fn func(target string)
}

// NewActivation creates an activation for target. fn may be nil, in
// which case Activate is a no-op.
func NewActivation(target string, fn func(target string)) *Activation {
	return &Activation{Target: target, fn: fn}
}

// Activate invokes the callback. Released or nil-handler activations do
// nothing; hit-testing and gesture wiring are the host's concern.
func (a *Activation) Activate() {
	if a == nil || a.fn == nil {
		return
	}
	a.fn(a.Target)
}

// Release drops the callback so the activation can no longer fire.
func (a *Activation) Release() {
	if a == nil {
		return
	}
	a.fn = nil
}

// Released reports whether the activation has been released.
func (a *Activation) Released() bool {
	return a == nil || a.fn == nil
}
