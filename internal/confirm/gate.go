// Package confirm implements a single-flight confirmation gate.
//
// A Gate holds at most one pending Request. A request names the action to
// run on confirm and, optionally, the action to run on cancel. Actions are
// plain values of the caller's choosing; the gate hands them back and the
// caller dispatches them. Opening a new request replaces the pending one and
// its actions are never returned.
package confirm

import (
	"sync"

	"github.com/google/uuid"
)

// Request is a pending confirmation.
type Request[A any] struct {
	ID        string
	Confirm   A
	Cancel    A
	HasCancel bool
	Payload   any
}

// RequestOption configures a Request at Open time.
type RequestOption[A any] func(*Request[A])

// WithCancel installs the action returned by Cancel.
func WithCancel[A any](action A) RequestOption[A] {
	return func(r *Request[A]) {
		r.Cancel = action
		r.HasCancel = true
	}
}

// WithPayload attaches display data to the request.
func WithPayload[A any](payload any) RequestOption[A] {
	return func(r *Request[A]) {
		r.Payload = payload
	}
}

// Gate owns the pending confirmation request.
type Gate[A any] struct {
	mu      sync.Mutex
	pending *Request[A]
}

// New returns an idle gate.
func New[A any]() *Gate[A] {
	return &Gate[A]{}
}

// Open installs a new request, abandoning any pending one.
func (g *Gate[A]) Open(onConfirm A, opts ...RequestOption[A]) Request[A] {
	req := Request[A]{
		ID:      uuid.NewString(),
		Confirm: onConfirm,
	}
	for _, opt := range opts {
		opt(&req)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = &req
	return req
}

// Close clears the pending request without returning either action.
func (g *Gate[A]) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = nil
}

// Confirm clears the pending request and returns its confirm action. It
// returns false when nothing is pending.
func (g *Gate[A]) Confirm() (A, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var zero A
	if g.pending == nil {
		return zero, false
	}
	action := g.pending.Confirm
	g.pending = nil
	return action, true
}

// Cancel clears the pending request and returns its cancel action, if one
// was installed.
func (g *Gate[A]) Cancel() (A, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var zero A
	if g.pending == nil {
		return zero, false
	}
	req := g.pending
	g.pending = nil
	if !req.HasCancel {
		return zero, false
	}
	return req.Cancel, true
}

// Visible reports whether a request is pending.
func (g *Gate[A]) Visible() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending != nil
}

// Pending returns a copy of the pending request.
func (g *Gate[A]) Pending() (Request[A], bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending == nil {
		return Request[A]{}, false
	}
	return *g.pending, true
}
