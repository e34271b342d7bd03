// Package lock abstracts the platform "kid lock" behind a two-method
// capability so the gesture logic has no platform dependency. Both
// operations are best effort: a refusal is downgraded to a one-line hint
// and is never an application error.
package lock

import "errors"

var (
	// ErrUnavailable means the platform refused to pin the app.
	ErrUnavailable = errors.New("screen pinning unavailable")
	// ErrNotActive means an unpin was requested while no pin was held.
	ErrNotActive = errors.New("screen pinning not active")
)

// Pinner is the platform screen-pinning capability.
type Pinner interface {
	Pin() error
	Unpin() error
}

// Lock wraps a Pinner with the fail-soft policy: refusals are surfaced
// through the hint callback (if any) and then forgotten.
type Lock struct {
	pinner Pinner
	hint   func(string)
}

// New builds a Lock around p. hint may be nil, in which case refusals are
// swallowed silently.
func New(p Pinner, hint func(string)) *Lock {
	return &Lock{pinner: p, hint: hint}
}

// Engage requests the kid lock.
func (l *Lock) Engage() {
	if l.pinner == nil {
		return
	}
	if err := l.pinner.Pin(); err != nil {
		l.say("kid lock not engaged: " + err.Error())
	}
}

// Release requests that the kid lock be lifted.
func (l *Lock) Release() {
	if l.pinner == nil {
		return
	}
	if err := l.pinner.Unpin(); err != nil {
		l.say("kid lock release: " + err.Error())
	}
}

func (l *Lock) say(msg string) {
	if l.hint != nil {
		l.hint(msg)
	}
}
