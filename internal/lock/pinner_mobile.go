//go:build android || ios

package lock

import "fyne.io/fyne/v2"

// The mobile driver exposes no lock-task affordance, so pinning is always
// refused and callers fall back to their advisory hint. Mobile apps are
// already single-window fullscreen, which covers most of the intent.
type unsupportedPinner struct{}

// ForWindow returns the pinning capability for win on this platform.
func ForWindow(_ fyne.Window) Pinner {
	return unsupportedPinner{}
}

func (unsupportedPinner) Pin() error   { return ErrUnavailable }
func (unsupportedPinner) Unpin() error { return ErrNotActive }
