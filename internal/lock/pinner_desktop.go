//go:build !android && !ios

package lock

import "fyne.io/fyne/v2"

// windowPinner approximates screen pinning on desktop drivers: fullscreen
// the window and intercept close requests while the lock is held.
type windowPinner struct {
	win    fyne.Window
	pinned bool
}

// ForWindow returns the pinning capability for win on this platform.
func ForWindow(win fyne.Window) Pinner {
	return &windowPinner{win: win}
}

func (p *windowPinner) Pin() error {
	if p.win == nil {
		return ErrUnavailable
	}
	p.win.SetFullScreen(true)
	p.win.SetCloseIntercept(func() {})
	p.pinned = true
	return nil
}

func (p *windowPinner) Unpin() error {
	if !p.pinned {
		return ErrNotActive
	}
	p.win.SetCloseIntercept(nil)
	p.win.SetFullScreen(false)
	p.pinned = false
	return nil
}
