// Package gallery implements the child-facing surface: a thumbnail strip
// and a fullscreen pager sharing one selected index over an immutable
// image collection, plus the drag-to-confirm exit overlay.
package gallery

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"kidgallery/internal/assets"
)

// Controller coordinates the single selected index shared by the strip
// and the pager, and owns the exit affordance.
type Controller interface {
	// Select makes i the active index in every view. Out-of-range or
	// already-active indexes are ignored.
	Select(i int)
	CurrentIndex() int
	// RevealExit shows the exit-confirmation overlay.
	RevealExit()
}

// Gallery wires the thumbnail strip, the pager and the exit overlay over
// one read-only image collection.
type Gallery struct {
	col    *assets.Collection
	strip  *thumbStrip
	pager  *pager
	loader *thumbLoader

	root    *fyne.Container
	exit    *exitOverlay
	current int
	onExit  func()
}

// New builds the gallery over col. onExit runs once when the exit gesture
// is confirmed.
func New(col *assets.Collection, onExit func()) *Gallery {
	g := &Gallery{col: col, onExit: onExit, current: -1}
	g.loader = newThumbLoader(thumbSize)
	g.pager = newPager(col, g)
	g.strip = newThumbStrip(col, g.loader, g.Select)

	main := container.NewBorder(nil, nil, g.strip.list, nil, g.pager)
	g.root = container.NewStack(main)

	if col.Len() > 0 {
		g.Select(0)
	}
	return g
}

// Content returns the canvas object to set as the window content.
func (g *Gallery) Content() fyne.CanvasObject {
	return g.root
}

// Select activates index i in both views. The notification is one way:
// selecting the already active index is a no-op, so the strip and the
// pager can both call Select without feeding back into each other.
func (g *Gallery) Select(i int) {
	if i == g.current || g.col.At(i) == nil {
		return
	}
	g.current = i
	g.pager.setIndex(i)
	g.strip.highlight(i)
}

// CurrentIndex returns the active index, or -1 for an empty gallery.
func (g *Gallery) CurrentIndex() int {
	return g.current
}

// RevealExit shows the exit overlay; at most one is up at a time.
func (g *Gallery) RevealExit() {
	if g.exit != nil {
		return
	}
	o := newExitOverlay(g.onExit, func() { g.exit = nil })
	g.exit = o
	o.showIn(g.root)
}
