package gallery

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	handleDiameter = 56
	handleMargin   = 16
)

// exitOverlay is the adult exit affordance: a dimmed layer with a handle
// that has to be dragged most of the way up the screen to confirm leaving
// the app. Whatever the outcome of the gesture, the overlay removes itself
// from its parent container.
type exitOverlay struct {
	widget.BaseWidget

	scrim  *canvas.Rectangle
	handle *canvas.Circle
	label  *widget.Label

	// track is the travel distance available to the handle; kept current
	// by the renderer on every layout.
	track   float32
	tracker *exitTracker

	parent      *fyne.Container
	onConfirm   func()
	onDismissed func()
}

func newExitOverlay(onConfirm, onDismissed func()) *exitOverlay {
	o := &exitOverlay{
		scrim:       canvas.NewRectangle(color.NRGBA{A: 200}),
		handle:      canvas.NewCircle(theme.Color(theme.ColorNamePrimary)),
		label:       widget.NewLabel("Slide the circle all the way up to leave"),
		onConfirm:   onConfirm,
		onDismissed: onDismissed,
	}
	o.label.Alignment = fyne.TextAlignCenter
	o.ExtendBaseWidget(o)
	return o
}

// showIn stacks the overlay on top of parent's content.
func (o *exitOverlay) showIn(parent *fyne.Container) {
	o.parent = parent
	parent.Add(o)
	parent.Refresh()
}

func (o *exitOverlay) dismiss() {
	if o.parent != nil {
		o.parent.Remove(o)
		o.parent.Refresh()
		o.parent = nil
	}
	if o.onDismissed != nil {
		o.onDismissed()
	}
}

func (o *exitOverlay) Dragged(e *fyne.DragEvent) {
	if o.tracker == nil {
		o.tracker = newExitTracker(o.track)
		start := e.Position.Subtract(e.Dragged)
		o.tracker.begin(start.Y)
	}
	o.applyOffset(o.tracker.move(e.Position.Y))
}

func (o *exitOverlay) DragEnd() {
	if o.tracker == nil {
		return
	}
	confirmed := o.tracker.release()
	o.tracker = nil
	o.dismiss()
	if confirmed && o.onConfirm != nil {
		o.onConfirm()
	}
}

// Tapped dismisses the overlay without confirming; it also keeps taps from
// reaching the gallery underneath.
func (o *exitOverlay) Tapped(*fyne.PointEvent) {
	if o.tracker != nil {
		o.tracker.cancel()
		o.tracker = nil
	}
	o.dismiss()
}

func (o *exitOverlay) applyOffset(offset float32) {
	o.handle.Move(fyne.NewPos(o.handleRestPos().X, o.handleRestPos().Y-offset))
	o.handle.Refresh()
}

func (o *exitOverlay) handleRestPos() fyne.Position {
	size := o.Size()
	return fyne.NewPos((size.Width-handleDiameter)/2, size.Height-handleDiameter-handleMargin)
}

func (o *exitOverlay) CreateRenderer() fyne.WidgetRenderer {
	return &exitOverlayRenderer{o: o}
}

var (
	_ fyne.Draggable = (*exitOverlay)(nil)
	_ fyne.Tappable  = (*exitOverlay)(nil)
)

type exitOverlayRenderer struct {
	o *exitOverlay
}

func (r *exitOverlayRenderer) Layout(size fyne.Size) {
	r.o.scrim.Resize(size)

	r.o.label.Resize(fyne.NewSize(size.Width, r.o.label.MinSize().Height))
	r.o.label.Move(fyne.NewPos(0, handleMargin))

	rest := r.o.handleRestPos()
	r.o.handle.Resize(fyne.NewSquareSize(handleDiameter))
	r.o.handle.Move(rest)

	track := rest.Y - handleMargin
	if track < 0 {
		track = 0
	}
	r.o.track = track
}

func (r *exitOverlayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(handleDiameter+2*handleMargin, handleDiameter+2*handleMargin)
}

func (r *exitOverlayRenderer) Refresh() {
	r.o.scrim.Refresh()
	r.o.handle.Refresh()
	r.o.label.Refresh()
}

func (r *exitOverlayRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.o.scrim, r.o.label, r.o.handle}
}

func (r *exitOverlayRenderer) Destroy() {}
