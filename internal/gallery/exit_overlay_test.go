package gallery

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func shownOverlay(t *testing.T, onConfirm func()) (*exitOverlay, *fyne.Container) {
	t.Helper()
	test.NewApp()

	root := container.NewStack(widget.NewLabel("gallery"))
	root.Resize(fyne.NewSize(300, 400))

	o := newExitOverlay(onConfirm, nil)
	o.showIn(root)
	o.Resize(fyne.NewSize(300, 400))
	test.WidgetRenderer(o).Layout(o.Size())

	if o.track <= 0 {
		t.Fatalf("expected a positive track length, got %v", o.track)
	}
	return o, root
}

func overlayShown(root *fyne.Container, o *exitOverlay) bool {
	for _, obj := range root.Objects {
		if obj == o {
			return true
		}
	}
	return false
}

// dragUp simulates a press at the bottom of the overlay followed by an
// upward drag of dist, then a release.
func dragUp(o *exitOverlay, dist float32) {
	startY := o.Size().Height - 20
	half := dist / 2
	o.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(150, startY-half)},
		Dragged:    fyne.Delta{DY: -half},
	})
	o.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(150, startY-dist)},
		Dragged:    fyne.Delta{DY: -half},
	})
	o.DragEnd()
}

func TestExitOverlay_ShortDragCancelsAndRemoves(t *testing.T) {
	calls := 0
	o, root := shownOverlay(t, func() { calls++ })

	dragUp(o, 0.5*o.track)

	if calls != 0 {
		t.Errorf("callback fired on a cancelled gesture: %d", calls)
	}
	if overlayShown(root, o) {
		t.Error("overlay must remove itself after a cancelled gesture")
	}
}

func TestExitOverlay_FullDragConfirmsOnceAndRemoves(t *testing.T) {
	calls := 0
	o, root := shownOverlay(t, func() { calls++ })

	dragUp(o, 0.7*o.track)

	if calls != 1 {
		t.Errorf("expected exactly one confirmation, got %d", calls)
	}
	if overlayShown(root, o) {
		t.Error("overlay must remove itself after a confirmed gesture")
	}
}

func TestExitOverlay_OvershootClampsAndConfirms(t *testing.T) {
	calls := 0
	o, root := shownOverlay(t, func() { calls++ })

	dragUp(o, 1.5*o.track)

	if calls != 1 {
		t.Errorf("expected one confirmation after clamped overshoot, got %d", calls)
	}
	if overlayShown(root, o) {
		t.Error("overlay must remove itself")
	}
}

func TestExitOverlay_TapDismissesWithoutConfirm(t *testing.T) {
	calls := 0
	o, root := shownOverlay(t, func() { calls++ })

	o.Tapped(&fyne.PointEvent{Position: fyne.NewPos(10, 10)})

	if calls != 0 {
		t.Errorf("tap must not confirm, got %d calls", calls)
	}
	if overlayShown(root, o) {
		t.Error("tap must dismiss the overlay")
	}
}

func TestExitOverlay_DismissedCallbackFires(t *testing.T) {
	test.NewApp()
	root := container.NewStack(widget.NewLabel("gallery"))
	root.Resize(fyne.NewSize(300, 400))

	dismissed := 0
	o := newExitOverlay(nil, func() { dismissed++ })
	o.showIn(root)
	o.Resize(fyne.NewSize(300, 400))
	test.WidgetRenderer(o).Layout(o.Size())

	dragUp(o, 10)

	if dismissed != 1 {
		t.Errorf("expected one dismissed notification, got %d", dismissed)
	}
}
