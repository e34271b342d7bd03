package gallery

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"kidgallery/internal/assets"
	"kidgallery/internal/imaging"
)

const (
	// pagerMaxDim bounds the decoded size of a fullscreen page.
	pagerMaxDim = 1600
	// minSwipe is the smallest horizontal travel accepted as a page swipe.
	minSwipe = 60
)

// pager is the fullscreen swipeable image view. It decodes the current
// page synchronously on bind; the decoder bounds the output to
// pagerMaxDim so the bind stays cheap.
type pager struct {
	widget.BaseWidget

	ctrl Controller
	col  *assets.Collection

	image *canvas.Image
	empty *widget.Label

	index    int
	dragX    float32
	dragging bool
}

func newPager(col *assets.Collection, ctrl Controller) *pager {
	p := &pager{col: col, ctrl: ctrl, index: -1}
	p.image = canvas.NewImageFromImage(nil)
	p.image.FillMode = canvas.ImageFillContain
	p.empty = widget.NewLabel("No pictures yet")
	p.empty.Alignment = fyne.TextAlignCenter
	if col.Len() > 0 {
		p.empty.Hide()
	}
	p.ExtendBaseWidget(p)
	return p
}

// setIndex shows page i. Out-of-range indexes are ignored; a decode
// failure shows the placeholder instead of the image.
func (p *pager) setIndex(i int) {
	u := p.col.At(i)
	if u == nil {
		return
	}
	p.index = i

	if img := imaging.LoadScaled(u.Path(), pagerMaxDim); img != nil {
		p.image.Resource = nil
		p.image.Image = img
	} else {
		p.image.Image = nil
		p.image.Resource = theme.BrokenImageIcon()
	}
	p.image.Refresh()
}

func (p *pager) Dragged(e *fyne.DragEvent) {
	p.dragging = true
	p.dragX += e.Dragged.DX
}

func (p *pager) DragEnd() {
	if !p.dragging {
		return
	}
	dx := p.dragX
	p.dragging = false
	p.dragX = 0

	threshold := p.Size().Width / 4
	if threshold < minSwipe {
		threshold = minSwipe
	}
	switch {
	case dx <= -threshold:
		p.ctrl.Select(p.index + 1)
	case dx >= threshold:
		p.ctrl.Select(p.index - 1)
	}
}

// TappedSecondary is the adult affordance: a long press on mobile, a
// right click on desktop, reveals the exit overlay.
func (p *pager) TappedSecondary(*fyne.PointEvent) {
	p.ctrl.RevealExit()
}

func (p *pager) CreateRenderer() fyne.WidgetRenderer {
	return &pagerRenderer{p: p}
}

var (
	_ fyne.Draggable         = (*pager)(nil)
	_ fyne.SecondaryTappable = (*pager)(nil)
)

type pagerRenderer struct {
	p *pager
}

func (r *pagerRenderer) Layout(size fyne.Size) {
	r.p.image.Resize(size)

	labelSize := r.p.empty.MinSize()
	r.p.empty.Resize(labelSize)
	r.p.empty.Move(fyne.NewPos((size.Width-labelSize.Width)/2, (size.Height-labelSize.Height)/2))
}

func (r *pagerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(240, 240)
}

func (r *pagerRenderer) Refresh() {
	r.p.image.Refresh()
	r.p.empty.Refresh()
}

func (r *pagerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.p.image, r.p.empty}
}

func (r *pagerRenderer) Destroy() {}
