package gallery

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"kidgallery/internal/assets"
)

// thumbStrip is the vertically scrolling thumbnail list. Activating row i
// drives the pager to page i through the selection callback; the strip
// itself never mutates the collection.
type thumbStrip struct {
	list   *widget.List
	loader *thumbLoader
}

func newThumbStrip(col *assets.Collection, loader *thumbLoader, onSelect func(int)) *thumbStrip {
	s := &thumbStrip{loader: loader}
	s.list = widget.NewList(
		func() int { return col.Len() },
		func() fyne.CanvasObject { return newThumbItem(loader) },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			if u := col.At(id); u != nil {
				o.(*thumbItem).setURI(u)
			}
		},
	)
	s.list.OnSelected = func(id widget.ListItemID) {
		onSelect(id)
	}
	return s
}

// highlight marks row i selected and scrolls it into view. Re-selecting
// the already selected row is absorbed upstream, so no feedback loop.
func (s *thumbStrip) highlight(i int) {
	s.list.Select(i)
}

// thumbItem renders a single thumbnail row: a generic icon until the
// decoded thumbnail arrives from the loader.
type thumbItem struct {
	widget.BaseWidget

	icon      *widget.Icon
	thumbnail *canvas.Image
	loader    *thumbLoader

	currentPath string
	loadTimer   *time.Timer
}

func newThumbItem(loader *thumbLoader) *thumbItem {
	item := &thumbItem{
		icon:      widget.NewIcon(theme.FileImageIcon()),
		thumbnail: canvas.NewImageFromImage(nil),
		loader:    loader,
	}
	item.thumbnail.FillMode = canvas.ImageFillContain
	item.thumbnail.Hide()
	item.ExtendBaseWidget(item)
	return item
}

func (i *thumbItem) setURI(u fyne.URI) {
	if i.currentPath == u.Path() {
		return
	}
	i.currentPath = u.Path()

	i.icon.Show()
	i.thumbnail.Hide()
	i.thumbnail.Image = nil
	i.thumbnail.Refresh()

	if i.loadTimer != nil {
		i.loadTimer.Stop()
	}

	// Instant memory hit keeps scrolling smooth.
	if img := i.loader.cached(u.Path()); img != nil {
		i.show(img)
		return
	}

	// Defer the decode request briefly so rows flying past while the user
	// scrolls never reach the workers.
	i.loadTimer = time.AfterFunc(200*time.Millisecond, func() {
		i.loader.load(u, func(img *canvas.Image) {
			fyne.Do(func() {
				if i.currentPath != u.Path() || img == nil {
					return
				}
				i.show(img)
			})
		})
	})
}

func (i *thumbItem) show(img *canvas.Image) {
	i.thumbnail.Image = img.Image
	i.thumbnail.Resource = img.Resource
	i.thumbnail.Refresh()
	i.icon.Hide()
	i.thumbnail.Show()
}

func (i *thumbItem) CreateRenderer() fyne.WidgetRenderer {
	return &thumbItemRenderer{item: i}
}

type thumbItemRenderer struct {
	item *thumbItem
}

func (r *thumbItemRenderer) Layout(size fyne.Size) {
	inner := fyne.NewSquareSize(fyne.Min(size.Width, size.Height) - 2*theme.Padding())
	pos := fyne.NewPos((size.Width-inner.Width)/2, (size.Height-inner.Height)/2)

	r.item.icon.Resize(inner)
	r.item.icon.Move(pos)
	r.item.thumbnail.Resize(inner)
	r.item.thumbnail.Move(pos)
}

func (r *thumbItemRenderer) MinSize() fyne.Size {
	return fyne.NewSquareSize(thumbSize + 2*theme.Padding())
}

func (r *thumbItemRenderer) Refresh() {
	r.item.icon.Refresh()
	r.item.thumbnail.Refresh()
}

func (r *thumbItemRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.item.icon, r.item.thumbnail}
}

func (r *thumbItemRenderer) Destroy() {
	if r.item.loadTimer != nil {
		r.item.loadTimer.Stop()
	}
}
