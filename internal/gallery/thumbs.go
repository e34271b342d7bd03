package gallery

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"

	"kidgallery/internal/imaging"
)

const (
	thumbSize        = 128
	thumbWorkers     = 4
	maxPendingThumbs = 100
)

type thumbRequest struct {
	uri      fyne.URI
	callback func(*canvas.Image)
}

// thumbLoader decodes thumbnails off the UI thread. Requests are served
// LIFO so the rows currently on screen win while scrolling; results stay
// in a memory cache for the lifetime of the gallery. A decode failure is
// cached as the placeholder image, so a bad file is never retried.
type thumbLoader struct {
	cache    sync.Map // map[string]*canvas.Image
	requests []thumbRequest
	mu       sync.Mutex
	cond     *sync.Cond
	size     int
}

func newThumbLoader(size int) *thumbLoader {
	l := &thumbLoader{size: size}
	l.cond = sync.NewCond(&l.mu)
	for range thumbWorkers {
		go l.worker()
	}
	return l
}

// cached returns the thumbnail for path from the memory cache only.
func (l *thumbLoader) cached(path string) *canvas.Image {
	if v, ok := l.cache.Load(path); ok {
		return v.(*canvas.Image)
	}
	return nil
}

func (l *thumbLoader) load(uri fyne.URI, callback func(*canvas.Image)) {
	if uri == nil || uri.Scheme() != "file" {
		return
	}
	if img := l.cached(uri.Path()); img != nil {
		callback(img)
		return
	}

	l.mu.Lock()
	// Queue full: drop the oldest request, it is the least likely to
	// still be visible.
	if len(l.requests) >= maxPendingThumbs {
		l.requests = l.requests[1:]
	}
	l.requests = append(l.requests, thumbRequest{uri: uri, callback: callback})
	l.cond.Signal()
	l.mu.Unlock()
}

func (l *thumbLoader) worker() {
	for {
		l.mu.Lock()
		for len(l.requests) == 0 {
			l.cond.Wait()
		}
		last := len(l.requests) - 1
		req := l.requests[last]
		l.requests = l.requests[:last]
		l.mu.Unlock()

		path := req.uri.Path()
		if img := l.cached(path); img != nil {
			req.callback(img)
			continue
		}

		var out *canvas.Image
		if thumb := imaging.Letterbox(imaging.LoadScaled(path, l.size), l.size); thumb != nil {
			out = canvas.NewImageFromImage(thumb)
		} else {
			out = canvas.NewImageFromResource(theme.BrokenImageIcon())
		}
		out.FillMode = canvas.ImageFillContain

		l.cache.Store(path, out)
		req.callback(out)
	}
}
