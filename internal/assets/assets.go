// Package assets enumerates the bundled image directory and exposes it as
// an immutable, ordered collection shared by the thumbnail strip and the
// fullscreen pager.
package assets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

var supportedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Supported reports whether the file name carries a recognized image
// extension. Matching is case-insensitive.
func Supported(name string) bool {
	return supportedExts[strings.ToLower(filepath.Ext(name))]
}

// Collection is the ordered set of gallery images. It is read-only after
// Scan; index i means the same image to every view that holds it.
type Collection struct {
	items []fyne.URI
}

// Scan lists dir once, keeps supported image files exactly once each and
// orders them lexicographically by filename. A missing or empty directory
// degrades to an empty collection; it is never an error.
func Scan(dir string) *Collection {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &Collection{}
	}

	seen := make(map[string]bool, len(entries))
	items := make([]fyne.URI, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !Supported(e.Name()) || seen[e.Name()] {
			continue
		}
		seen[e.Name()] = true
		items = append(items, storage.NewFileURI(filepath.Join(dir, e.Name())))
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Name() < items[j].Name()
	})
	return &Collection{items: items}
}

// Len returns the number of images in the collection.
func (c *Collection) Len() int {
	return len(c.items)
}

// At returns the image reference at index i, or nil when i is out of range.
func (c *Collection) At(i int) fyne.URI {
	if i < 0 || i >= len(c.items) {
		return nil
	}
	return c.items[i]
}

// URIs returns a copy of the ordered references.
func (c *Collection) URIs() []fyne.URI {
	out := make([]fyne.URI, len(c.items))
	copy(out, c.items)
	return out
}
