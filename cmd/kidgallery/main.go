// Command kidgallery is a child-safe photo gallery: a thumbnail strip, a
// fullscreen swipeable pager and a best-effort kid lock. Adults leave by
// long-pressing the picture and dragging the handle all the way up.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"kidgallery/internal/assets"
	"kidgallery/internal/gallery"
	"kidgallery/internal/lock"
)

const assetsDirKey = "kidgallery:assetsDir"

func main() {
	dirFlag := flag.String("dir", "", "image directory (default: last used, then ./assets)")
	flag.Parse()

	a := app.NewWithID("io.github.kidgallery")
	w := a.NewWindow("Kid Gallery")

	dir := *dirFlag
	if dir == "" {
		dir = a.Preferences().StringWithFallback(assetsDirKey, defaultAssetsDir())
	}
	a.Preferences().SetString(assetsDirKey, dir)

	col := assets.Scan(dir)
	if col.Len() == 0 {
		log.Printf("no images found in %s", dir)
	}

	kidLock := lock.New(lock.ForWindow(w), func(msg string) {
		a.SendNotification(fyne.NewNotification("Kid Gallery", msg))
		log.Print(msg)
	})

	g := gallery.New(col, func() {
		kidLock.Release()
		a.Quit()
	})

	w.SetContent(g.Content())
	w.Resize(fyne.NewSize(1024, 700))

	kidLock.Engage()
	w.ShowAndRun()
}

func defaultAssetsDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "assets"
	}
	return filepath.Join(wd, "assets")
}
