// Command galleryprep prepares a folder of images for bundling: it caps
// every image to a maximum dimension, recompresses to JPEG, and can prune
// the set so no single subject dominates the gallery. Runs offline; the
// app only ever sees the resulting files.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	_ "image/png"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"

	"kidgallery/internal/assets"
)

func main() {
	var (
		dir           = flag.String("dir", "", "directory of images to prepare (required)")
		out           = flag.String("out", "", "output directory (default: in place)")
		maxDim        = flag.Int("max-dim", 1600, "cap the longest side to this many pixels")
		quality       = flag.Int("quality", 85, "JPEG quality")
		limit         = flag.Int("limit", 0, "keep at most this many images (0 = no cap)")
		maxPerSubject = flag.Int("max-per-subject", 0, "keep at most this many images per subject keyword (0 = no cap)")
		subjects      = flag.String("subjects", "", "comma-separated keywords preferred as subject keys (e.g. animal names)")
		prune         = flag.Bool("prune", false, "delete source files that were not selected")
	)
	flag.Parse()

	if *dir == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *out == "" {
		*out = *dir
	}

	if err := run(*dir, *out, *maxDim, *quality, *limit, *maxPerSubject, *prune, subjectSet(*subjects)); err != nil {
		log.Fatal(err)
	}
}

func run(dir, out string, maxDim, quality, limit, maxPerSubject int, prune bool, subjects map[string]bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && assets.Supported(e.Name()) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	selected := selectDiverse(files, limit, maxPerSubject, subjects)
	keep := make(map[string]bool, len(selected))
	for _, f := range selected {
		keep[f] = true
	}

	processed := 0
	for _, name := range files {
		src := filepath.Join(dir, name)
		if !keep[name] {
			if prune {
				if err := os.Remove(src); err != nil {
					log.Printf("prune %s: %v", name, err)
				}
			}
			continue
		}

		dest := filepath.Join(out, jpegName(name))
		if err := optimizeFile(src, dest, maxDim, quality); err != nil {
			log.Printf("skip %s: %v", name, err)
			continue
		}
		if prune && dest != src {
			_ = os.Remove(src)
		}
		processed++
	}

	log.Printf("prepared %d of %d images into %s", processed, len(files), out)
	return nil
}

func jpegName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
}

// optimizeFile re-encodes src as a JPEG whose longest side is at most
// maxDim, written to dest.
func optimizeFile(src, dest string, maxDim, quality int) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	img = capDimension(img, maxDim)

	outFile, err := os.Create(dest)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(outFile, img, &jpeg.Options{Quality: quality}); err != nil {
		outFile.Close()
		return fmt.Errorf("encode: %w", err)
	}
	return outFile.Close()
}

// capDimension scales img down so its longest side is at most maxDim,
// preserving the aspect ratio. Smaller images pass through untouched.
func capDimension(img image.Image, maxDim int) image.Image {
	if maxDim <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= maxDim && b.Dy() <= maxDim {
		return img
	}
	if b.Dx() >= b.Dy() {
		return resize.Resize(uint(maxDim), 0, img, resize.Lanczos3)
	}
	return resize.Resize(0, uint(maxDim), img, resize.Lanczos3)
}

// Subject diversity: cap how many files share a subject keyword so a
// scrape of two hundred lion pictures does not become a lion gallery.

var tokenSplit = regexp.MustCompile(`[^a-zA-Z]+`)

var stopwords = map[string]bool{
	"the": true, "and": true, "of": true, "in": true, "on": true,
	"with": true, "at": true, "near": true, "male": true, "female": true,
	"adult": true, "juvenile": true, "young": true, "baby": true,
	"closeup": true, "close": true, "up": true, "head": true,
	"portrait": true, "nature": true, "wildlife": true, "national": true,
	"park": true, "reserve": true, "forest": true, "zoo": true,
	"photo": true, "photograph": true, "picture": true, "image": true,
	"edit": true, "cropped": true, "crop": true, "version": true,
	"copy": true, "final": true,
	"jpg": true, "jpeg": true, "png": true, "webp": true, "gif": true,
}

// subjectSet parses a comma-separated keyword list into a lowercase set.
func subjectSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			set[part] = true
		}
	}
	return set
}

// subjectKey derives a grouping key from a filename. A token from the
// preferred set wins wherever it appears ("Serengeti_lion" groups under
// "lion", not "serengeti"); otherwise the first non-stopword token is
// used, falling back to the whole base name.
func subjectKey(name string, preferred map[string]bool) string {
	base := strings.ToLower(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))
	first := ""
	for _, tok := range tokenSplit.Split(base, -1) {
		if tok == "" || stopwords[tok] {
			continue
		}
		if preferred[tok] {
			return tok
		}
		if first == "" {
			first = tok
		}
	}
	if first != "" {
		return first
	}
	return base
}

// selectDiverse walks files in order and keeps at most maxPerSubject per
// subject key and at most limit overall. Zero disables either cap.
func selectDiverse(files []string, limit, maxPerSubject int, subjects map[string]bool) []string {
	if limit <= 0 && maxPerSubject <= 0 {
		return files
	}

	perKey := make(map[string]int)
	var selected []string
	for _, f := range files {
		if limit > 0 && len(selected) >= limit {
			break
		}
		key := subjectKey(f, subjects)
		if maxPerSubject > 0 && perKey[key] >= maxPerSubject {
			continue
		}
		perKey[key]++
		selected = append(selected, f)
	}
	return selected
}
