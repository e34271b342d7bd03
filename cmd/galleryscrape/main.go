// Command galleryscrape downloads Creative Commons images and their
// attribution metadata from Wikimedia Commons for bundling into the
// gallery assets. It runs entirely offline from the app; the running
// gallery reads only the image files it leaves behind, never the CSV.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (flags override it)")
		category   = flag.String("category", "", "Commons category, comma-separated for several")
		out        = flag.String("out", "", "output folder for images")
		limit      = flag.Int("limit", 0, "max number of images (0 = config value, or 50)")
		include    = flag.String("include", "", "comma-separated keywords to require")
		exclude    = flag.String("exclude", "", "comma-separated keywords to skip")
		excludeExt = flag.String("exclude-ext", ".svg", "comma-separated extensions to skip")
		minDim     = flag.Int("min-dim", 640, "skip images smaller than this on both sides")
	)
	flag.Parse()

	cfg, err := resolveConfig(*configPath, *category, *out, *limit, *include, *exclude, *excludeExt)
	if err != nil {
		log.Fatal(err)
	}
	if len(cfg.Categories) == 0 || cfg.Out == "" {
		log.Fatal("need at least one category and an output folder (flags or config)")
	}

	if err := run(cfg, *minDim); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *scrapeConfig, minDim int) error {
	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return err
	}
	metaPath := filepath.Join(filepath.Dir(filepath.Clean(cfg.Out)), "gallery_metadata.csv")

	client := newCommonsClient(200 * time.Millisecond)

	// Gather file titles from all categories, first come first kept.
	var titles []string
	seen := make(map[string]bool)
	for _, cat := range cfg.Categories {
		remaining := cfg.Limit - len(titles)
		if remaining <= 0 {
			break
		}
		found, err := client.categoryFiles(cat, remaining)
		if err != nil {
			return fmt.Errorf("listing %s: %w", cat, err)
		}
		for _, t := range found {
			if !seen[t] {
				seen[t] = true
				titles = append(titles, t)
			}
		}
	}
	if len(titles) == 0 {
		return fmt.Errorf("no images found for: %s", strings.Join(cfg.Categories, ", "))
	}

	infos, err := client.imageInfos(titles)
	if err != nil {
		return err
	}

	metaFile, err := os.Create(metaPath)
	if err != nil {
		return err
	}
	defer metaFile.Close()
	w := csv.NewWriter(metaFile)
	defer w.Flush()
	if err := w.Write([]string{"filename", "source_url", "license", "artist", "credit"}); err != nil {
		return err
	}

	filter := newKeywordFilter(cfg.Include, cfg.Exclude, cfg.ExcludeExt)

	downloaded := 0
	for _, title := range titles {
		info, ok := infos[title]
		if !ok || info.URL == "" {
			continue
		}
		if info.Width < minDim && info.Height < minDim {
			continue
		}
		base := sanitizeFilename(filepath.Base(info.URL))
		if !filter.keep(title, base) {
			continue
		}

		outPath := filepath.Join(cfg.Out, base)
		if err := client.download(info.URL, outPath); err != nil {
			log.Printf("failed %s: %v", info.URL, err)
			continue
		}
		if err := w.Write([]string{base, info.URL, info.license(), info.artist(), info.credit()}); err != nil {
			return err
		}
		downloaded++
		log.Printf("saved %s", base)
	}

	log.Printf("downloaded %d images to %s; metadata in %s", downloaded, cfg.Out, metaPath)
	return nil
}

var filenameRe = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

func sanitizeFilename(name string) string {
	return filenameRe.ReplaceAllString(strings.ReplaceAll(name, " ", "_"), "")
}

// keywordFilter keeps or skips a file based on its title and filename.
type keywordFilter struct {
	include    []string
	exclude    []string
	excludeExt []string
}

func newKeywordFilter(include, exclude, excludeExt []string) *keywordFilter {
	lower := func(in []string) []string {
		out := make([]string, 0, len(in))
		for _, s := range in {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return &keywordFilter{
		include:    lower(include),
		exclude:    lower(exclude),
		excludeExt: lower(excludeExt),
	}
}

func (f *keywordFilter) keep(title, base string) bool {
	baseL := strings.ToLower(base)
	for _, ext := range f.excludeExt {
		if strings.HasSuffix(baseL, ext) {
			return false
		}
	}

	haystack := strings.ToLower(title) + " " + baseL
	for _, k := range f.exclude {
		if strings.Contains(haystack, k) {
			return false
		}
	}
	if len(f.include) == 0 {
		return true
	}
	for _, k := range f.include {
		if strings.Contains(haystack, k) {
			return true
		}
	}
	return false
}
