package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	apiURL    = "https://commons.wikimedia.org/w/api.php"
	userAgent = "kidgallery-scrape/1.0 (asset curation tool)"

	// Commons caps categorymembers batches; imageinfo accepts up to 50
	// titles per request.
	pageBatch  = 50
	maxDepth   = 3
	apiTimeout = 30 * time.Second
)

type commonsClient struct {
	http  *http.Client
	delay time.Duration
}

func newCommonsClient(delay time.Duration) *commonsClient {
	return &commonsClient{
		http:  &http.Client{Timeout: apiTimeout},
		delay: delay,
	}
}

type member struct {
	Title string `json:"title"`
}

type categoryMembersResponse struct {
	Continue struct {
		Cmcontinue string `json:"cmcontinue"`
	} `json:"continue"`
	Query struct {
		Categorymembers []member `json:"categorymembers"`
	} `json:"query"`
}

type metaValue struct {
	Value string `json:"value"`
}

type imageInfo struct {
	URL         string               `json:"url"`
	Width       int                  `json:"width"`
	Height      int                  `json:"height"`
	Extmetadata map[string]metaValue `json:"extmetadata"`
}

func (i imageInfo) license() string { return strings.TrimSpace(i.Extmetadata["LicenseShortName"].Value) }
func (i imageInfo) artist() string  { return strings.TrimSpace(i.Extmetadata["Artist"].Value) }
func (i imageInfo) credit() string  { return strings.TrimSpace(i.Extmetadata["Credit"].Value) }

type imageInfoResponse struct {
	Query struct {
		Pages map[string]struct {
			Title     string      `json:"title"`
			Imageinfo []imageInfo `json:"imageinfo"`
		} `json:"pages"`
	} `json:"query"`
}

func (c *commonsClient) get(params url.Values, out any) error {
	req, err := http.NewRequest(http.MethodGet, apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("commons api: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// categoryFiles walks category (and its subcategories, bounded by
// maxDepth) and returns up to limit File: titles.
func (c *commonsClient) categoryFiles(category string, limit int) ([]string, error) {
	var files []string
	visited := make(map[string]bool)

	var walk func(cat string, depth int) error
	walk = func(cat string, depth int) error {
		if depth > maxDepth || len(files) >= limit || visited[cat] {
			return nil
		}
		visited[cat] = true

		cont := ""
		for len(files) < limit {
			batch := limit - len(files)
			if batch > pageBatch {
				batch = pageBatch
			}
			params := url.Values{
				"action":  {"query"},
				"list":    {"categorymembers"},
				"cmtitle": {cat},
				"cmtype":  {"file|subcat"},
				"cmlimit": {strconv.Itoa(batch)},
				"format":  {"json"},
			}
			if cont != "" {
				params.Set("cmcontinue", cont)
			}

			var resp categoryMembersResponse
			if err := c.get(params, &resp); err != nil {
				return err
			}
			for _, m := range resp.Query.Categorymembers {
				switch {
				case strings.HasPrefix(m.Title, "File:"):
					files = append(files, m.Title)
					if len(files) >= limit {
						return nil
					}
				case strings.HasPrefix(m.Title, "Category:"):
					if err := walk(m.Title, depth+1); err != nil {
						return err
					}
					if len(files) >= limit {
						return nil
					}
				}
			}
			cont = resp.Continue.Cmcontinue
			if cont == "" {
				break
			}
			time.Sleep(c.delay)
		}
		return nil
	}

	if err := walk(category, 0); err != nil {
		return nil, err
	}
	return files, nil
}

// imageInfos fetches url, size and attribution metadata for the titles,
// batched per the API limit.
func (c *commonsClient) imageInfos(titles []string) (map[string]imageInfo, error) {
	infos := make(map[string]imageInfo, len(titles))
	for start := 0; start < len(titles); start += pageBatch {
		end := start + pageBatch
		if end > len(titles) {
			end = len(titles)
		}
		params := url.Values{
			"action": {"query"},
			"prop":   {"imageinfo"},
			"titles": {strings.Join(titles[start:end], "|")},
			"iiprop": {"url|extmetadata|size"},
			"format": {"json"},
		}

		var resp imageInfoResponse
		if err := c.get(params, &resp); err != nil {
			return nil, err
		}
		for _, page := range resp.Query.Pages {
			if page.Title != "" && len(page.Imageinfo) > 0 {
				infos[page.Title] = page.Imageinfo[0]
			}
		}
		time.Sleep(c.delay)
	}
	return infos, nil
}

func (c *commonsClient) download(srcURL, dest string) error {
	req, err := http.NewRequest(http.MethodGet, srcURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: %s", srcURL, resp.Status)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
