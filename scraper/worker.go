package scraper

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// Config holds scraper worker configuration.
type Config struct {
	IndexURL     string        // Patch notes index page
	RequestDelay time.Duration // Delay between HTTP requests to be polite
	MaxPatches   int           // Maximum patches to return (0 = unlimited)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		IndexURL:     "https://www.leagueoflegends.com/en-us/news/tags/patch-notes/",
		RequestDelay: 500 * time.Millisecond,
		MaxPatches:   20,
	}
}

// Worker fetches the patch notes index and extracts patch versions.
type Worker struct {
	config Config
	client *http.Client
	logger zerolog.Logger
}

func NewWorker(config Config, logger zerolog.Logger) *Worker {
	return &Worker{
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

// FetchPatches downloads the index page and returns the patches it links,
// newest first.
func (w *Worker) FetchPatches() ([]Patch, error) {
	w.logger.Info().Str("url", w.config.IndexURL).Msg("fetching patch index")

	req, err := http.NewRequest(http.MethodGet, w.config.IndexURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "RiftScraper/1.0 (patch-metadata-collector)")

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("patch index returned status %d", resp.StatusCode)
	}

	time.Sleep(w.config.RequestDelay)
	return w.parseIndex(resp.Body)
}

// parseIndex extracts patch note links from an index page body.
func (w *Worker) parseIndex(body io.Reader) ([]Patch, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse patch index: %w", err)
	}

	seen := make(map[int]bool)
	var patches []Patch
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		patch, ok := patchFromLink(href)
		if !ok || seen[patch.Ordinal()] {
			return
		}
		seen[patch.Ordinal()] = true
		patches = append(patches, patch)
	})

	sort.Slice(patches, func(i, j int) bool {
		return patches[j].Before(patches[i])
	})
	if w.config.MaxPatches > 0 && len(patches) > w.config.MaxPatches {
		patches = patches[:w.config.MaxPatches]
	}

	w.logger.Info().Int("patches", len(patches)).Msg("parsed patch index")
	return patches, nil
}
