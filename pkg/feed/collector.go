// Package feed fetches configured RSS/Atom sources and normalizes their
// entries into articles. Each source is fetched independently: one source
// failing never aborts the others.
package feed

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsbreeze/pkg/config"
	"github.com/umputun/newsbreeze/pkg/domain"
	"github.com/umputun/newsbreeze/pkg/fingerprint"
)

// Collector fetches and normalizes articles from configured sources
type Collector struct {
	cfg       config.NewsConfig
	client    *http.Client
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

// NewCollector creates a collector for the configured sources. Zero-valued
// limits fall back to sane defaults, a zero worker limit would block every
// fetch forever.
func NewCollector(cfg config.NewsConfig) *Collector {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 5
	}
	if cfg.PerSourceLimit <= 0 {
		cfg.PerSourceLimit = 20
	}
	if cfg.MaxArticles <= 0 {
		cfg.MaxArticles = 50
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "NewsBreeze/1.0 (News Aggregator)"
	}
	return &Collector{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		sanitizer: bluemonday.StrictPolicy(),
		now:       time.Now,
	}
}

// Fetch retrieves articles from the selected sources, newest first. Sources
// restricts to a named subset of the configured feeds; category filters
// sources by their configured category. Per-source failures are logged and
// skipped; an error is returned only when every selected source failed.
func (c *Collector) Fetch(ctx context.Context, sources []string, category string) ([]domain.Article, error) {
	selected := c.selectSources(sources, category)
	if len(selected) == 0 {
		return []domain.Article{}, nil
	}

	var (
		mu       sync.Mutex
		articles []domain.Article
		failed   int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.MaxWorkers)

	for name, src := range selected {
		g.Go(func() error {
			fetched, err := c.fetchSource(ctx, name, src)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				lgr.Printf("[WARN] failed to fetch source %s: %v", name, err)
				failed++
				return nil
			}
			articles = append(articles, fetched...)
			return nil
		})
	}
	_ = g.Wait() // per-source errors never propagate

	if failed == len(selected) {
		return nil, fmt.Errorf("all %d sources failed", failed)
	}

	// newest first
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})

	if len(articles) > c.cfg.MaxArticles {
		articles = articles[:c.cfg.MaxArticles]
	}
	return articles, nil
}

// Sources returns the configured source catalog, sorted by name
func (c *Collector) Sources() []domain.SourceInfo {
	infos := make([]domain.SourceInfo, 0, len(c.cfg.Sources))
	for name, src := range c.cfg.Sources {
		infos = append(infos, domain.SourceInfo{
			Name:        name,
			DisplayName: displayName(name, src),
			Category:    categoryOrDefault(src),
			Description: src.Description,
			URL:         src.URL,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// TestSource probes a single source feed and reports its state
func (c *Collector) TestSource(ctx context.Context, name string) domain.SourceStatus {
	src, ok := c.cfg.Sources[name]
	if !ok {
		return domain.SourceStatus{Success: false, Error: "source not found"}
	}

	feed, err := c.parse(ctx, src.URL)
	if err != nil {
		return domain.SourceStatus{Success: false, Error: err.Error()}
	}

	return domain.SourceStatus{
		Success:      true,
		ArticleCount: len(feed.Items),
		FeedTitle:    feed.Title,
		LastUpdated:  feed.Updated,
	}
}

// selectSources narrows the configured catalog to the requested subset and
// category
func (c *Collector) selectSources(sources []string, category string) map[string]config.Source {
	selected := make(map[string]config.Source)
	for name, src := range c.cfg.Sources {
		if len(sources) > 0 && !contains(sources, name) {
			continue
		}
		if category != "" && categoryOrDefault(src) != category {
			continue
		}
		selected[name] = src
	}
	return selected
}

// fetchSource retrieves and normalizes entries from a single feed,
// retrying transient failures with backoff
func (c *Collector) fetchSource(ctx context.Context, name string, src config.Source) ([]domain.Article, error) {
	var feed *gofeed.Feed
	retrier := repeater.NewBackoff(3, 500*time.Millisecond, repeater.WithMaxDelay(3*time.Second))
	err := retrier.Do(ctx, func() error {
		var perr error
		feed, perr = c.parse(ctx, src.URL)
		return perr
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", src.URL, err)
	}

	items := feed.Items
	if len(items) > c.cfg.PerSourceLimit {
		items = items[:c.cfg.PerSourceLimit]
	}

	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		if article, ok := c.normalize(item, name, src); ok {
			articles = append(articles, article)
		}
	}

	lgr.Printf("[DEBUG] fetched %d articles from %s", len(articles), name)
	return articles, nil
}

// parse fetches a feed URL and parses the body
func (c *Collector) parse(ctx context.Context, url string) (*gofeed.Feed, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return feed, nil
}

// normalize converts a raw feed entry into an Article. Entries with
// descriptions shorter than the configured word count are discarded.
func (c *Collector) normalize(item *gofeed.Item, name string, src config.Source) (domain.Article, bool) {
	description := item.Description
	if description == "" {
		description = item.Content
	}
	clean := c.stripHTML(description)

	wordCount := len(strings.Fields(clean))
	if wordCount < c.cfg.MinWordCount {
		return domain.Article{}, false
	}

	published := c.now()
	if item.PublishedParsed != nil {
		published = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		published = *item.UpdatedParsed
	}

	author := defaultAuthor(name, src)
	if item.Author != nil && item.Author.Name != "" {
		author = item.Author.Name
	}

	return domain.Article{
		ID:            fingerprint.ArticleID(item.Link, item.Title),
		Title:         strings.TrimSpace(item.Title),
		Link:          item.Link,
		Description:   clean,
		Source:        name,
		SourceDisplay: displayName(name, src),
		Author:        author,
		PublishedAt:   published,
		Category:      categoryOrDefault(src),
		Tags:          item.Categories,
		ImageURL:      extractImageURL(item),
		WordCount:     wordCount,
	}, true
}

// stripHTML removes markup from a description and collapses whitespace.
// The sanitizer escapes entities in the remaining text, so the result is
// unescaped back to plain text.
func (c *Collector) stripHTML(s string) string {
	clean := html.UnescapeString(c.sanitizer.Sanitize(s))
	return strings.Join(strings.Fields(clean), " ")
}

var imgSrcRe = regexp.MustCompile(`<img[^>]+src="([^"]+)"`)

// extractImageURL looks for an article image in the usual feed locations
func extractImageURL(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}

	for _, enc := range item.Enclosures {
		if strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}

	// media:content extension used by many news feeds
	if media, ok := item.Extensions["media"]; ok {
		for _, ext := range media["content"] {
			if url, ok := ext.Attrs["url"]; ok && url != "" {
				return url
			}
		}
	}

	if m := imgSrcRe.FindStringSubmatch(item.Description); m != nil {
		return m[1]
	}
	return ""
}

func displayName(name string, src config.Source) string {
	if src.DisplayName != "" {
		return src.DisplayName
	}
	return name
}

func categoryOrDefault(src config.Source) string {
	if src.Category != "" {
		return src.Category
	}
	return "General"
}

func defaultAuthor(name string, src config.Source) string {
	if src.DefaultAuthor != "" {
		return src.DefaultAuthor
	}
	return name
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
