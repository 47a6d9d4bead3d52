package feeds

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// Fetcher retrieves the configured feed over HTTP and normalizes its items.
type Fetcher struct {
	feedURL   string
	userAgent string
	client    *http.Client
	parser    FeedParser
}

// Ensure Fetcher implements ItemFetcher interface
var _ ItemFetcher = (*Fetcher)(nil)

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient overrides the HTTP client used to reach the feed source.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithParser overrides the syndication parser.
func WithParser(parser FeedParser) Option {
	return func(f *Fetcher) {
		f.parser = parser
	}
}

// WithUserAgent sets the User-Agent header sent to the feed source.
func WithUserAgent(userAgent string) Option {
	return func(f *Fetcher) {
		f.userAgent = userAgent
	}
}

// NewFetcher creates a fetcher for the given feed URL.
func NewFetcher(feedURL string, opts ...Option) *Fetcher {
	f := &Fetcher{
		feedURL: feedURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		parser: gofeed.NewParser(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch retrieves and parses the feed, returning its items in the feed's
// native order. Transport failures surface as FetchError, malformed bodies
// as ParseError; in both cases no items are returned.
func (f *Fetcher) Fetch(ctx context.Context) ([]RawItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.feedURL, nil)
	if err != nil {
		return nil, FetchError{URL: f.feedURL, Cause: err}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, FetchError{URL: f.feedURL, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, FetchError{
			URL:   f.feedURL,
			Cause: fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	feed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, ParseError{URL: f.feedURL, Cause: err}
	}

	items := make([]RawItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		items = append(items, normalizeItem(item))
	}

	return items, nil
}

// normalizeItem flattens a parsed feed entry into a RawItem. Only the first
// enclosure is considered (RSS 2.0 allows one per item).
func normalizeItem(item *gofeed.Item) RawItem {
	raw := RawItem{
		GUID:        item.GUID,
		Link:        item.Link,
		Title:       item.Title,
		Description: item.Description,
		Content:     item.Content,
		PubDate:     item.Published,
	}

	if len(item.Enclosures) > 0 && item.Enclosures[0] != nil {
		raw.EnclosureURL = item.Enclosures[0].URL
		raw.EnclosureType = item.Enclosures[0].Type
	}

	if item.ITunesExt != nil {
		raw.Duration = item.ITunesExt.Duration
		raw.Image = item.ITunesExt.Image
	}

	return raw
}
