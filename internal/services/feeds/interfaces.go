package feeds

import (
	"context"
	"io"

	"github.com/mmcdole/gofeed"
)

// ItemFetcher defines the interface for retrieving the raw items of the
// configured feed. Either the full item sequence is returned or an error;
// no partial results.
type ItemFetcher interface {
	Fetch(ctx context.Context) ([]RawItem, error)
}

// FeedParser abstracts the syndication parser so tests can stub it.
type FeedParser interface {
	Parse(r io.Reader) (*gofeed.Feed, error)
}
