package types

import (
	"github.com/zoocast/catalog-api/internal/services/catalog"
	"github.com/zoocast/catalog-api/internal/services/feeds"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Fetcher feeds.ItemFetcher
	Builder *catalog.Builder
}
