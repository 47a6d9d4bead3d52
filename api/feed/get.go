package feed

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zoocast/catalog-api/api/types"
	apperrors "github.com/zoocast/catalog-api/pkg/errors"
	"github.com/zoocast/catalog-api/internal/services/feeds"
)

// Get returns the feed catalog
// @Summary      Get the podcast catalog
// @Description  Fetches the configured RSS feed and returns it grouped by media type, year and month
// @Tags         feed
// @Produce      json
// @Success      200  {object}  models.Catalog
// @Failure      500  {object}  map[string]string
// @Router       /api/feed [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := deps.Fetcher.Fetch(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] %v", classify(err))
			// The client gets a static message; fetch and parse failures
			// are indistinguishable on the wire and no partial catalog is
			// ever returned.
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch feed"})
			return
		}

		c.JSON(http.StatusOK, deps.Builder.Build(items))
	}
}

func classify(err error) *apperrors.AppError {
	var fetchErr feeds.FetchError
	if errors.As(err, &fetchErr) {
		return apperrors.FeedFetchError(fetchErr.URL, err)
	}
	var parseErr feeds.ParseError
	if errors.As(err, &parseErr) {
		return apperrors.FeedParseError(parseErr.URL, err)
	}
	return apperrors.Wrap(err, apperrors.ErrCodeInternal, "catalog build failed")
}
