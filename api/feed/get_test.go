package feed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoocast/catalog-api/api/types"
	"github.com/zoocast/catalog-api/internal/models"
	"github.com/zoocast/catalog-api/internal/services/catalog"
	"github.com/zoocast/catalog-api/internal/services/feeds"
)

type stubFetcher struct {
	items []feeds.RawItem
	err   error
}

func (s *stubFetcher) Fetch(ctx context.Context) ([]feeds.RawItem, error) {
	return s.items, s.err
}

func newEngine(deps *types.Dependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	RegisterRoutes(engine.Group("/api"), deps)
	return engine
}

func TestGetCatalog(t *testing.T) {
	items := []feeds.RawItem{
		{
			GUID:          "a1",
			Title:         "Gennaio cinque",
			PubDate:       "Fri, 05 Jan 2024 08:00:00 +0100",
			EnclosureURL:  "https://cdn.example.com/a1.mp3",
			EnclosureType: "audio/mpeg",
		},
		{
			GUID:          "a2",
			Title:         "Gennaio venti",
			PubDate:       "Sat, 20 Jan 2024 08:00:00 +0100",
			EnclosureURL:  "https://cdn.example.com/a2.mp3",
			EnclosureType: "audio/mpeg",
		},
		{
			GUID:          "v1",
			Title:         "Dicembre video",
			PubDate:       "Fri, 01 Dec 2023 08:00:00 +0100",
			EnclosureURL:  "https://cdn.example.com/v1.mp4",
			EnclosureType: "video/mp4",
		},
	}

	deps := &types.Dependencies{
		Fetcher: &stubFetcher{items: items},
		Builder: catalog.NewBuilder(),
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
	newEngine(deps).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.Catalog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.NoError(t, catalog.Validate(&got))

	assert.Equal(t, []int{2024}, catalog.ListYears(&got, models.MediaTypeAudio))
	assert.Equal(t, []int{2023}, catalog.ListYears(&got, models.MediaTypeVideo))

	months, ok := catalog.ListMonths(&got, models.MediaTypeAudio, 2024)
	require.True(t, ok)
	require.Len(t, months, 1)
	assert.Len(t, months[0].Episodes, 2)
}

func TestGetCatalogFetchFails(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "transport failure", err: feeds.FetchError{URL: "https://example.com/feed.xml", Cause: errors.New("timeout")}},
		{name: "malformed feed", err: feeds.ParseError{URL: "https://example.com/feed.xml", Cause: errors.New("bad xml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := &types.Dependencies{
				Fetcher: &stubFetcher{err: tt.err},
				Builder: catalog.NewBuilder(),
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
			newEngine(deps).ServeHTTP(w, req)

			assert.Equal(t, http.StatusInternalServerError, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Failed to fetch feed", body["message"])
		})
	}
}
