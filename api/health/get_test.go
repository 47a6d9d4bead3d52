package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoocast/catalog-api/api/types"
	"github.com/zoocast/catalog-api/internal/services/feeds"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		deps           *types.Dependencies
		expectedStatus string
	}{
		{
			name:           "configured",
			deps:           &types.Dependencies{Fetcher: feeds.NewFetcher("https://example.com/feed.xml")},
			expectedStatus: "ok",
		},
		{
			name:           "fetcher missing",
			deps:           &types.Dependencies{},
			expectedStatus: "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Get(tt.deps)(c)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, response["status"])
		})
	}
}
