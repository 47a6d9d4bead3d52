package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
  <channel>
    <title>Zoo Podcast</title>
    <item>
      <guid>ep-1</guid>
      <title>Prima puntata</title>
      <link>https://example.com/ep-1</link>
      <description>La prima puntata</description>
      <pubDate>Fri, 05 Jan 2024 08:00:00 +0100</pubDate>
      <enclosure url="https://cdn.example.com/ep-1.mp3" length="1000" type="audio/mpeg"/>
      <itunes:duration>45:00</itunes:duration>
      <itunes:image href="https://cdn.example.com/ep-1.jpg"/>
    </item>
    <item>
      <title>Puntata video</title>
      <pubDate>Sat, 20 Jan 2024 08:00:00 +0100</pubDate>
      <enclosure url="https://cdn.example.com/ep-2.mp4" length="2000" type="video/mp4"/>
    </item>
  </channel>
</rss>`

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "zoo-catalog/test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	fetcher := NewFetcher(server.URL, WithUserAgent("zoo-catalog/test"))

	items, err := fetcher.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "ep-1", first.GUID)
	assert.Equal(t, "Prima puntata", first.Title)
	assert.Equal(t, "https://example.com/ep-1", first.Link)
	assert.Equal(t, "Fri, 05 Jan 2024 08:00:00 +0100", first.PubDate)
	assert.Equal(t, "https://cdn.example.com/ep-1.mp3", first.EnclosureURL)
	assert.Equal(t, "audio/mpeg", first.EnclosureType)
	assert.Equal(t, "45:00", first.Duration)
	assert.Equal(t, "https://cdn.example.com/ep-1.jpg", first.Image)
	assert.True(t, first.HasEnclosure())

	second := items[1]
	assert.Empty(t, second.GUID)
	assert.Equal(t, "video/mp4", second.EnclosureType)
}

func TestFetchTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	fetcher := NewFetcher(server.URL)

	items, err := fetcher.Fetch(context.Background())
	assert.Nil(t, items)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestFetchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	fetcher := NewFetcher(server.URL)

	items, err := fetcher.Fetch(context.Background())
	assert.Nil(t, items)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestFetchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not a feed"))
	}))
	defer server.Close()

	fetcher := NewFetcher(server.URL)

	items, err := fetcher.Fetch(context.Background())
	assert.Nil(t, items)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.NotErrorIs(t, err, ErrFetch)
}
