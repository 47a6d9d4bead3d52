package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zoocast/catalog-api/internal/models"
	"github.com/zoocast/catalog-api/internal/services/feeds"
)

// DefaultMonthNames is the display table the app ships with. The feed this
// project was built around is Italian; the table is a configuration choice,
// see WithMonthNames.
var DefaultMonthNames = [12]string{
	"Gennaio", "Febbraio", "Marzo", "Aprile", "Maggio", "Giugno",
	"Luglio", "Agosto", "Settembre", "Ottobre", "Novembre", "Dicembre",
}

// pubDateLayouts are the publication date formats accepted from feeds.
// RFC 1123 variants first, since that is what RSS 2.0 mandates.
var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
}

// Builder converts raw feed items into the nested Catalog structure.
type Builder struct {
	monthNames [12]string
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithMonthNames overrides the localized month display names.
func WithMonthNames(names [12]string) BuilderOption {
	return func(b *Builder) {
		b.monthNames = names
	}
}

// NewBuilder creates a builder with the default (Italian) month names.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		monthNames: DefaultMonthNames,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build groups items into (type, year, month) buckets. Pure function: the
// same input yields the same structure and per-bucket order, modulo the
// random id fallback for items lacking both guid and link.
//
// An item is dropped, silently, when it misses the publication date or the
// enclosure, or when its date does not parse; everything else is retained,
// duplicates included. Buckets are created lazily, so empty buckets are
// never materialized.
func (b *Builder) Build(items []feeds.RawItem) *models.Catalog {
	catalog := &models.Catalog{
		Audio: make(map[string]models.YearCatalog),
		Video: make(map[string]models.YearCatalog),
	}

	for _, item := range items {
		if item.PubDate == "" || !item.HasEnclosure() {
			continue
		}

		pubDate, ok := parsePubDate(item.PubDate)
		if !ok {
			continue
		}

		year := pubDate.Year()
		month := int(pubDate.Month())
		monthName := b.monthNames[month-1]

		episode := models.Episode{
			ID:          episodeID(item),
			Title:       item.Title,
			Description: item.Description,
			PubDate:     item.PubDate,
			URL:         item.EnclosureURL,
			Type:        classify(item.EnclosureType),
			Duration:    item.Duration,
			Thumbnail:   item.Image,
			Year:        year,
			Month:       month,
			MonthName:   monthName,
		}

		if episode.Title == "" {
			episode.Title = "Senza titolo"
		}
		if episode.Description == "" {
			episode.Description = item.Content
		}

		insert(catalog.Partition(episode.Type), episode)
	}

	return catalog
}

// classify derives the media type from the enclosure's declared MIME type.
// Anything not starting with "video" counts as audio.
func classify(mimeType string) models.MediaType {
	if strings.HasPrefix(mimeType, "video") {
		return models.MediaTypeVideo
	}
	return models.MediaTypeAudio
}

// episodeID picks the guid, falling back to the link, falling back to a
// random token. The random fallback is not stable across rebuilds.
func episodeID(item feeds.RawItem) string {
	if item.GUID != "" {
		return item.GUID
	}
	if item.Link != "" {
		return item.Link
	}
	return uuid.NewString()
}

func parsePubDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// insert appends the episode to its bucket, creating the year and month
// levels on first use.
func insert(partition map[string]models.YearCatalog, episode models.Episode) {
	yearKey := strconv.Itoa(episode.Year)
	monthKey := strconv.Itoa(episode.Month)

	yc, ok := partition[yearKey]
	if !ok {
		yc = models.YearCatalog{
			Year:   episode.Year,
			Months: make(map[string]models.MonthCatalog),
		}
	}

	mc, ok := yc.Months[monthKey]
	if !ok {
		mc = models.MonthCatalog{
			Month:     episode.Month,
			MonthName: episode.MonthName,
		}
	}

	mc.Episodes = append(mc.Episodes, episode)
	yc.Months[monthKey] = mc
	partition[yearKey] = yc
}
