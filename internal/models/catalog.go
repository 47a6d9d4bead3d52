package models

// MediaType partitions episodes by the kind of enclosure they carry.
type MediaType string

const (
	MediaTypeAudio MediaType = "audio"
	MediaTypeVideo MediaType = "video"
)

// Episode is one playable feed item. Values are built once per catalog
// build and never mutated afterwards.
type Episode struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PubDate     string    `json:"pubDate"`
	URL         string    `json:"url"`
	Type        MediaType `json:"type"`
	Duration    string    `json:"duration,omitempty"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	MonthName   string    `json:"monthName"`
}

// MonthCatalog groups the episodes of one (type, year, month) bucket.
// Episodes keep the feed's iteration order, which is not guaranteed to be
// chronological.
type MonthCatalog struct {
	Month     int       `json:"month"`
	MonthName string    `json:"monthName"`
	Episodes  []Episode `json:"episodes"`
}

// YearCatalog maps month numbers ("1".."12") to their buckets. Map order
// carries no meaning; callers sort explicitly.
type YearCatalog struct {
	Year   int                     `json:"year"`
	Months map[string]MonthCatalog `json:"months"`
}

// Catalog is the root structure served to the mini app. Years are keyed by
// their decimal string form. A bucket exists only when at least one episode
// maps into it.
type Catalog struct {
	Audio map[string]YearCatalog `json:"audio"`
	Video map[string]YearCatalog `json:"video"`
}

// Partition returns the year map that holds episodes of the given type.
func (c *Catalog) Partition(t MediaType) map[string]YearCatalog {
	if t == MediaTypeVideo {
		return c.Video
	}
	return c.Audio
}
