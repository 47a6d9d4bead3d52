package catalog

import (
	"sort"
	"strconv"

	"github.com/zoocast/catalog-api/internal/models"
)

// Read-only projections over a Catalog value. The stored maps carry no
// order, so every listing sorts explicitly; the presentation shell must
// never iterate the maps directly.

// ListTypes returns the fixed set of media types.
func ListTypes() []models.MediaType {
	return []models.MediaType{models.MediaTypeAudio, models.MediaTypeVideo}
}

// ListYears returns the years present for a type, newest first.
func ListYears(c *models.Catalog, t models.MediaType) []int {
	partition := c.Partition(t)

	years := make([]int, 0, len(partition))
	for key := range partition {
		year, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		years = append(years, year)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// ListMonths returns the month buckets of a year, ascending by month
// number. The second return value is false when the year is absent.
func ListMonths(c *models.Catalog, t models.MediaType, year int) ([]models.MonthCatalog, bool) {
	yc, ok := c.Partition(t)[strconv.Itoa(year)]
	if !ok {
		return nil, false
	}

	months := make([]models.MonthCatalog, 0, len(yc.Months))
	for _, mc := range yc.Months {
		months = append(months, mc)
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})

	return months, true
}

// ListEpisodes returns the episodes of one bucket in stored (builder input)
// order. The second return value is false when the bucket is absent; an
// empty bucket is never synthesized.
func ListEpisodes(c *models.Catalog, t models.MediaType, year, month int) ([]models.Episode, bool) {
	yc, ok := c.Partition(t)[strconv.Itoa(year)]
	if !ok {
		return nil, false
	}

	mc, ok := yc.Months[strconv.Itoa(month)]
	if !ok {
		return nil, false
	}

	return mc.Episodes, true
}
