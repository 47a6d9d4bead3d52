package catalog

import (
	"fmt"
	"strconv"

	"github.com/zoocast/catalog-api/internal/models"
)

// Validate checks that a decoded catalog satisfies the schema the server
// promises: both partitions present, year and month keys agreeing with the
// nested values, no empty buckets, and every episode consistent with the
// bucket that holds it. It is the defensive check run once at the client's
// network boundary.
func Validate(c *models.Catalog) error {
	if c == nil {
		return NewValidationError("catalog", "missing value")
	}
	if c.Audio == nil {
		return NewValidationError("audio", "missing partition")
	}
	if c.Video == nil {
		return NewValidationError("video", "missing partition")
	}

	for _, mediaType := range ListTypes() {
		if err := validatePartition(string(mediaType), c.Partition(mediaType), mediaType); err != nil {
			return err
		}
	}

	return nil
}

func validatePartition(field string, partition map[string]models.YearCatalog, mediaType models.MediaType) error {
	for yearKey, yc := range partition {
		yearField := fmt.Sprintf("%s[%s]", field, yearKey)

		year, err := strconv.Atoi(yearKey)
		if err != nil {
			return NewValidationError(yearField, "year key is not numeric")
		}
		if yc.Year != year {
			return NewValidationError(yearField, fmt.Sprintf("year %d does not match key", yc.Year))
		}
		if len(yc.Months) == 0 {
			return NewValidationError(yearField, "year has no months")
		}

		for monthKey, mc := range yc.Months {
			monthField := fmt.Sprintf("%s.months[%s]", yearField, monthKey)

			month, err := strconv.Atoi(monthKey)
			if err != nil {
				return NewValidationError(monthField, "month key is not numeric")
			}
			if month < 1 || month > 12 {
				return NewValidationError(monthField, "month key out of range")
			}
			if mc.Month != month {
				return NewValidationError(monthField, fmt.Sprintf("month %d does not match key", mc.Month))
			}
			if len(mc.Episodes) == 0 {
				return NewValidationError(monthField, "empty bucket")
			}

			for i, ep := range mc.Episodes {
				episodeField := fmt.Sprintf("%s.episodes[%d]", monthField, i)

				if ep.ID == "" {
					return NewValidationError(episodeField, "missing id")
				}
				if ep.URL == "" {
					return NewValidationError(episodeField, "missing url")
				}
				if ep.Type != mediaType {
					return NewValidationError(episodeField, fmt.Sprintf("type %q in %s partition", ep.Type, mediaType))
				}
				if ep.Year != year || ep.Month != month {
					return NewValidationError(episodeField, "episode date does not match bucket")
				}
			}
		}
	}

	return nil
}
