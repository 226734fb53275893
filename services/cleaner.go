package services

import (
	"regexp"
	"strings"

	"autoria-scraper/models"
	"autoria-scraper/utils"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// DataCleaner normalizes whitespace in scraped records
type DataCleaner struct {
	logger utils.Reporter
}

// NewDataCleaner creates a new DataCleaner
func NewDataCleaner(logger utils.Reporter) *DataCleaner {
	return &DataCleaner{logger: logger}
}

// Clean trims every field and collapses whitespace runs in title and description.
// The phone text is only trimmed. Records are never dropped or reordered.
func (c *DataCleaner) Clean(records []models.ListingRecord) []models.ListingRecord {
	cleaned := make([]models.ListingRecord, len(records))
	for i, r := range records {
		cleaned[i] = models.ListingRecord{
			Title:       collapseSpaces(r.Title),
			PhoneNumber: strings.TrimSpace(r.PhoneNumber),
			Description: collapseSpaces(r.Description),
		}
	}

	c.logger.Info("Cleaned %d records", len(cleaned))
	return cleaned
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
