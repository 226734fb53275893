package storage

import "autoria-scraper/models"

// RecordSink persists the records of one finished run
type RecordSink interface {
	Save(run models.Run, records []models.ListingRecord) error
}
