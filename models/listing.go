package models

import (
	"time"

	"github.com/google/uuid"
)

// SearchCriteria holds the filters typed into the auto.ria search form, in form order
type SearchCriteria struct {
	TransportType string
	Brand         string
	Model         string
	Region        string
	YearFrom      string
	YearTo        string
	PriceFrom     string
	PriceTo       string
	Quantity      int // how many result rows to scrape
}

// ListingRecord is one scraped result row
type ListingRecord struct {
	Title       string
	PhoneNumber string // verbatim popup text
	Description string
}

// Run identifies a single scraper invocation
type Run struct {
	ID        string
	StartedAt time.Time
	Criteria  SearchCriteria
}

// NewRun stamps a fresh run for the given criteria
func NewRun(criteria SearchCriteria) Run {
	return Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Criteria:  criteria,
	}
}
