package autoria

import (
	"context"
	"fmt"
	"time"

	"autoria-scraper/models"
	"autoria-scraper/utils"
)

// PageSize is the number of result rows auto.ria shows per page
const PageSize = 20

// Timeouts groups the bounded waits used while reading results
type Timeouts struct {
	Click  time.Duration
	Page   time.Duration
	Lookup time.Duration
}

// Extractor walks the result rows and collects one ListingRecord per row
type Extractor struct {
	page     Page
	timeouts Timeouts
	pacer    *utils.Pacer
	logger   utils.Reporter
}

// NewExtractor creates an Extractor
func NewExtractor(page Page, timeouts Timeouts, pacer *utils.Pacer, logger utils.Reporter) *Extractor {
	return &Extractor{page: page, timeouts: timeouts, pacer: pacer, logger: logger}
}

// Extract reads total rows, moving to the next results page every PageSize rows.
// Any failed lookup stops the walk; the records read so far are returned with the error.
func (e *Extractor) Extract(ctx context.Context, total int) ([]models.ListingRecord, error) {
	records := make([]models.ListingRecord, 0, total)
	cursor := 0
	pagesLeft := 0

	for i := 0; i < total; i++ {
		if cursor == PageSize {
			pagesLeft++
			if err := e.nextPage(ctx, pagesLeft); err != nil {
				return records, err
			}
			cursor = 0
		}

		record, err := e.readRow(ctx, cursor)
		if err != nil {
			return records, fmt.Errorf("record %d: %w", i+1, err)
		}
		records = append(records, record)
		cursor++
	}

	return records, nil
}

func (e *Extractor) nextPage(ctx context.Context, n int) error {
	url, err := e.page.Href(ctx, NextPageLink(n), e.timeouts.Page)
	if err != nil {
		return fmt.Errorf("find next page link: %w", err)
	}

	e.logger.Info("Move to the next page")
	if err := e.page.Navigate(ctx, url); err != nil {
		return fmt.Errorf("open next page: %w", err)
	}
	return nil
}

func (e *Extractor) readRow(ctx context.Context, cursor int) (models.ListingRecord, error) {
	e.logger.Info("Update all records on the page")
	count, err := e.page.Rows(ctx, ResultRow, e.timeouts.Page)
	if err != nil {
		return models.ListingRecord{}, err
	}
	if cursor >= count {
		return models.ListingRecord{}, fmt.Errorf("%w: index %d of %d", ErrRowMissing, cursor, count)
	}

	if err := e.page.ScrollRow(ctx, cursor); err != nil {
		return models.ListingRecord{}, err
	}

	title, err := e.page.RowText(ctx, cursor, RowTitle, e.timeouts.Lookup)
	if err != nil {
		return models.ListingRecord{}, err
	}
	e.logger.Info("Get the title %s", title)

	description, err := e.page.RowText(ctx, cursor, RowDescription, e.timeouts.Lookup)
	if err != nil {
		return models.ListingRecord{}, err
	}
	e.logger.Info("Get the description %s", description)

	if err := e.page.ClickRow(ctx, cursor, RowTitle, e.timeouts.Click); err != nil {
		return models.ListingRecord{}, fmt.Errorf("open listing: %w", err)
	}

	phone, err := e.readPhone(ctx)
	if err != nil {
		return models.ListingRecord{}, err
	}
	e.logger.Info("Get the phone %s", phone)

	if err := e.pacer.Settle(ctx); err != nil {
		return models.ListingRecord{}, err
	}

	return models.ListingRecord{Title: title, PhoneNumber: phone, Description: description}, nil
}

// readPhone reveals the phone number on the open listing, reads it and returns to the results
func (e *Extractor) readPhone(ctx context.Context) (string, error) {
	if err := e.page.ClickVisible(ctx, PhoneRevealButton, e.timeouts.Click); err != nil {
		e.logger.Warn("%v", err)
	}

	phone, err := e.page.Text(ctx, PhonePopup, e.timeouts.Lookup)
	if err != nil {
		return "", fmt.Errorf("read phone: %w", err)
	}

	if err := e.page.Back(ctx); err != nil {
		return "", err
	}
	return phone, nil
}
