package autoria

import (
	"context"
	"fmt"

	"autoria-scraper/config"
	"autoria-scraper/models"
	"autoria-scraper/utils"
)

// Scraper runs one search on auto.ria and collects the requested listings
type Scraper struct {
	cfg    *config.Config
	logger utils.Reporter
	launch Launcher
}

// NewScraper creates a Scraper that drives the browser started by launch
func NewScraper(cfg *config.Config, launch Launcher, logger utils.Reporter) *Scraper {
	return &Scraper{cfg: cfg, logger: logger, launch: launch}
}

// Scrape fills the search form and reads criteria.Quantity result rows.
// On any fatal failure no records are returned.
func (s *Scraper) Scrape(ctx context.Context, criteria models.SearchCriteria) ([]models.ListingRecord, error) {
	var records []models.ListingRecord

	session := NewSession(s.launch, s.cfg.TargetURL, s.logger)
	err := session.Run(ctx, func(ctx context.Context, page Page) error {
		s.logger.Info("Add options to search")
		filler := NewFormFiller(page, s.cfg.ClickTimeout, s.cfg.LookupTimeout, s.logger)
		if err := filler.Fill(ctx, criteria); err != nil {
			return fmt.Errorf("search form: %w", err)
		}

		extractor := NewExtractor(page, Timeouts{
			Click:  s.cfg.ClickTimeout,
			Page:   s.cfg.PageTimeout,
			Lookup: s.cfg.LookupTimeout,
		}, utils.NewPacer(s.cfg.SettleDelay), s.logger)

		var err error
		records, err = extractor.Extract(ctx, criteria.Quantity)
		return err
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
