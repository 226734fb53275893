package autoria

import (
	"context"
	"fmt"
	"time"

	"autoria-scraper/models"
	"autoria-scraper/utils"
)

// FormFiller types SearchCriteria into the auto.ria search form and submits it
type FormFiller struct {
	page          Page
	logger        utils.Reporter
	clickTimeout  time.Duration
	lookupTimeout time.Duration
}

// NewFormFiller creates a FormFiller
func NewFormFiller(page Page, clickTimeout, lookupTimeout time.Duration, logger utils.Reporter) *FormFiller {
	return &FormFiller{
		page:          page,
		logger:        logger,
		clickTimeout:  clickTimeout,
		lookupTimeout: lookupTimeout,
	}
}

// Fill sets every filter in the order the site expects. Autocomplete picks and
// panel toggles that time out are logged and skipped; a missing input or a
// failed submit aborts.
func (f *FormFiller) Fill(ctx context.Context, c models.SearchCriteria) error {
	if err := f.typeInto(ctx, "type of transport", TransportTypeInput, c.TransportType); err != nil {
		return err
	}

	if err := f.typeInto(ctx, "brand of transport", BrandInput, c.Brand); err != nil {
		return err
	}
	f.clickOptional(ctx, BrandSuggestion)

	if err := f.typeInto(ctx, "model of transport", ModelInput, c.Model); err != nil {
		return err
	}
	f.clickOptional(ctx, ModelSuggestion)

	if err := f.typeInto(ctx, "region", RegionInput, c.Region); err != nil {
		return err
	}
	f.clickOptional(ctx, RegionSuggestion)

	f.clickOptional(ctx, YearPanelToggle)
	if err := f.typeInto(ctx, "year from", YearFromInput, c.YearFrom); err != nil {
		return err
	}
	if err := f.typeInto(ctx, "year till", YearToInput, c.YearTo); err != nil {
		return err
	}
	f.clickOptional(ctx, YearPanelToggle)

	f.clickOptional(ctx, PricePanelToggle)
	if err := f.typeInto(ctx, "price from", PriceFromInput, c.PriceFrom); err != nil {
		return err
	}
	if err := f.typeInto(ctx, "price to", PriceToInput, c.PriceTo); err != nil {
		return err
	}
	f.clickOptional(ctx, PricePanelToggle)

	f.logger.Info("Search...")
	if err := f.page.ClickVisible(ctx, SubmitButton, f.clickTimeout); err != nil {
		return fmt.Errorf("submit search: %w", err)
	}
	return nil
}

func (f *FormFiller) typeInto(ctx context.Context, label string, sel Selector, value string) error {
	f.logger.Info("Set the %s %s", label, value)
	if err := f.page.SendKeys(ctx, sel, value, f.lookupTimeout); err != nil {
		return fmt.Errorf("set %s: %w", label, err)
	}
	return nil
}

func (f *FormFiller) clickOptional(ctx context.Context, sel Selector) {
	if err := f.page.ClickVisible(ctx, sel, f.clickTimeout); err != nil {
		f.logger.Warn("%v", err)
	}
}
