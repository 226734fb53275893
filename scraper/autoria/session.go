package autoria

import (
	"context"
	"fmt"

	"autoria-scraper/utils"
)

// Session owns the one browser used for a run
type Session struct {
	launch    Launcher
	targetURL string
	logger    utils.Reporter
}

// NewSession creates a Session that opens targetURL once the browser is up
func NewSession(launch Launcher, targetURL string, logger utils.Reporter) *Session {
	return &Session{launch: launch, targetURL: targetURL, logger: logger}
}

// Run launches the browser, opens the target site and hands the page to fn.
// The browser is released on every exit path, panics included.
func (s *Session) Run(ctx context.Context, fn func(ctx context.Context, page Page) error) (err error) {
	s.logger.Info("Init webdriver")
	browserCtx, page, release, err := s.launch(ctx)
	if err != nil {
		s.logger.Error("Browser failed to start: %v", err)
		return err
	}
	defer func() {
		s.logger.Info("Webdriver close")
		release()
	}()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scraping panicked: %v", r)
			s.logger.Error("%v", err)
		}
	}()

	s.logger.Info("Go to %s", s.targetURL)
	if err := page.Navigate(browserCtx, s.targetURL); err != nil {
		s.logger.Error("Could not open %s: %v", s.targetURL, err)
		return err
	}

	if err := fn(browserCtx, page); err != nil {
		s.logger.Error("%v", err)
		return err
	}
	return nil
}
