package autoria

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autoria-scraper/config"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

var (
	// ErrWaitTimeout is returned when an element does not show up within its bounded wait
	ErrWaitTimeout = errors.New("wait timed out")
	// ErrRowMissing is returned when the results page holds fewer rows than the cursor needs
	ErrRowMissing = errors.New("result row missing")
)

// Page is the browser surface the scraper drives. Every method expects the
// context handed out by the Launcher.
type Page interface {
	Navigate(ctx context.Context, url string) error
	// Back returns to the previous history entry and waits for it to be ready
	Back(ctx context.Context) error
	SendKeys(ctx context.Context, sel Selector, value string, timeout time.Duration) error
	// ClickVisible waits up to timeout for sel to become visible, then clicks it
	ClickVisible(ctx context.Context, sel Selector, timeout time.Duration) error
	Href(ctx context.Context, sel Selector, timeout time.Duration) (string, error)
	Text(ctx context.Context, sel Selector, timeout time.Duration) (string, error)

	// Rows waits for all elements matching sel and returns how many there are.
	// The Row* methods address that set by zero-based index.
	Rows(ctx context.Context, sel Selector, timeout time.Duration) (int, error)
	ScrollRow(ctx context.Context, row int) error
	RowText(ctx context.Context, row int, sel Selector, timeout time.Duration) (string, error)
	ClickRow(ctx context.Context, row int, sel Selector, timeout time.Duration) error
}

// Launcher starts a browser and returns the context bound to it, the Page to
// drive it with, and a release func that tears the browser down
type Launcher func(ctx context.Context) (context.Context, Page, func(), error)

// NewChromeLauncher launches a local Chrome through chromedp (one browser, one tab)
func NewChromeLauncher(cfg *config.Config) Launcher {
	return func(ctx context.Context) (context.Context, Page, func(), error) {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", cfg.Headless),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("disable-gpu", cfg.Headless),
			chromedp.Flag("disable-blink-features", "AutomationControlled"),
			chromedp.Flag("log-level", "3"), // suppress Chrome logs
			chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
			chromedp.WindowSize(1280, 900),
		)

		allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
		tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

		release := func() {
			cancelTab()
			cancelAlloc()
		}

		// An empty Run starts the browser
		if err := chromedp.Run(tabCtx); err != nil {
			release()
			return nil, nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}

		return tabCtx, &chromePage{}, release, nil
	}
}

// chromePage implements Page on top of chromedp
type chromePage struct {
	rows []*cdp.Node
}

func queryOption(by By) chromedp.QueryOption {
	switch by {
	case ByID:
		return chromedp.ByID
	case ByXPath:
		return chromedp.BySearch
	default:
		return chromedp.ByQuery
	}
}

// run executes actions under an optional per-call timeout and reports an
// expired timeout as ErrWaitTimeout
func run(ctx context.Context, timeout time.Duration, what string, actions ...chromedp.Action) error {
	runCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	err := chromedp.Run(runCtx, actions...)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return fmt.Errorf("%w: %s after %v", ErrWaitTimeout, what, timeout)
	}
	return fmt.Errorf("%s: %w", what, err)
}

func (p *chromePage) Navigate(ctx context.Context, url string) error {
	p.rows = nil
	return run(ctx, 0, "navigate to "+url, chromedp.Navigate(url))
}

func (p *chromePage) Back(ctx context.Context) error {
	p.rows = nil
	return run(ctx, 0, "navigate back",
		chromedp.NavigateBack(),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
}

func (p *chromePage) SendKeys(ctx context.Context, sel Selector, value string, timeout time.Duration) error {
	return run(ctx, timeout, "type into "+sel.Value,
		chromedp.SendKeys(sel.Value, value, queryOption(sel.By)),
	)
}

func (p *chromePage) ClickVisible(ctx context.Context, sel Selector, timeout time.Duration) error {
	return run(ctx, timeout, "click "+sel.Value,
		chromedp.WaitVisible(sel.Value, queryOption(sel.By)),
		chromedp.Click(sel.Value, queryOption(sel.By), chromedp.NodeVisible),
	)
}

// Href reads the resolved href property, so relative links come back absolute
func (p *chromePage) Href(ctx context.Context, sel Selector, timeout time.Duration) (string, error) {
	var href string
	err := run(ctx, timeout, "read href of "+sel.Value,
		chromedp.WaitVisible(sel.Value, queryOption(sel.By)),
		chromedp.JavascriptAttribute(sel.Value, "href", &href, queryOption(sel.By)),
	)
	return href, err
}

func (p *chromePage) Text(ctx context.Context, sel Selector, timeout time.Duration) (string, error) {
	var text string
	err := run(ctx, timeout, "read text of "+sel.Value,
		chromedp.Text(sel.Value, &text, queryOption(sel.By)),
	)
	return text, err
}

func (p *chromePage) Rows(ctx context.Context, sel Selector, timeout time.Duration) (int, error) {
	var nodes []*cdp.Node
	by := chromedp.ByQueryAll
	if sel.By != ByQuery {
		by = queryOption(sel.By)
	}
	if err := run(ctx, timeout, "wait for "+sel.Value, chromedp.Nodes(sel.Value, &nodes, by)); err != nil {
		p.rows = nil
		return 0, err
	}
	p.rows = nodes
	return len(nodes), nil
}

func (p *chromePage) row(i int) (*cdp.Node, error) {
	if i < 0 || i >= len(p.rows) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrRowMissing, i, len(p.rows))
	}
	return p.rows[i], nil
}

func (p *chromePage) ScrollRow(ctx context.Context, i int) error {
	node, err := p.row(i)
	if err != nil {
		return err
	}
	return run(ctx, 0, fmt.Sprintf("scroll to row %d", i),
		chromedp.ScrollIntoView([]cdp.NodeID{node.NodeID}, chromedp.ByNodeID),
	)
}

func (p *chromePage) RowText(ctx context.Context, i int, sel Selector, timeout time.Duration) (string, error) {
	node, err := p.row(i)
	if err != nil {
		return "", err
	}
	var text string
	err = run(ctx, timeout, fmt.Sprintf("read %s of row %d", sel.Value, i),
		chromedp.Text(sel.Value, &text, chromedp.ByQuery, chromedp.FromNode(node)),
	)
	return text, err
}

func (p *chromePage) ClickRow(ctx context.Context, i int, sel Selector, timeout time.Duration) error {
	node, err := p.row(i)
	if err != nil {
		return err
	}
	return run(ctx, timeout, fmt.Sprintf("click %s of row %d", sel.Value, i),
		chromedp.WaitVisible(sel.Value, chromedp.ByQuery, chromedp.FromNode(node)),
		chromedp.Click(sel.Value, chromedp.ByQuery, chromedp.FromNode(node)),
	)
}
