package autoria

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"autoria-scraper/utils"
)

// fakePage records every interaction and serves a synthetic results listing
type fakePage struct {
	calls []string

	rowsPerPage int
	page        int // results pages navigated past the first

	rowsCalls  int
	failRowsAt int // 1-based Rows call that fails, 0 never
	rowsErr    error

	clickErrs    map[string]error // keyed by selector value
	sendKeysErrs map[string]error
	textErr      error
	panicOnRows  bool
}

func newFakePage(rowsPerPage int) *fakePage {
	return &fakePage{
		rowsPerPage:  rowsPerPage,
		clickErrs:    map[string]error{},
		sendKeysErrs: map[string]error{},
	}
}

func (p *fakePage) record(format string, args ...interface{}) {
	p.calls = append(p.calls, fmt.Sprintf(format, args...))
}

func (p *fakePage) callsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range p.calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

func (p *fakePage) Navigate(_ context.Context, url string) error {
	p.record("navigate %s", url)
	if strings.Contains(url, "/next/") {
		p.page++
	}
	return nil
}

func (p *fakePage) Back(context.Context) error {
	p.record("back")
	return nil
}

func (p *fakePage) SendKeys(_ context.Context, sel Selector, value string, _ time.Duration) error {
	p.record("type %s=%s", sel.Value, value)
	return p.sendKeysErrs[sel.Value]
}

func (p *fakePage) ClickVisible(_ context.Context, sel Selector, timeout time.Duration) error {
	p.record("click %s", sel.Value)
	if err := p.clickErrs[sel.Value]; err != nil {
		return fmt.Errorf("%w: %s after %v", err, sel.Value, timeout)
	}
	return nil
}

func (p *fakePage) Href(_ context.Context, sel Selector, _ time.Duration) (string, error) {
	p.record("href %s", sel.Value)
	return fmt.Sprintf("https://auto.ria.com/next/%d", p.page+1), nil
}

func (p *fakePage) Text(_ context.Context, sel Selector, _ time.Duration) (string, error) {
	p.record("text %s", sel.Value)
	if p.textErr != nil {
		return "", p.textErr
	}
	return fmt.Sprintf("+380 (67) 000 %02d %02d", p.page, len(p.callsWithPrefix("text "))), nil
}

func (p *fakePage) Rows(_ context.Context, sel Selector, _ time.Duration) (int, error) {
	p.rowsCalls++
	p.record("rows %s", sel.Value)
	if p.panicOnRows {
		panic("renderer crashed")
	}
	if p.failRowsAt > 0 && p.rowsCalls == p.failRowsAt {
		return 0, p.rowsErr
	}
	return p.rowsPerPage, nil
}

func (p *fakePage) ScrollRow(_ context.Context, row int) error {
	p.record("scroll %d", row)
	return nil
}

func (p *fakePage) RowText(_ context.Context, row int, sel Selector, _ time.Duration) (string, error) {
	p.record("rowtext %d %s", row, sel.Value)
	switch sel {
	case RowTitle:
		return fmt.Sprintf("Audi Q5 p%d r%d", p.page, row), nil
	case RowDescription:
		return fmt.Sprintf("description p%d r%d", p.page, row), nil
	}
	return "", fmt.Errorf("unexpected row selector %s", sel.Value)
}

func (p *fakePage) ClickRow(_ context.Context, row int, sel Selector, timeout time.Duration) error {
	p.record("clickrow %d %s", row, sel.Value)
	if err := p.clickErrs["row:"+sel.Value]; err != nil {
		return fmt.Errorf("%w: %s after %v", err, sel.Value, timeout)
	}
	return nil
}

// fakeLauncher hands out p and counts releases
func fakeLauncher(p *fakePage, releases *int) Launcher {
	return func(ctx context.Context) (context.Context, Page, func(), error) {
		return ctx, p, func() { *releases++ }, nil
	}
}

func testLogger() (*utils.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return utils.NewLogger(&buf), &buf
}

func testTimeouts() Timeouts {
	return Timeouts{Click: 20 * time.Second, Page: 10 * time.Second, Lookup: 10 * time.Second}
}
