// Package pages drives the shop through Playwright. Page objects read values
// from a parsed snapshot of the rendered markup so the query package's
// fallback strategies apply to live pages too.
package pages

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/shopqa/storefront/internal/query"
	"go.uber.org/zap"
)

// ErrNotFound is returned when an element a page action needs is missing
var ErrNotFound = errors.New("element not found")

// Page is the capability every page object shares
type Page interface {
	Navigate(path string) error
	Snapshot() (*query.Snapshot, error)
	IsVisible(selector string) (bool, error)
	URL() string
}

// Base implements Page over a playwright.Page
type Base struct {
	page           playwright.Page
	baseURL        string
	timeout        time.Duration
	requestTimeout time.Duration
	logger         *zap.Logger
}

// NewBase wraps page. Paths passed to Navigate are resolved against baseURL.
func NewBase(page playwright.Page, baseURL string, timeout time.Duration, logger *zap.Logger) *Base {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Base{
		page:           page,
		baseURL:        strings.TrimRight(baseURL, "/"),
		timeout:        timeout,
		requestTimeout: timeout,
		logger:         logger,
	}
}

// SetRequestTimeout changes how long actions wait for the shop's XHR responses
func (b *Base) SetRequestTimeout(d time.Duration) {
	if d > 0 {
		b.requestTimeout = d
	}
}

// Raw returns the underlying playwright page
func (b *Base) Raw() playwright.Page {
	return b.page
}

// Resolve joins path onto the base URL
func (b *Base) Resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return b.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Navigate opens path and waits for the DOM to load
func (b *Base) Navigate(path string) error {
	target := b.Resolve(path)
	b.logger.Debug("Navigating", zap.String("url", target))

	_, err := b.page.Goto(target, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   b.millis(),
	})
	if err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", target, err)
	}
	return nil
}

// Snapshot parses the page's current markup
func (b *Base) Snapshot() (*query.Snapshot, error) {
	content, err := b.page.Content()
	if err != nil {
		return nil, fmt.Errorf("failed to read page content: %w", err)
	}
	return query.Parse(content)
}

// IsVisible reports whether the first element matching selector is visible
func (b *Base) IsVisible(selector string) (bool, error) {
	return b.page.Locator(selector).First().IsVisible()
}

// URL returns the page's current URL
func (b *Base) URL() string {
	return b.page.URL()
}

// Click waits for the first element matching selector and clicks it
func (b *Base) Click(selector string) error {
	loc := b.page.Locator(selector).First()
	if err := b.waitVisible(loc, selector); err != nil {
		return err
	}
	if err := loc.Click(playwright.LocatorClickOptions{Timeout: b.millis()}); err != nil {
		return fmt.Errorf("failed to click %s: %w", selector, err)
	}
	return nil
}

// Fill replaces the value of the first input matching selector
func (b *Base) Fill(selector, value string) error {
	loc := b.page.Locator(selector).First()
	if err := b.waitVisible(loc, selector); err != nil {
		return err
	}
	if err := loc.Fill(value, playwright.LocatorFillOptions{Timeout: b.millis()}); err != nil {
		return fmt.Errorf("failed to fill %s: %w", selector, err)
	}
	return nil
}

// Text returns the trimmed inner text of the first element matching selector
func (b *Base) Text(selector string) (string, error) {
	loc := b.page.Locator(selector).First()
	if err := b.waitVisible(loc, selector); err != nil {
		return "", err
	}
	text, err := loc.InnerText()
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", selector, err)
	}
	return strings.TrimSpace(text), nil
}

// Exists reports whether any element matches selector, without waiting
func (b *Base) Exists(selector string) (bool, error) {
	n, err := b.page.Locator(selector).Count()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Screenshot saves a full page screenshot to path
func (b *Base) Screenshot(path string) error {
	_, err := b.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return err
}

func (b *Base) waitVisible(loc playwright.Locator, selector string) error {
	err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: b.millis(),
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotFound, selector, err)
	}
	return nil
}

func (b *Base) millis() *float64 {
	return playwright.Float(float64(b.timeout.Milliseconds()))
}

func (b *Base) requestMillis() *float64 {
	return playwright.Float(float64(b.requestTimeout.Milliseconds()))
}
