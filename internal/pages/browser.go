package pages

import (
	"fmt"
	"path/filepath"

	"github.com/playwright-community/playwright-go"
	"github.com/shopqa/storefront/internal/config"
	"github.com/shopqa/storefront/internal/query"
	"go.uber.org/zap"
)

// Browser is a launched Playwright browser configured for the suite
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     *config.SuiteConfig
	logger  *zap.Logger
}

// Launch starts Playwright and the browser named in cfg
func Launch(cfg *config.SuiteConfig, logger *zap.Logger) (*Browser, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	var browserType playwright.BrowserType
	switch cfg.Browser {
	case config.BrowserFirefox:
		browserType = pw.Firefox
	case config.BrowserWebKit:
		browserType = pw.WebKit
	default:
		browserType = pw.Chromium
	}

	browser, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch %s: %w", cfg.Browser, err)
	}

	logger.Info("Browser launched",
		zap.String("browser", cfg.Browser),
		zap.Bool("headless", cfg.Headless),
		zap.String("baseURL", cfg.BaseURL))

	return &Browser{pw: pw, browser: browser, cfg: cfg, logger: logger}, nil
}

// Session is one isolated browser context with a single open page
type Session struct {
	context playwright.BrowserContext
	Base    *Base
	Header  *Header
	Home    *HomePage
	Login   *LoginPage
	Reg     *RegisterPage
	Product *ProductPage
	Cart    *CartPage
}

// NewSession opens a fresh context (no cookies, empty cart) and wires every page object
func (b *Browser) NewSession(name string) (*Session, error) {
	opts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: b.cfg.Viewport.Width, Height: b.cfg.Viewport.Height},
	}
	if b.cfg.Video {
		opts.RecordVideo = &playwright.RecordVideo{Dir: filepath.Join(b.cfg.ArtifactsDir, "videos", name)}
	}

	ctx, err := b.browser.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	ctx.SetDefaultTimeout(float64(b.cfg.Timeouts.Default.Milliseconds()))
	ctx.SetDefaultNavigationTimeout(float64(b.cfg.Timeouts.Response.Milliseconds()))

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	logger := b.logger.With(zap.String("session", name))
	extractor := query.NewExtractor(logger.Named("query"))
	base := NewBase(page, b.cfg.BaseURL, b.cfg.Timeouts.Default, logger)
	base.SetRequestTimeout(b.cfg.Timeouts.Request)
	header := NewHeader(base, extractor)

	return &Session{
		context: ctx,
		Base:    base,
		Header:  header,
		Home:    NewHomePage(base, header),
		Login:   NewLoginPage(base),
		Reg:     NewRegisterPage(base),
		Product: NewProductPage(base, extractor),
		Cart:    NewCartPage(base, extractor),
	}, nil
}

// CaptureFailure saves a screenshot named after the session when screenshots are enabled
func (b *Browser) CaptureFailure(s *Session, name string) {
	if !b.cfg.Screenshots {
		return
	}
	path := filepath.Join(b.cfg.ArtifactsDir, "screenshots", name+".png")
	if err := s.Base.Screenshot(path); err != nil {
		b.logger.Warn("Failed to capture screenshot", zap.String("path", path), zap.Error(err))
		return
	}
	b.logger.Info("Captured failure screenshot", zap.String("path", path))
}

// Close closes the session's browser context
func (s *Session) Close() error {
	return s.context.Close()
}

// Close closes the browser and stops Playwright
func (b *Browser) Close() error {
	if err := b.browser.Close(); err != nil {
		b.pw.Stop()
		return fmt.Errorf("failed to close browser: %w", err)
	}
	return b.pw.Stop()
}
