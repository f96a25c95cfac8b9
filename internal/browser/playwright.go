package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/storecheck/storecheck/internal/config"
	"github.com/storecheck/storecheck/internal/scenario"
	"go.uber.org/zap"
)

// ErrNotStarted is returned when a session is requested before Start
var ErrNotStarted = errors.New("playwright driver is not started")

// Launcher owns the Playwright driver and opens one browser per session
type Launcher struct {
	pw      *playwright.Playwright
	cfg     config.BrowserConfig
	timeout time.Duration
	logger  *zap.Logger
}

// NewLauncher prepares a launcher. Nothing runs until Start.
func NewLauncher(cfg config.BrowserConfig, logger *zap.Logger) *Launcher {
	return &Launcher{
		cfg:    cfg,
		logger: logger.Named("browser"),
	}
}

// Start launches the Playwright driver. Browsers are launched per session.
func (l *Launcher) Start() error {
	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}
	l.pw = pw
	return nil
}

// Install downloads the browser engine and the Playwright driver
func Install(engine string) error {
	if err := playwright.Install(&playwright.RunOptions{Browsers: []string{engine}}); err != nil {
		return fmt.Errorf("failed to install %s: %w", engine, err)
	}
	return nil
}

// SetDefaultTimeout bounds every navigation and query of later sessions.
// A non-positive timeout keeps the driver default.
func (l *Launcher) SetDefaultTimeout(timeout time.Duration) {
	l.timeout = timeout
}

// Stop shuts the Playwright driver down
func (l *Launcher) Stop() error {
	if l.pw == nil {
		return nil
	}
	if err := l.pw.Stop(); err != nil {
		return fmt.Errorf("failed to stop playwright: %w", err)
	}
	return nil
}

// NewSession launches a browser with an isolated context and a single page
func (l *Launcher) NewSession(ctx context.Context) (scenario.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.pw == nil {
		return nil, ErrNotStarted
	}

	browserType, err := l.browserType()
	if err != nil {
		return nil, err
	}

	browser, err := browserType.Launch(launchOptions(l.cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to launch %s: %w", l.cfg.Engine, err)
	}

	browserCtx, err := browser.NewContext()
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	if ms, ok := millis(l.timeout); ok {
		page.SetDefaultTimeout(ms)
	}

	l.logger.Debug("Opened browser session",
		zap.String("engine", l.cfg.Engine),
		zap.Bool("headless", l.cfg.Headless))

	return &Session{browser: browser, page: &Page{page: page}}, nil
}

func (l *Launcher) browserType() (playwright.BrowserType, error) {
	switch l.cfg.Engine {
	case config.BrowserChromium, "":
		return l.pw.Chromium, nil
	case config.BrowserFirefox:
		return l.pw.Firefox, nil
	case config.BrowserWebKit:
		return l.pw.WebKit, nil
	}
	return nil, fmt.Errorf("unsupported browser engine %q", l.cfg.Engine)
}

func launchOptions(cfg config.BrowserConfig) playwright.BrowserTypeLaunchOptions {
	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMo > 0 {
		opts.SlowMo = playwright.Float(cfg.SlowMo)
	}
	return opts
}

// millis converts d to Playwright milliseconds; ok is false for non-positive d
func millis(d time.Duration) (float64, bool) {
	if d <= 0 {
		return 0, false
	}
	return float64(d.Milliseconds()), true
}

var (
	_ scenario.SessionFactory = (*Launcher)(nil)
	_ scenario.Page           = (*Page)(nil)
	_ scenario.Element        = Element{}
)

// Session is one browser process with its page
type Session struct {
	browser playwright.Browser
	page    *Page
}

// Page returns the session's page
func (s *Session) Page() scenario.Page {
	return s.page
}

// Close closes the browser and everything it opened
func (s *Session) Close() error {
	if err := s.browser.Close(); err != nil {
		return fmt.Errorf("failed to close browser: %w", err)
	}
	return nil
}

// Page drives a Playwright page through CSS selectors
type Page struct {
	page playwright.Page
}

// waitForTextScript resolves once the first element matching the selector has the wanted trimmed text
const waitForTextScript = `([selector, want]) => {
	const el = document.querySelector(selector);
	return el !== null && el.textContent.trim() === want;
}`

func (p *Page) Goto(url string) error {
	if _, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	}); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

func (p *Page) URL() string {
	return p.page.URL()
}

// QueryAll waits for the first match to be attached and returns every match.
// A selector that never matches within the default timeout yields no elements.
func (p *Page) QueryAll(selector string) ([]scenario.Element, error) {
	locator := p.page.Locator(selector)
	if err := locator.First().WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateAttached,
	}); err != nil {
		if errors.Is(err, playwright.ErrTimeout) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to wait for %q: %w", selector, err)
	}

	matches, err := locator.All()
	if err != nil {
		return nil, fmt.Errorf("failed to query %q: %w", selector, err)
	}

	elements := make([]scenario.Element, len(matches))
	for i, match := range matches {
		elements[i] = Element{locator: match}
	}
	return elements, nil
}

func (p *Page) Click(selector string) error {
	if err := p.page.Locator(selector).First().Click(); err != nil {
		return fmt.Errorf("failed to click %q: %w", selector, err)
	}
	return nil
}

func (p *Page) TextContent(selector string) (string, error) {
	text, err := p.page.Locator(selector).First().TextContent()
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", selector, err)
	}
	return text, nil
}

func (p *Page) TextContents(selector string) ([]string, error) {
	texts, err := p.page.Locator(selector).AllTextContents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", selector, err)
	}
	return texts, nil
}

func (p *Page) WaitForText(selector, want string, timeout time.Duration) error {
	opts := playwright.PageWaitForFunctionOptions{}
	if ms, ok := millis(timeout); ok {
		opts.Timeout = playwright.Float(ms)
	}
	if _, err := p.page.WaitForFunction(waitForTextScript, []string{selector, want}, opts); err != nil {
		return fmt.Errorf("waiting for %q to read %q: %w", selector, want, err)
	}
	return nil
}

// Element is a matched element handle
type Element struct {
	locator playwright.Locator
}

func (e Element) Click(selector string) error {
	if err := e.locator.Locator(selector).First().Click(); err != nil {
		return fmt.Errorf("failed to click %q: %w", selector, err)
	}
	return nil
}

func (e Element) TextContent(selector string) (string, error) {
	text, err := e.locator.Locator(selector).First().TextContent()
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", selector, err)
	}
	return text, nil
}
