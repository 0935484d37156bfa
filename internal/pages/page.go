// Package pages wraps a browser page handle behind named, semantic
// operations so tests never scatter raw selector strings. Every
// interaction waits for the target to become visible before acting;
// failures propagate as coded errors except for the advisory IsVisible
// probe, which deliberately swallows them.
package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/sightline-qa/bitsight-e2e/internal/errs"
)

const (
	defaultTimeout           = 5 * time.Second
	defaultNavigationTimeout = 30 * time.Second
)

// Page is the interaction façade over a live browser page handle. It
// carries no state beyond the handle, the base URL, and wait budgets;
// create one per test and discard it.
type Page struct {
	handle     playwright.Page
	baseURL    string
	timeout    time.Duration
	navTimeout time.Duration
}

// Option configures a Page.
type Option func(*Page)

// WithTimeout sets the per-interaction wait budget.
func WithTimeout(d time.Duration) Option {
	return func(p *Page) { p.timeout = d }
}

// WithNavigationTimeout sets the full-page-load wait budget.
func WithNavigationTimeout(d time.Duration) Option {
	return func(p *Page) { p.navTimeout = d }
}

// New wraps a live page handle. The handle must be usable before any
// method is called; New does not probe it.
func New(handle playwright.Page, baseURL string, opts ...Option) *Page {
	p := &Page{
		handle:     handle,
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    defaultTimeout,
		navTimeout: defaultNavigationTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Handle returns the underlying page handle for operations the façade
// does not cover.
func (p *Page) Handle() playwright.Page {
	return p.handle
}

// BaseURL returns the configured base URL.
func (p *Page) BaseURL() string {
	return p.baseURL
}

// Timeout returns the per-interaction wait budget.
func (p *Page) Timeout() time.Duration {
	return p.timeout
}

// ResolveURL builds the absolute URL for a site path. An empty path is
// the base URL itself.
func (p *Page) ResolveURL(path string) string {
	if path == "" {
		return p.baseURL
	}
	return p.baseURL + path
}

// NavigateTo loads base URL + path and blocks until the network-idle
// condition is reached. After a nil return the page URL equals the
// resolved URL or a redirect target.
func (p *Page) NavigateTo(path string) error {
	url := p.ResolveURL(path)
	_, err := p.handle.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(float64(p.navTimeout.Milliseconds())),
	})
	if err != nil {
		code := errs.Navigation
		if errs.IsTimeout(err) {
			code = errs.Timeout
		}
		return errs.Wrap(code, fmt.Sprintf("navigate to %s", url), err)
	}
	return nil
}

// WaitForLoad blocks until the page reaches network idle and the DOM is
// parsed.
func (p *Page) WaitForLoad() error {
	if err := p.handle.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(float64(p.navTimeout.Milliseconds())),
	}); err != nil {
		return errs.FromEngine("wait for network idle", err)
	}
	if err := p.handle.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateDomcontentloaded,
		Timeout: playwright.Float(float64(p.navTimeout.Milliseconds())),
	}); err != nil {
		return errs.FromEngine("wait for domcontentloaded", err)
	}
	return nil
}

// URL returns the page's current URL.
func (p *Page) URL() string {
	return p.handle.URL()
}

// TitleContains reports whether the page title contains s, case-insensitive.
func (p *Page) TitleContains(s string) (bool, error) {
	title, err := p.handle.Title()
	if err != nil {
		return false, errs.FromEngine("read page title", err)
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(s)), nil
}

// locator resolves a selector to the first matching element.
func (p *Page) locator(s Selector) playwright.Locator {
	return p.handle.Locator(s.Engine()).First()
}

// waitVisible blocks until the selector's first match is visible, up to
// the given budget.
func (p *Page) waitVisible(s Selector, timeout time.Duration) (playwright.Locator, error) {
	loc := p.locator(s)
	err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return nil, errs.FromEngine(fmt.Sprintf("element %q not visible within %s", s, timeout), err)
	}
	return loc, nil
}

// ClickOption adjusts a single click.
type ClickOption func(*playwright.LocatorClickOptions)

// Force bypasses the engine's actionability checks, clicking even an
// obstructed element.
func Force() ClickOption {
	return func(o *playwright.LocatorClickOptions) {
		o.Force = playwright.Bool(true)
	}
}

// Click waits for the element to become visible, then dispatches a click.
func (p *Page) Click(s Selector, opts ...ClickOption) error {
	loc, err := p.waitVisible(s, p.timeout)
	if err != nil {
		return err
	}
	var clickOpts playwright.LocatorClickOptions
	for _, opt := range opts {
		opt(&clickOpts)
	}
	if err := loc.Click(clickOpts); err != nil {
		return errs.FromEngine(fmt.Sprintf("click %q", s), err)
	}
	return nil
}

// Fill waits for visibility and replaces the field's content with text.
// No accumulation: two consecutive fills leave only the second value.
// The text is passed through untouched; escaping is the target page's
// problem.
func (p *Page) Fill(s Selector, text string) error {
	loc, err := p.waitVisible(s, p.timeout)
	if err != nil {
		return err
	}
	if err := loc.Fill(text); err != nil {
		return errs.FromEngine(fmt.Sprintf("fill %q", s), err)
	}
	return nil
}

// Press waits for visibility and sends a single key press to the element.
func (p *Page) Press(s Selector, key string) error {
	loc, err := p.waitVisible(s, p.timeout)
	if err != nil {
		return err
	}
	if err := loc.Press(key); err != nil {
		return errs.FromEngine(fmt.Sprintf("press %s on %q", key, s), err)
	}
	return nil
}

// Text waits for visibility and returns the element's trimmed text
// content. An element with no text yields "", never an error; the only
// error path is the element never appearing.
func (p *Page) Text(s Selector) (string, error) {
	loc, err := p.waitVisible(s, p.timeout)
	if err != nil {
		return "", err
	}
	content, err := loc.TextContent()
	if err != nil {
		return "", errs.FromEngine(fmt.Sprintf("read text of %q", s), err)
	}
	return strings.TrimSpace(content), nil
}

// InputValue waits for visibility and returns the field's current value.
func (p *Page) InputValue(s Selector) (string, error) {
	loc, err := p.waitVisible(s, p.timeout)
	if err != nil {
		return "", err
	}
	value, err := loc.InputValue()
	if err != nil {
		return "", errs.FromEngine(fmt.Sprintf("read value of %q", s), err)
	}
	return value, nil
}

// Attribute waits for visibility and returns the named attribute, or ""
// when the attribute is absent.
func (p *Page) Attribute(s Selector, name string) (string, error) {
	loc, err := p.waitVisible(s, p.timeout)
	if err != nil {
		return "", err
	}
	value, err := loc.GetAttribute(name)
	if err != nil {
		return "", errs.FromEngine(fmt.Sprintf("read attribute %s of %q", name, s), err)
	}
	return value, nil
}

// IsVisible probes whether the selector resolves to a visible element
// within the timeout. It never returns an error: a probe is advisory,
// used to branch test logic, so timeouts, zero matches, and engine
// failures all collapse to false.
func (p *Page) IsVisible(s Selector, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = p.timeout
	}
	loc := p.locator(s)
	err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	return err == nil
}

// Hover waits for visibility and moves the pointer over the element.
func (p *Page) Hover(s Selector) error {
	loc, err := p.waitVisible(s, p.timeout)
	if err != nil {
		return err
	}
	if err := loc.Hover(); err != nil {
		return errs.FromEngine(fmt.Sprintf("hover %q", s), err)
	}
	return nil
}

// ScrollTo scrolls the element into view if needed.
func (p *Page) ScrollTo(s Selector) error {
	loc, err := p.waitVisible(s, p.timeout)
	if err != nil {
		return err
	}
	if err := loc.ScrollIntoViewIfNeeded(); err != nil {
		return errs.FromEngine(fmt.Sprintf("scroll to %q", s), err)
	}
	return nil
}

// Count returns how many elements the selector currently matches, with
// no wait.
func (p *Page) Count(s Selector) (int, error) {
	n, err := p.handle.Locator(s.Engine()).Count()
	if err != nil {
		return 0, errs.FromEngine(fmt.Sprintf("count %q", s), err)
	}
	return n, nil
}

// Texts returns the trimmed text of every element the selector matches
// right now, with no wait. Elements with no text contribute "".
func (p *Page) Texts(s Selector) ([]string, error) {
	all, err := p.handle.Locator(s.Engine()).All()
	if err != nil {
		return nil, errs.FromEngine(fmt.Sprintf("enumerate %q", s), err)
	}
	texts := make([]string, 0, len(all))
	for _, loc := range all {
		content, err := loc.TextContent()
		if err != nil {
			texts = append(texts, "")
			continue
		}
		texts = append(texts, strings.TrimSpace(content))
	}
	return texts, nil
}

// VisibleTexts is Texts restricted to elements currently visible.
// Dropdown entries share one selector across all menus, so reading the
// open menu means filtering out the closed ones.
func (p *Page) VisibleTexts(s Selector) ([]string, error) {
	all, err := p.handle.Locator(s.Engine()).All()
	if err != nil {
		return nil, errs.FromEngine(fmt.Sprintf("enumerate %q", s), err)
	}
	texts := make([]string, 0, len(all))
	for _, loc := range all {
		visible, err := loc.IsVisible()
		if err != nil || !visible {
			continue
		}
		content, err := loc.TextContent()
		if err != nil {
			continue
		}
		texts = append(texts, strings.TrimSpace(content))
	}
	return texts, nil
}

// Links returns the href of every anchor on the page that has one.
func (p *Page) Links() ([]string, error) {
	return p.attributeValues(CSS("a[href]"), "href")
}

// LinksWithin returns hrefs of anchors inside the given container.
func (p *Page) LinksWithin(container Selector) ([]string, error) {
	if container.Kind() != KindCSS {
		return nil, errs.New(errs.Internal, "link containers must be CSS selectors")
	}
	return p.attributeValues(CSS(container.Raw()+" a[href]"), "href")
}

func (p *Page) attributeValues(s Selector, name string) ([]string, error) {
	return p.filteredAttributeValues(s, name, false)
}

func (p *Page) visibleAttributeValues(s Selector, name string) ([]string, error) {
	return p.filteredAttributeValues(s, name, true)
}

func (p *Page) filteredAttributeValues(s Selector, name string, visibleOnly bool) ([]string, error) {
	all, err := p.handle.Locator(s.Engine()).All()
	if err != nil {
		return nil, errs.FromEngine(fmt.Sprintf("enumerate %q", s), err)
	}
	values := make([]string, 0, len(all))
	for _, loc := range all {
		if visibleOnly {
			visible, err := loc.IsVisible()
			if err != nil || !visible {
				continue
			}
		}
		value, err := loc.GetAttribute(name)
		if err != nil || value == "" {
			continue
		}
		values = append(values, value)
	}
	return values, nil
}

// SetViewport resizes the page viewport, for responsive probes.
func (p *Page) SetViewport(width, height int) error {
	if err := p.handle.SetViewportSize(width, height); err != nil {
		return errs.FromEngine(fmt.Sprintf("set viewport %dx%d", width, height), err)
	}
	return nil
}
