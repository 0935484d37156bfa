// Package browser drives the page objects against an in-process copy
// of the marketing site. Every test file uses Env via Setup(t).
//
// The fixture is shared across tests: one hermetic site server and one
// headless browser per test binary. Tests get isolation from fresh
// browser pages, not fresh servers.
package browser

import (
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/sightline-qa/bitsight-e2e/internal/config"
	"github.com/sightline-qa/bitsight-e2e/internal/mocksite"
	"github.com/sightline-qa/bitsight-e2e/internal/obs"
	"github.com/sightline-qa/bitsight-e2e/internal/pages"
)

var fixtureMu sync.Mutex
var sharedFixture *Env

// Env is the shared test environment: the fixture site, the browser,
// and the suite configuration.
type Env struct {
	Server  *httptest.Server
	BaseURL string
	Cfg     *config.Config

	pw        *playwright.Playwright
	browser   playwright.Browser
	browserMu sync.Mutex
}

// Setup returns the shared environment, creating it on first use.
func Setup(t *testing.T) *Env {
	t.Helper()

	if testing.Short() {
		t.Skip("browser tests skipped in -short mode")
	}

	fixtureMu.Lock()
	defer fixtureMu.Unlock()

	if sharedFixture != nil {
		return sharedFixture
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load suite config: %v", err)
	}

	server := httptest.NewServer(obs.AccessLogMiddleware("mocksite", mocksite.Handler()))
	sharedFixture = &Env{
		Server:  server,
		BaseURL: server.URL,
		Cfg:     cfg,
	}
	return sharedFixture
}

func cleanupSharedFixture() {
	fixtureMu.Lock()
	defer fixtureMu.Unlock()
	if sharedFixture == nil {
		return
	}
	if sharedFixture.browser != nil {
		_ = sharedFixture.browser.Close()
	}
	if sharedFixture.pw != nil {
		_ = sharedFixture.pw.Stop()
	}
	if sharedFixture.Server != nil {
		sharedFixture.Server.Close()
	}
	sharedFixture = nil
}

func TestMain(m *testing.M) {
	obs.Init()
	code := m.Run()
	cleanupSharedFixture()
	os.Exit(code)
}

// InitBrowser initializes Playwright and launches Chromium. Skips the
// test if the browser toolchain is not installed.
func (env *Env) InitBrowser(t *testing.T) {
	t.Helper()

	env.browserMu.Lock()
	defer env.browserMu.Unlock()

	if env.browser != nil {
		return
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Skip("Playwright not available:", err)
	}

	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(env.Cfg.Headless),
	}
	if env.Cfg.SlowMo > 0 {
		opts.SlowMo = playwright.Float(float64(env.Cfg.SlowMo.Milliseconds()))
	}
	browser, err := pw.Chromium.Launch(opts)
	if err != nil {
		_ = pw.Stop()
		t.Skip("Could not launch browser:", err)
	}
	env.pw = pw
	env.browser = browser
}

// NewPage opens a fresh page against the fixture site, wrapped in the
// page-object base. The page closes with the test; if the test failed,
// a full-page screenshot is saved first.
func (env *Env) NewPage(t *testing.T) *pages.Page {
	t.Helper()

	handle, err := env.browser.NewPage()
	if err != nil {
		t.Fatalf("could not create page: %v", err)
	}
	handle.SetDefaultTimeout(env.Cfg.TimeoutMS())
	handle.SetDefaultNavigationTimeout(env.Cfg.NavigationTimeoutMS())

	t.Cleanup(func() {
		if t.Failed() {
			env.captureFailure(t, handle)
		}
		_ = handle.Close()
	})

	return pages.New(handle, env.BaseURL,
		pages.WithTimeout(env.Cfg.Timeout),
		pages.WithNavigationTimeout(env.Cfg.NavigationTimeout))
}

// captureFailure saves one full-page screenshot for a failed test,
// named after the test and the capture time so reruns never clobber
// earlier evidence.
func (env *Env) captureFailure(t *testing.T, handle playwright.Page) {
	t.Helper()

	dir := env.Cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Logf("could not create screenshot dir %s: %v", dir, err)
		return
	}
	path := filepath.Join(dir, FailureArtifactName(t.Name(), time.Now()))
	if _, err := handle.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		t.Logf("could not capture failure screenshot: %v", err)
		return
	}
	t.Logf("failure screenshot: %s (run %s)", path, obs.RunID())
}

// FailureArtifactName builds the screenshot filename for a failed test.
// Subtest separators are flattened so the name stays a single path
// element.
func FailureArtifactName(testName string, now time.Time) string {
	name := strings.ReplaceAll(testName, "/", "_")
	return fmt.Sprintf("%s_%s.png", name, now.Format("20060102_150405"))
}

// consoleErrorCollector records console errors emitted by the page.
// Register before navigating; call the returned func for the errors
// seen so far.
func consoleErrorCollector(p *pages.Page) func() []string {
	var mu sync.Mutex
	var errors []string
	p.Handle().OnConsole(func(msg playwright.ConsoleMessage) {
		if msg.Type() == "error" {
			mu.Lock()
			errors = append(errors, msg.Text())
			mu.Unlock()
		}
	})
	return func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), errors...)
	}
}
