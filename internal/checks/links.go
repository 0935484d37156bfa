// Package checks classifies bulk page artifacts: link health and image
// loading. Checks run sequentially with no retry or rate limiting; a
// slow target stalls the sequence, and raising the client timeout is
// the only knob.
package checks

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// LinkResult is the classification of one href.
type LinkResult struct {
	Href       string // as found on the page
	URL        string // resolved absolute URL, "" if unresolvable
	StatusCode int    // 0 when the request itself failed
	Broken     bool
	Err        string // request error text, if any
}

// Checker probes links over HTTP.
type Checker struct {
	client *http.Client
}

// NewChecker creates a link checker. A nil client gets a plain one with
// a 15s timeout.
func NewChecker(client *http.Client) *Checker {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Checker{client: client}
}

// skippable reports hrefs that are not HTTP-checkable page links.
func skippable(href string) bool {
	trimmed := strings.TrimSpace(href)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return true
	}
	for _, scheme := range []string{"mailto:", "tel:", "javascript:", "data:"} {
		if strings.HasPrefix(trimmed, scheme) {
			return true
		}
	}
	return false
}

// Resolve turns an href into an absolute URL against base. Returns ""
// for hrefs that cannot be resolved or are not http(s).
func Resolve(base, href string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	abs := baseURL.ResolveReference(ref)
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return ""
	}
	return abs.String()
}

// BrokenLinks classifies every checkable href, sequentially, in input
// order. A status >= 400 or a request error marks the link broken.
// Unresolvable hrefs are reported broken with no status. De-duplicates
// resolved URLs so a nav link repeated in the footer is fetched once.
func (c *Checker) BrokenLinks(ctx context.Context, base string, hrefs []string) ([]LinkResult, error) {
	seen := make(map[string]LinkResult)
	results := make([]LinkResult, 0, len(hrefs))

	for _, href := range hrefs {
		if skippable(href) {
			continue
		}
		resolved := Resolve(base, href)
		if resolved == "" {
			results = append(results, LinkResult{
				Href:   href,
				Broken: true,
				Err:    "unresolvable href",
			})
			continue
		}
		if cached, ok := seen[resolved]; ok {
			cached.Href = href
			results = append(results, cached)
			continue
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := c.probe(ctx, resolved)
		result.Href = href
		seen[resolved] = result
		results = append(results, result)
	}
	return results, nil
}

// probe issues HEAD, falling back to GET when the server rejects or
// fails the HEAD method.
func (c *Checker) probe(ctx context.Context, target string) LinkResult {
	result := LinkResult{URL: target}

	status, err := c.request(ctx, http.MethodHead, target)
	if err != nil || status == http.StatusMethodNotAllowed {
		status, err = c.request(ctx, http.MethodGet, target)
	}
	if err != nil {
		result.Broken = true
		result.Err = err.Error()
		return result
	}
	result.StatusCode = status
	result.Broken = status >= 400
	return result
}

func (c *Checker) request(ctx context.Context, method, target string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// Broken filters results down to the broken ones.
func Broken(results []LinkResult) []LinkResult {
	broken := make([]LinkResult, 0)
	for _, r := range results {
		if r.Broken {
			broken = append(broken, r)
		}
	}
	return broken
}
