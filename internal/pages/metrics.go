package pages

import (
	"github.com/sightline-qa/bitsight-e2e/internal/errs"
)

// BrokenImages returns the src of every visible image that rendered
// zero-width, i.e. failed to load. A page with no images yields an
// empty slice.
func (p *Page) BrokenImages() ([]string, error) {
	jsCode := `
	() => {
		const broken = [];
		document.querySelectorAll('img').forEach(img => {
			const rect = img.getBoundingClientRect();
			const style = window.getComputedStyle(img);
			const visible = rect.width > 0 && rect.height > 0 &&
				style.display !== 'none' && style.visibility !== 'hidden';
			if (visible && img.complete && img.naturalWidth === 0) {
				broken.push(img.getAttribute('src') || '');
			}
		});
		return broken;
	}
	`
	result, err := p.handle.Evaluate(jsCode)
	if err != nil {
		return nil, errs.FromEngine("inspect image load state", err)
	}
	items, ok := result.([]interface{})
	if !ok {
		return []string{}, nil
	}
	broken := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			broken = append(broken, s)
		}
	}
	return broken, nil
}

// NavigationTiming reports millisecond durations from the browser's
// navigation timing entry: dns, tcp, request, response, dom, total.
func (p *Page) NavigationTiming() (map[string]float64, error) {
	jsCode := `
	() => {
		const entries = performance.getEntriesByType('navigation');
		if (!entries.length) return null;
		const nav = entries[0];
		return {
			dns: nav.domainLookupEnd - nav.domainLookupStart,
			tcp: nav.connectEnd - nav.connectStart,
			request: nav.responseStart - nav.requestStart,
			response: nav.responseEnd - nav.responseStart,
			dom: nav.domComplete - nav.domInteractive,
			total: nav.loadEventEnd - nav.startTime
		};
	}
	`
	result, err := p.handle.Evaluate(jsCode)
	if err != nil {
		return nil, errs.FromEngine("read navigation timing", err)
	}
	raw, ok := result.(map[string]interface{})
	if !ok {
		return nil, errs.New(errs.Engine, "navigation timing entry unavailable")
	}
	timing := make(map[string]float64, len(raw))
	for k, v := range raw {
		switch n := v.(type) {
		case float64:
			timing[k] = n
		case int:
			timing[k] = float64(n)
		}
	}
	return timing, nil
}

// FirstContentfulPaint returns the FCP mark in milliseconds, or -1 when
// the browser recorded none.
func (p *Page) FirstContentfulPaint() (float64, error) {
	jsCode := `
	() => {
		const entries = performance.getEntriesByType('paint');
		const fcp = entries.find(e => e.name === 'first-contentful-paint');
		return fcp ? fcp.startTime : -1;
	}
	`
	result, err := p.handle.Evaluate(jsCode)
	if err != nil {
		return 0, errs.FromEngine("read first contentful paint", err)
	}
	switch n := result.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	}
	return -1, nil
}
