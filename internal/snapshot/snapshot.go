// Package snapshot audits the selector catalog against recorded DOM
// snapshots. Selectors drift when the site changes; matching every
// catalog entry against a saved copy of the real pages turns that drift
// into a test failure instead of a flaky browser run.
package snapshot

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sightline-qa/bitsight-e2e/internal/errs"
	"github.com/sightline-qa/bitsight-e2e/internal/pages"
)

// Load parses a recorded HTML snapshot from disk.
func Load(path string) (*goquery.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.NotFound, fmt.Sprintf("open snapshot %s", path), err)
	}
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, errs.Wrap(errs.Internal, fmt.Sprintf("parse snapshot %s", path), err)
	}
	return doc, nil
}

// MatchCount reports how many nodes in doc the selector matches.
//
// Text selectors and the :has-text() pseudo-class are browser-engine
// syntax that cascadia cannot parse, so both are evaluated here as a
// case-insensitive substring check over element text, mirroring how the
// engine matches them.
func MatchCount(doc *goquery.Document, sel pages.Selector) (int, error) {
	if sel.IsZero() {
		return 0, errs.New(errs.Internal, "zero selector")
	}
	if sel.Kind() == pages.KindText {
		if containsFold(doc.Text(), sel.Raw()) {
			return 1, nil
		}
		return 0, nil
	}
	base, text, ok := splitHasText(sel.Raw())
	if !ok {
		return doc.Find(sel.Raw()).Length(), nil
	}
	count := 0
	doc.Find(base).Each(func(_ int, s *goquery.Selection) {
		if containsFold(s.Text(), text) {
			count++
		}
	})
	return count, nil
}

// Missing returns the sorted names of selectors in set that match
// nothing in any of the given documents.
func Missing(docs []*goquery.Document, set map[string]pages.Selector) ([]string, error) {
	var missing []string
	for name, sel := range set {
		found := false
		for _, doc := range docs {
			n, err := MatchCount(doc, sel)
			if err != nil {
				return nil, fmt.Errorf("selector %s: %w", name, err)
			}
			if n > 0 {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing, nil
}

// splitHasText decomposes selectors like `button:has-text("Solutions")`
// into the base CSS part and the quoted text. Only a single trailing
// :has-text() is supported, which is all the catalog uses.
func splitHasText(css string) (base, text string, ok bool) {
	const marker = `:has-text(`
	i := strings.Index(css, marker)
	if i < 0 {
		return "", "", false
	}
	rest := css[i+len(marker):]
	if len(rest) < 2 || !strings.HasSuffix(rest, ")") {
		return "", "", false
	}
	text = strings.TrimSuffix(rest, ")")
	text = strings.Trim(text, `"'`)
	base = css[:i]
	if base == "" {
		base = "*"
	}
	return base, text, true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
