// domtool maintains the selector catalog's ground truth: it records DOM
// snapshots of live pages with a real browser, lists candidate stable
// selectors from recorded HTML, and audits a catalog page against
// snapshots the same way the test suite does.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/playwright-community/playwright-go"
	"github.com/spf13/cobra"

	"github.com/sightline-qa/bitsight-e2e/internal/config"
	"github.com/sightline-qa/bitsight-e2e/internal/errs"
	"github.com/sightline-qa/bitsight-e2e/internal/obs"
	"github.com/sightline-qa/bitsight-e2e/internal/pages"
	"github.com/sightline-qa/bitsight-e2e/internal/snapshot"
)

var log = obs.Pkg("domtool")

func main() {
	root := &cobra.Command{
		Use:           "domtool",
		Short:         "Record and audit DOM snapshots for the selector catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(snapshotCmd(), selectorsCmd(), auditCmd())
	if err := root.Execute(); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func snapshotCmd() *cobra.Command {
	var outHTML, outPNG string
	cmd := &cobra.Command{
		Use:   "snapshot <url>",
		Short: "Render a page in a headless browser and save its DOM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return recordSnapshot(args[0], outHTML, outPNG)
		},
	}
	cmd.Flags().StringVarP(&outHTML, "out", "o", "snapshot.html", "output HTML file")
	cmd.Flags().StringVar(&outPNG, "screenshot", "", "also save a full-page screenshot")
	return cmd
}

func recordSnapshot(url, outHTML, outPNG string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pw, err := playwright.Run()
	if err != nil {
		return errs.Wrap(errs.Engine, "start playwright", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	})
	if err != nil {
		return errs.Wrap(errs.Engine, "launch browser", err)
	}
	defer browser.Close()

	handle, err := browser.NewPage()
	if err != nil {
		return errs.Wrap(errs.Engine, "open page", err)
	}

	p := pages.New(handle, url,
		pages.WithTimeout(cfg.Timeout),
		pages.WithNavigationTimeout(cfg.NavigationTimeout))
	if err := p.NavigateTo(""); err != nil {
		return err
	}

	content, err := handle.Content()
	if err != nil {
		return errs.Wrap(errs.Engine, "read page content", err)
	}
	if err := os.WriteFile(outHTML, []byte(content), 0o644); err != nil {
		return err
	}
	log.Info("snapshot recorded", "url", url, "out", outHTML, "bytes", len(content))

	if outPNG != "" {
		if _, err := handle.Screenshot(playwright.PageScreenshotOptions{
			Path:     playwright.String(outPNG),
			FullPage: playwright.Bool(true),
		}); err != nil {
			return errs.Wrap(errs.Engine, "take screenshot", err)
		}
		log.Info("screenshot saved", "out", outPNG)
	}
	return nil
}

func selectorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selectors <file.html>",
		Short: "List candidate stable selectors found in a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := snapshot.Load(args[0])
			if err != nil {
				return err
			}
			for _, c := range candidateSelectors(doc) {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

// candidateSelectors walks a document for the attributes that survive
// site redesigns: ids, test ids, aria labels, and landmark elements.
func candidateSelectors(doc *goquery.Document) []string {
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		add("#" + id)
	})
	doc.Find("[data-testid]").Each(func(_ int, s *goquery.Selection) {
		v, _ := s.Attr("data-testid")
		add(fmt.Sprintf(`[data-testid=%q]`, v))
	})
	doc.Find("[aria-label]").Each(func(_ int, s *goquery.Selection) {
		v, _ := s.Attr("aria-label")
		add(fmt.Sprintf(`[aria-label=%q]`, v))
	})
	doc.Find("button, a").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" && len(text) <= 40 {
			add(fmt.Sprintf(`%s:has-text(%q)`, goquery.NodeName(s), text))
		}
	})
	for _, landmark := range []string{"header", "footer", "main", "nav"} {
		if doc.Find(landmark).Length() > 0 {
			add(landmark)
		}
	}
	return out
}

func auditCmd() *cobra.Command {
	var page string
	cmd := &cobra.Command{
		Use:   "audit <file.html>...",
		Short: "Check a catalog page's selectors against snapshots",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := pages.DefaultCatalog().Page(page)
			if err != nil {
				return err
			}
			var docs []*goquery.Document
			for _, path := range args {
				doc, err := snapshot.Load(path)
				if err != nil {
					return err
				}
				docs = append(docs, doc)
			}
			missing, err := snapshot.Missing(docs, set)
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				return fmt.Errorf("page %q: %d selectors match nothing: %s",
					page, len(missing), strings.Join(missing, ", "))
			}
			log.Info("catalog audit passed", "page", page,
				"selectors", len(set), "snapshots", len(args))
			return nil
		},
	}
	cmd.Flags().StringVar(&page, "page", "home", "catalog page to audit")
	return cmd
}
