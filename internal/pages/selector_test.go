package pages

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

func TestSelectorEngineForm(t *testing.T) {
	t.Parallel()

	css := CSS(`button:has-text("Solutions")`)
	if css.Engine() != `button:has-text("Solutions")` {
		t.Errorf("CSS engine form changed: %q", css.Engine())
	}
	if css.Kind() != KindCSS {
		t.Errorf("CSS kind = %q", css.Kind())
	}

	text := ByText("Exposure Management")
	if text.Engine() != "text=Exposure Management" {
		t.Errorf("text engine form = %q", text.Engine())
	}
	if text.Raw() != "Exposure Management" {
		t.Errorf("text raw = %q", text.Raw())
	}

	if !(Selector{}).IsZero() {
		t.Error("zero selector should report IsZero")
	}
	if css.IsZero() {
		t.Error("non-empty selector should not report IsZero")
	}
}

func TestSelectorEngineFormNeverEmpty(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(rt *rapid.T) {
		value := rapid.StringMatching(`[a-zA-Z][a-zA-Z0-9 .#\[\]="-]{0,60}`).Draw(rt, "value")
		kind := rapid.SampledFrom([]Kind{KindCSS, KindText}).Draw(rt, "kind")

		var s Selector
		if kind == KindCSS {
			s = CSS(value)
		} else {
			s = ByText(value)
		}
		if s.Engine() == "" {
			rt.Fatalf("engine form empty for %q", value)
		}
		if !strings.Contains(s.Engine(), value) {
			rt.Fatalf("engine form %q lost value %q", s.Engine(), value)
		}
	})
}

func TestSelectorUnmarshalYAML(t *testing.T) {
	t.Parallel()

	var s Selector
	if err := yaml.Unmarshal([]byte(`{css: "footer a"}`), &s); err != nil {
		t.Fatalf("css entry: %v", err)
	}
	if s.Kind() != KindCSS || s.Raw() != "footer a" {
		t.Errorf("css entry decoded as %v %q", s.Kind(), s.Raw())
	}

	if err := yaml.Unmarshal([]byte(`{text: "shadow IT"}`), &s); err != nil {
		t.Fatalf("text entry: %v", err)
	}
	if s.Kind() != KindText || s.Raw() != "shadow IT" {
		t.Errorf("text entry decoded as %v %q", s.Kind(), s.Raw())
	}

	if err := yaml.Unmarshal([]byte(`{css: "a", text: "b"}`), &s); err == nil {
		t.Error("entry with both css and text should fail")
	}
	if err := yaml.Unmarshal([]byte(`{}`), &s); err == nil {
		t.Error("empty entry should fail")
	}
}

func TestDefaultCatalogParsesAndCoversPages(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	for _, pageName := range []string{"home", "products", "demo"} {
		set, err := catalog.Page(pageName)
		if err != nil {
			t.Fatalf("catalog missing page %q: %v", pageName, err)
		}
		if len(set) == 0 {
			t.Fatalf("page %q has no selectors", pageName)
		}
		for name, s := range set {
			if s.IsZero() {
				t.Errorf("%s.%s is empty", pageName, name)
			}
		}
	}

	if _, err := catalog.Page("checkout"); err == nil {
		t.Error("unknown page should return an error")
	}

	names := catalog.PageNames()
	if len(names) < 2 {
		t.Errorf("PageNames = %v", names)
	}
}

// Every selector name the page objects reference must exist in the
// catalog, otherwise construction panics at runtime.
func TestPageObjectSelectorNamesExist(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	home, _ := catalog.Page("home")
	for _, name := range []string{
		"header", "main_nav", "solutions_menu", "products_menu",
		"resources_menu", "company_menu", "dropdown_items", "demo_button",
		"login_button", "hero_title", "hero_subtitle", "learn_more_button",
		"customer_stories_link", "tprm_section", "exposure_section",
		"threat_intel_section", "governance_section", "footer",
		"footer_links", "search_button", "search_input",
	} {
		if _, ok := home[name]; !ok {
			t.Errorf("home catalog missing %q", name)
		}
	}

	products, _ := catalog.Page("products")
	for _, name := range []string{
		"page_title", "tprm_title", "vendor_profiles", "ai_assessment",
		"framework_mapping", "exposure_title", "digital_assets", "shadow_it",
		"risk_visualization", "threat_title", "underground_forums",
		"real_time_monitoring", "ransomware_insights", "demo_cta",
		"contact_cta", "learn_cta", "breadcrumbs", "features_list",
		"video_content",
	} {
		if _, ok := products[name]; !ok {
			t.Errorf("products catalog missing %q", name)
		}
	}

	demo, _ := catalog.Page("demo")
	for _, name := range []string{
		"form", "first_name", "last_name", "email", "company", "submit",
		"confirmation", "error_message",
	} {
		if _, ok := demo[name]; !ok {
			t.Errorf("demo catalog missing %q", name)
		}
	}
}

func TestResolveURL(t *testing.T) {
	t.Parallel()

	p := New(nil, "https://www.bitsight.com/")
	if got := p.ResolveURL(""); got != "https://www.bitsight.com" {
		t.Errorf("empty path: %q", got)
	}
	if got := p.ResolveURL("/contact-us"); got != "https://www.bitsight.com/contact-us" {
		t.Errorf("path: %q", got)
	}

	rapid.Check(t, func(rt *rapid.T) {
		path := "/" + rapid.StringMatching(`[a-z0-9/-]{0,40}`).Draw(rt, "path")
		if got := p.ResolveURL(path); got != p.BaseURL()+path {
			rt.Fatalf("ResolveURL(%q) = %q", path, got)
		}
	})
}
