package pages

import "strings"

// Product page paths on the marketing site.
const (
	PathTPRM               = "/products/third-party-risk-management"
	PathExposureManagement = "/solutions/exposure-management"
	PathThreatIntelligence = "/products/cyber-threat-intelligence"
)

// ProductsPage exposes the product detail pages: TPRM, Exposure
// Management, and Cyber Threat Intelligence.
type ProductsPage struct {
	*Page
	sel map[string]Selector
}

// Products binds a products page object to a page handle.
func Products(p *Page) *ProductsPage {
	set, err := DefaultCatalog().Page("products")
	if err != nil {
		panic(err)
	}
	return &ProductsPage{Page: p, sel: set}
}

func (pp *ProductsPage) open(path string) error {
	if err := pp.NavigateTo(path); err != nil {
		return err
	}
	return pp.WaitForLoad()
}

// GoToTPRM opens the Third-Party Risk Management product page.
func (pp *ProductsPage) GoToTPRM() error {
	return pp.open(PathTPRM)
}

// GoToExposureManagement opens the Exposure Management page.
func (pp *ProductsPage) GoToExposureManagement() error {
	return pp.open(PathExposureManagement)
}

// GoToThreatIntelligence opens the Cyber Threat Intelligence page.
func (pp *ProductsPage) GoToThreatIntelligence() error {
	return pp.open(PathThreatIntelligence)
}

// VerifyTPRMElements probes the TPRM page's expected content.
func (pp *ProductsPage) VerifyTPRMElements() map[string]bool {
	probe := pp.Timeout()
	return map[string]bool{
		"title":             pp.IsVisible(sel(pp.sel, "tprm_title"), probe),
		"vendor_profiles":   pp.IsVisible(sel(pp.sel, "vendor_profiles"), probe),
		"ai_assessment":     pp.IsVisible(sel(pp.sel, "ai_assessment"), probe),
		"framework_mapping": pp.IsVisible(sel(pp.sel, "framework_mapping"), probe),
	}
}

// VerifyExposureElements probes the Exposure Management page's content.
func (pp *ProductsPage) VerifyExposureElements() map[string]bool {
	probe := pp.Timeout()
	return map[string]bool{
		"title":              pp.IsVisible(sel(pp.sel, "exposure_title"), probe),
		"digital_assets":     pp.IsVisible(sel(pp.sel, "digital_assets"), probe),
		"shadow_it":          pp.IsVisible(sel(pp.sel, "shadow_it"), probe),
		"risk_visualization": pp.IsVisible(sel(pp.sel, "risk_visualization"), probe),
	}
}

// VerifyThreatIntelElements probes the Threat Intelligence page's content.
func (pp *ProductsPage) VerifyThreatIntelElements() map[string]bool {
	probe := pp.Timeout()
	return map[string]bool{
		"title":      pp.IsVisible(sel(pp.sel, "threat_title"), probe),
		"forums":     pp.IsVisible(sel(pp.sel, "underground_forums"), probe),
		"real_time":  pp.IsVisible(sel(pp.sel, "real_time_monitoring"), probe),
		"ransomware": pp.IsVisible(sel(pp.sel, "ransomware_insights"), probe),
	}
}

// VerifyCTAButtons probes the call-to-action links product pages share.
func (pp *ProductsPage) VerifyCTAButtons() map[string]bool {
	probe := pp.Timeout()
	return map[string]bool{
		"demo":    pp.IsVisible(sel(pp.sel, "demo_cta"), probe),
		"contact": pp.IsVisible(sel(pp.sel, "contact_cta"), probe),
		"learn":   pp.IsVisible(sel(pp.sel, "learn_cta"), probe),
	}
}

// ProductFeatures extracts substantial list items from the page; short
// fragments are navigation noise, not features.
func (pp *ProductsPage) ProductFeatures() ([]string, error) {
	texts, err := pp.Texts(sel(pp.sel, "features_list"))
	if err != nil {
		return nil, err
	}
	features := make([]string, 0, len(texts))
	for _, text := range texts {
		if len(strings.TrimSpace(text)) > 10 {
			features = append(features, text)
		}
	}
	return features, nil
}

// HasVideoContent reports whether the page embeds a product video.
// Not every product page carries one, so this is a probe, not a check.
func (pp *ProductsPage) HasVideoContent() bool {
	return pp.IsVisible(sel(pp.sel, "video_content"), pp.Timeout())
}

// HasBreadcrumbs reports whether breadcrumb navigation is present.
func (pp *ProductsPage) HasBreadcrumbs() bool {
	return pp.IsVisible(sel(pp.sel, "breadcrumbs"), pp.Timeout())
}

// OnProductPage reports whether the current URL is under a product or
// solution path.
func (pp *ProductsPage) OnProductPage() bool {
	url := pp.URL()
	return strings.Contains(url, "/products") || strings.Contains(url, "/solutions")
}
