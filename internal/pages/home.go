package pages

import (
	"time"
)

// HomePage exposes the marketing site's homepage: header navigation with
// dropdown menus, hero section, product sections, footer, and site
// search.
type HomePage struct {
	*Page
	sel map[string]Selector
}

// Home binds a homepage object to a page handle. Selectors come from the
// embedded catalog.
func Home(p *Page) *HomePage {
	set, err := DefaultCatalog().Page("home")
	if err != nil {
		panic(err)
	}
	return &HomePage{Page: p, sel: set}
}

// Open navigates to the site root.
func (h *HomePage) Open() error {
	if err := h.NavigateTo(""); err != nil {
		return err
	}
	return h.WaitForLoad()
}

// Loaded reports whether the homepage rendered its hero title.
func (h *HomePage) Loaded() bool {
	return h.IsVisible(sel(h.sel, "hero_title"), h.Timeout())
}

// openMenu hovers then clicks a navigation menu button and waits until
// the dropdown's entries actually render.
func (h *HomePage) openMenu(name string) error {
	menu := sel(h.sel, name)
	if err := h.Hover(menu); err != nil {
		return err
	}
	if err := h.Click(menu); err != nil {
		return err
	}
	items := sel(h.sel, "dropdown_items")
	_, err := h.waitVisible(CSS(items.Raw()+":visible"), h.Timeout())
	return err
}

// OpenSolutionsMenu opens the Solutions dropdown.
func (h *HomePage) OpenSolutionsMenu() error {
	return h.openMenu("solutions_menu")
}

// OpenProductsMenu opens the Products dropdown.
func (h *HomePage) OpenProductsMenu() error {
	return h.openMenu("products_menu")
}

// OpenResourcesMenu opens the Resources dropdown.
func (h *HomePage) OpenResourcesMenu() error {
	return h.openMenu("resources_menu")
}

// OpenCompanyMenu opens the Company dropdown.
func (h *HomePage) OpenCompanyMenu() error {
	return h.openMenu("company_menu")
}

// DropdownItems returns the texts of the currently open dropdown's
// entries. Call one of the OpenXxxMenu methods first. Closed menus
// share the same selector, so only visible entries count.
func (h *HomePage) DropdownItems() ([]string, error) {
	return h.VisibleTexts(sel(h.sel, "dropdown_items"))
}

// DropdownLinks returns href values of the open dropdown's entries.
func (h *HomePage) DropdownLinks() ([]string, error) {
	return h.visibleAttributeValues(sel(h.sel, "dropdown_items"), "href")
}

// RequestDemo clicks the Request Demo call to action.
func (h *HomePage) RequestDemo() error {
	return h.Click(sel(h.sel, "demo_button"))
}

// LogIn clicks the Log In link.
func (h *HomePage) LogIn() error {
	return h.Click(sel(h.sel, "login_button"))
}

// VerifyNavigationMenu probes each header navigation element and maps
// check name to visibility.
func (h *HomePage) VerifyNavigationMenu() map[string]bool {
	probe := h.Timeout()
	return map[string]bool{
		"solutions": h.IsVisible(sel(h.sel, "solutions_menu"), probe),
		"products":  h.IsVisible(sel(h.sel, "products_menu"), probe),
		"resources": h.IsVisible(sel(h.sel, "resources_menu"), probe),
		"company":   h.IsVisible(sel(h.sel, "company_menu"), probe),
		"demo":      h.IsVisible(sel(h.sel, "demo_button"), probe),
		"login":     h.IsVisible(sel(h.sel, "login_button"), probe),
	}
}

// VerifyHeroSection probes the hero section's elements.
func (h *HomePage) VerifyHeroSection() map[string]bool {
	probe := h.Timeout()
	return map[string]bool{
		"hero_title":       h.IsVisible(sel(h.sel, "hero_title"), probe),
		"hero_subtitle":    h.IsVisible(sel(h.sel, "hero_subtitle"), probe),
		"learn_more":       h.IsVisible(sel(h.sel, "learn_more_button"), probe),
		"customer_stories": h.IsVisible(sel(h.sel, "customer_stories_link"), probe),
	}
}

// VerifyProductSections probes the four product section teasers.
func (h *HomePage) VerifyProductSections() map[string]bool {
	probe := h.Timeout()
	return map[string]bool{
		"tprm":         h.IsVisible(sel(h.sel, "tprm_section"), probe),
		"exposure":     h.IsVisible(sel(h.sel, "exposure_section"), probe),
		"threat_intel": h.IsVisible(sel(h.sel, "threat_intel_section"), probe),
		"governance":   h.IsVisible(sel(h.sel, "governance_section"), probe),
	}
}

// FooterLinks returns every href in the footer.
func (h *HomePage) FooterLinks() ([]string, error) {
	return h.LinksWithin(sel(h.sel, "footer"))
}

// Search opens the site search if present, submits the query, and
// reports whether a search control existed at all.
func (h *HomePage) Search(query string) (bool, error) {
	button := sel(h.sel, "search_button")
	if !h.IsVisible(button, 2*time.Second) {
		return false, nil
	}
	if err := h.Click(button); err != nil {
		return true, err
	}
	input := sel(h.sel, "search_input")
	if err := h.Fill(input, query); err != nil {
		return true, err
	}
	if err := h.Press(input, "Enter"); err != nil {
		return true, err
	}
	return true, h.WaitForLoad()
}
