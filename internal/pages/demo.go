package pages

// PathDemoRequest is the demo request form's path.
const PathDemoRequest = "/demo/security-rating"

// DemoPage drives the demo request form: open, fill, submit, and read
// back the outcome.
type DemoPage struct {
	*Page
	sel map[string]Selector
}

// Demo binds a demo request page object to a page handle.
func Demo(p *Page) *DemoPage {
	set, err := DefaultCatalog().Page("demo")
	if err != nil {
		panic(err)
	}
	return &DemoPage{Page: p, sel: set}
}

// Open navigates to the demo request form.
func (d *DemoPage) Open() error {
	if err := d.NavigateTo(PathDemoRequest); err != nil {
		return err
	}
	return d.WaitForLoad()
}

// Loaded reports whether the request form rendered.
func (d *DemoPage) Loaded() bool {
	return d.IsVisible(sel(d.sel, "form"), d.Timeout())
}

// VerifyFormFields probes each form control's visibility.
func (d *DemoPage) VerifyFormFields() map[string]bool {
	probe := d.Timeout()
	return map[string]bool{
		"first_name": d.IsVisible(sel(d.sel, "first_name"), probe),
		"last_name":  d.IsVisible(sel(d.sel, "last_name"), probe),
		"email":      d.IsVisible(sel(d.sel, "email"), probe),
		"company":    d.IsVisible(sel(d.sel, "company"), probe),
		"submit":     d.IsVisible(sel(d.sel, "submit"), probe),
	}
}

// Lead holds the demo request form's values. Empty fields are left
// untouched, so a partial Lead produces a partially filled form.
type Lead struct {
	FirstName string
	LastName  string
	Email     string
	Company   string
}

// FillLead fills the request form with the lead's non-empty fields.
func (d *DemoPage) FillLead(l Lead) error {
	fields := []struct {
		name  string
		value string
	}{
		{"first_name", l.FirstName},
		{"last_name", l.LastName},
		{"email", l.Email},
		{"company", l.Company},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := d.Fill(sel(d.sel, f.name), f.value); err != nil {
			return err
		}
	}
	return nil
}

// FieldValue returns the current value of a named form field.
func (d *DemoPage) FieldValue(name string) (string, error) {
	return d.InputValue(sel(d.sel, name))
}

// Submit clicks the form's submit button. With empty required fields
// the browser blocks submission, so Submit returning nil does not mean
// the form was accepted; use Submitted for that.
func (d *DemoPage) Submit() error {
	if err := d.Click(sel(d.sel, "submit")); err != nil {
		return err
	}
	return d.WaitForLoad()
}

// Submitted reports whether the confirmation message rendered.
func (d *DemoPage) Submitted() bool {
	return d.IsVisible(sel(d.sel, "confirmation"), d.Timeout())
}

// ValidationError returns the form's error message, or "" when none is
// shown.
func (d *DemoPage) ValidationError() string {
	s := sel(d.sel, "error_message")
	if !d.IsVisible(s, d.Timeout()) {
		return ""
	}
	text, err := d.Text(s)
	if err != nil {
		return ""
	}
	return text
}
