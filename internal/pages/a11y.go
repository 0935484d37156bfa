package pages

import (
	"fmt"
	"strings"

	"github.com/sightline-qa/bitsight-e2e/internal/errs"
)

// FocusNext advances keyboard focus to the next focusable element, the
// way a keyboard user tabs through the page.
func (p *Page) FocusNext() error {
	if err := p.handle.Keyboard().Press("Tab"); err != nil {
		return errs.FromEngine("press Tab", err)
	}
	return nil
}

// ActiveElement describes the currently focused element as
// "tag:name", where name is the element's id, aria-label, or leading
// text, whichever exists first. Focus on the document body yields "".
func (p *Page) ActiveElement() (string, error) {
	result, err := p.handle.Evaluate(`() => {
		const el = document.activeElement;
		if (!el || el === document.body) return "";
		const name = el.id
			|| el.getAttribute("aria-label")
			|| (el.textContent || "").trim().slice(0, 40);
		return name ? el.tagName.toLowerCase() + ":" + name : el.tagName.toLowerCase();
	}`)
	if err != nil {
		return "", errs.FromEngine("read active element", err)
	}
	s, _ := result.(string)
	return s, nil
}

// UnlabeledControls returns a descriptor for every link or button with
// no accessible name and every image with no alt attribute. An empty
// result means screen readers can announce everything interactive.
func (p *Page) UnlabeledControls() ([]string, error) {
	result, err := p.handle.Evaluate(`() => {
		const bad = [];
		for (const el of document.querySelectorAll("a, button")) {
			const name = (el.getAttribute("aria-label") || el.textContent || "").trim();
			if (!name) bad.push(el.tagName.toLowerCase() + (el.id ? "#" + el.id : ""));
		}
		for (const img of document.querySelectorAll("img")) {
			if (!img.hasAttribute("alt")) bad.push("img:" + (img.getAttribute("src") || ""));
		}
		return bad;
	}`)
	if err != nil {
		return nil, errs.FromEngine("audit accessible names", err)
	}
	items, ok := result.([]interface{})
	if !ok {
		return nil, errs.New(errs.Engine, fmt.Sprintf("unexpected audit result %T", result))
	}
	controls := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			controls = append(controls, s)
		}
	}
	return controls, nil
}

// UnlabeledFormFields returns descriptors for form inputs with neither
// a matching label element nor an aria-label.
func (p *Page) UnlabeledFormFields() ([]string, error) {
	result, err := p.handle.Evaluate(`() => {
		const bad = [];
		for (const el of document.querySelectorAll("input, select, textarea")) {
			if (el.type === "hidden" || el.type === "submit") continue;
			const labeled = el.getAttribute("aria-label")
				|| el.getAttribute("placeholder")
				|| (el.id && document.querySelector('label[for="' + el.id + '"]'));
			if (!labeled) bad.push(el.tagName.toLowerCase() + (el.id ? "#" + el.id : ""));
		}
		return bad;
	}`)
	if err != nil {
		return nil, errs.FromEngine("audit form labels", err)
	}
	items, ok := result.([]interface{})
	if !ok {
		return nil, errs.New(errs.Engine, fmt.Sprintf("unexpected audit result %T", result))
	}
	fields := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			fields = append(fields, s)
		}
	}
	return fields, nil
}
