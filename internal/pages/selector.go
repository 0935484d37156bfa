package pages

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind distinguishes how a selector is interpreted by the automation
// engine. CSS selectors may use engine pseudo-classes like :has-text();
// text selectors match on visible text content.
type Kind string

const (
	KindCSS  Kind = "css"
	KindText Kind = "text"
)

// Selector identifies zero or more DOM elements. It is a tagged value, not
// a bare string, so a CSS path can never be confused with a free-text
// matcher at a call site.
type Selector struct {
	kind  Kind
	value string
}

// CSS creates a CSS selector.
func CSS(value string) Selector {
	return Selector{kind: KindCSS, value: value}
}

// ByText creates a visible-text selector.
func ByText(value string) Selector {
	return Selector{kind: KindText, value: value}
}

// Kind returns the selector kind.
func (s Selector) Kind() Kind {
	return s.kind
}

// Raw returns the selector value without engine syntax.
func (s Selector) Raw() string {
	return s.value
}

// IsZero reports whether the selector is unset.
func (s Selector) IsZero() bool {
	return s.value == ""
}

// Engine returns the form the automation engine resolves.
func (s Selector) Engine() string {
	if s.kind == KindText {
		return "text=" + s.value
	}
	return s.value
}

func (s Selector) String() string {
	return s.Engine()
}

// UnmarshalYAML decodes a catalog entry of the form {css: "..."} or
// {text: "..."}.
func (s *Selector) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		CSS  string `yaml:"css"`
		Text string `yaml:"text"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	switch {
	case raw.CSS != "" && raw.Text != "":
		return fmt.Errorf("selector entry has both css and text (line %d)", node.Line)
	case raw.CSS != "":
		*s = CSS(raw.CSS)
	case raw.Text != "":
		*s = ByText(raw.Text)
	default:
		return fmt.Errorf("selector entry needs css or text (line %d)", node.Line)
	}
	return nil
}
