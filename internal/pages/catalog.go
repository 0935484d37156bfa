package pages

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed selectors.yaml
var selectorsYAML []byte

// Catalog maps page name -> selector name -> selector. The default
// catalog ships embedded; the snapshot audit and domtool read the same
// data, so there is exactly one source of selector truth.
type Catalog map[string]map[string]Selector

// ParseCatalog decodes a yaml selector catalog.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse selector catalog: %w", err)
	}
	if len(c) == 0 {
		return nil, fmt.Errorf("selector catalog is empty")
	}
	return c, nil
}

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     Catalog
	defaultCatalogErr  error
)

// DefaultCatalog returns the embedded catalog. The embed is part of the
// build, so a malformed file is a programmer error surfaced at first use.
func DefaultCatalog() Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = ParseCatalog(selectorsYAML)
	})
	if defaultCatalogErr != nil {
		panic(defaultCatalogErr)
	}
	return defaultCatalog
}

// Page returns the named page's selector set.
func (c Catalog) Page(name string) (map[string]Selector, error) {
	set, ok := c[name]
	if !ok {
		return nil, fmt.Errorf("no selector set for page %q", name)
	}
	return set, nil
}

// PageNames returns the catalog's page names, sorted.
func (c Catalog) PageNames() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sel returns a named selector from a set, panicking on a missing name.
// Page objects reference catalog entries by constant name; a typo there
// is unreachable-by-tests dead config and should fail loudly.
func sel(set map[string]Selector, name string) Selector {
	s, ok := set[name]
	if !ok {
		panic(fmt.Sprintf("selector %q missing from catalog", name))
	}
	return s
}
