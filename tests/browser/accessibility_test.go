package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sightline-qa/bitsight-e2e/internal/pages"
)

func TestRegressionKeyboardTabTraversesHeader(t *testing.T) {
	env := Setup(t)
	env.InitBrowser(t)

	home := pages.Home(env.NewPage(t))
	require.NoError(t, home.Open())

	// Tab through the header: every stop must be a real, describable
	// element, and the main navigation must be reachable without a mouse.
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		require.NoError(t, home.FocusNext())
		active, err := home.ActiveElement()
		require.NoError(t, err)
		require.NotEmpty(t, active, "tab stop %d landed nowhere", i+1)
		seen[active] = true
	}

	assert.GreaterOrEqual(t, len(seen), 6, "tab order should move, not loop: %v", seen)
	for _, want := range []string{"button:Solutions", "button:Products", "a:Request Demo"} {
		assert.Containsf(t, seen, want, "%s should be keyboard-reachable", want)
	}
}

func TestRegressionHomePageControlsAreLabeled(t *testing.T) {
	env := Setup(t)
	env.InitBrowser(t)

	home := pages.Home(env.NewPage(t))
	require.NoError(t, home.Open())

	unlabeled, err := home.UnlabeledControls()
	require.NoError(t, err)
	assert.Empty(t, unlabeled, "every link, button, and image needs an accessible name")
}

func TestRegressionProductPagesControlsAreLabeled(t *testing.T) {
	env := Setup(t)
	env.InitBrowser(t)

	products := pages.Products(env.NewPage(t))
	openers := map[string]func() error{
		"tprm":     products.GoToTPRM,
		"exposure": products.GoToExposureManagement,
		"threat":   products.GoToThreatIntelligence,
	}
	for name, open := range openers {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, open())
			unlabeled, err := products.UnlabeledControls()
			require.NoError(t, err)
			assert.Empty(t, unlabeled)
		})
	}
}

func TestRegressionDemoFormFieldsAreLabeled(t *testing.T) {
	env := Setup(t)
	env.InitBrowser(t)

	demo := pages.Demo(env.NewPage(t))
	require.NoError(t, demo.Open())

	unlabeled, err := demo.UnlabeledFormFields()
	require.NoError(t, err)
	assert.Empty(t, unlabeled, "every input needs a label or aria-label")
}

func TestRegressionSearchToggleHasAriaLabel(t *testing.T) {
	env := Setup(t)
	env.InitBrowser(t)

	home := pages.Home(env.NewPage(t))
	require.NoError(t, home.Open())

	label, err := home.Attribute(pages.CSS("button.search-toggle"), "aria-label")
	require.NoError(t, err)
	assert.Equal(t, "Search", label)
}
