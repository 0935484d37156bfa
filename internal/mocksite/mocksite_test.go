package mocksite

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetch(t *testing.T, srv *httptest.Server, path string) (*http.Response, *goquery.Document) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return resp, doc
}

func TestHomePageChrome(t *testing.T) {
	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, doc := fetch(t, srv, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 1, doc.Find("header nav").Length())
	assert.Equal(t, 4, doc.Find("button[data-menu]").Length())
	assert.Equal(t, 1, doc.Find("h1").Length())
	assert.Equal(t, 1, doc.Find("h2").Length())
	assert.Equal(t, 1, doc.Find(`[aria-label="Search"]`).Length())
	assert.Equal(t, 1, doc.Find(`input[type="search"]`).Length())
	assert.GreaterOrEqual(t, doc.Find("footer a[href]").Length(), 4)

	// Dropdown links exist in the DOM but start hidden.
	menuLinks := doc.Find(`[role="menu"] a`)
	assert.Equal(t, 12, menuLinks.Length())
	doc.Find(`[role="menu"]`).Each(func(_ int, s *goquery.Selection) {
		_, hidden := s.Attr("hidden")
		assert.True(t, hidden)
	})
}

func TestProductPagesHaveBreadcrumbsAndFeatures(t *testing.T) {
	srv := httptest.NewServer(Handler())
	defer srv.Close()

	for _, path := range []string{
		"/products/third-party-risk-management",
		"/solutions/exposure-management",
		"/products/cyber-threat-intelligence",
	} {
		resp, doc := fetch(t, srv, path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, 1, doc.Find(`nav[aria-label="breadcrumb"]`).Length(), path)
		assert.GreaterOrEqual(t, doc.Find("main li").Length(), 2, path)
	}
}

func TestDemoFormRendersLabeledRequiredFields(t *testing.T) {
	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, doc := fetch(t, srv, "/demo/security-rating")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	form := doc.Find("form#demo-request-form")
	require.Equal(t, 1, form.Length())
	assert.Equal(t, 4, form.Find("input[required]").Length())
	form.Find("input").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		assert.Equal(t, 1, doc.Find(`label[for="`+id+`"]`).Length(), id)
	})
	assert.Equal(t, 1, form.Find(`button[type="submit"]`).Length())
}

func TestDemoFormSubmission(t *testing.T) {
	srv := httptest.NewServer(Handler())
	defer srv.Close()

	complete := url.Values{
		"first_name": {"Ada"},
		"last_name":  {"Lovelace"},
		"email":      {"ada@example.com"},
		"company":    {"Analytical Engines Ltd"},
	}
	resp, err := http.PostForm(srv.URL+"/demo/security-rating", complete)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, doc.Find(".webform-confirmation").Length())

	incomplete := url.Values{"first_name": {"Ada"}}
	resp, err = http.PostForm(srv.URL+"/demo/security-rating", incomplete)
	require.NoError(t, err)
	defer resp.Body.Close()
	doc, err = goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, 1, doc.Find(`.form-error[role="alert"]`).Length())
	assert.Equal(t, 1, doc.Find("form#demo-request-form").Length(),
		"rejected submission should show the form again")
}

func TestSparseEmptyElementHasRenderBox(t *testing.T) {
	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, doc := fetch(t, srv, "/sparse")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	span := doc.Find("span#empty")
	require.Equal(t, 1, span.Length())
	assert.Empty(t, span.Text())
	// A zero-size element is invisible to the browser engine and could
	// not even be read; the fixture gives it a 1px box.
	style, _ := span.Attr("style")
	assert.Contains(t, style, "width:1px")
	assert.Contains(t, style, "height:1px")
}

func TestUnknownPathReturns404(t *testing.T) {
	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, doc := fetch(t, srv, "/this-page-does-not-exist")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, doc.Find("h1").Text(), "Page Not Found")
	assert.Equal(t, 1, doc.Find(`a[href="/"]`).Length())
}

func TestSearchEscapesQuery(t *testing.T) {
	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, doc := fetch(t, srv, `/search?q=%3Cscript%3Ealert(1)%3C%2Fscript%3E`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, doc.Find("h1").Text(), "<script>alert(1)</script>")
	assert.Equal(t, 0, doc.Find("main script").Length())
}

func TestPixelImageServed(t *testing.T) {
	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/static/pixel.png")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}
