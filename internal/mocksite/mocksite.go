// Package mocksite serves a hermetic stand-in for the marketing site:
// the same header navigation, dropdown menus, hero, product pages,
// search, and footer the suite drives in production, rendered from
// static markup. Browser tests run against it the way the teacher suite
// runs against an in-process server, so the page-object layer is
// testable without the live site.
package mocksite

import (
	"encoding/base64"
	"fmt"
	"html"
	"net/http"
	"strconv"
	"time"
)

// onePixelPNG is a 1x1 transparent PNG so fixture images genuinely load.
var onePixelPNG, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")

// Handler returns the fixture site's HTTP handler.
func Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			notFound(w)
			return
		}
		render(w, "Security Ratings & Cyber Risk Management", homeBody)
	})

	mux.HandleFunc("/products/third-party-risk-management", page(
		"Third-Party Risk Management", tprmBody))
	mux.HandleFunc("/solutions/exposure-management", page(
		"Exposure Management", exposureBody))
	mux.HandleFunc("/products/cyber-threat-intelligence", page(
		"Cyber Threat Intelligence", threatIntelBody))

	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		body := fmt.Sprintf(`
<h1>Search results for &quot;%s&quot;</h1>
<ul class="search-results">
  <li><a href="/products/third-party-risk-management">Third-Party Risk Management</a></li>
  <li><a href="/solutions/exposure-management">Exposure Management</a></li>
</ul>`, html.EscapeString(query))
		render(w, "Search", body)
	})

	mux.HandleFunc("/demo/security-rating", demoRequest)

	for _, path := range []string{
		"/login",
		"/customers",
		"/contact-us",
		"/company/about",
		"/company/careers",
		"/company/newsroom",
		"/resources/blog",
		"/resources/reports",
		"/resources/events",
		"/solutions/security-performance-management",
		"/solutions/national-cybersecurity",
		"/products/security-ratings",
		"/legal/privacy-policy",
	} {
		mux.HandleFunc(path, page(titleFor(path), genericBody(titleFor(path))))
	}

	// Pages exercising the suite's own failure paths.
	mux.HandleFunc("/sparse", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, `<!DOCTYPE html><html lang="en"><head><title>Sparse</title></head>`+
			`<body><p>Nothing to see here.</p>`+
			// Content-less but with a real box: a zero-size inline element
			// is never "visible" to the engine and could not be read at all.
			`<span id="empty" style="display:inline-block;width:1px;height:1px"></span>`+
			`</body></html>`)
	})
	mux.HandleFunc("/broken-links", page("Broken Links", `
<h1>Broken Links</h1>
<a href="/definitely-missing-1">Dead link one</a>
<a href="/definitely-missing-2">Dead link two</a>
<a href="/contact-us">Working link</a>`))
	mux.HandleFunc("/broken-images", page("Broken Images", `
<h1>Broken Images</h1>
<img src="/static/missing.png" alt="missing" width="64" height="64">
<img src="/static/pixel.png" alt="present" width="64" height="64">`))
	mux.HandleFunc("/console-error", func(w http.ResponseWriter, r *http.Request) {
		render(w, "Console Error", `<h1>Console Error</h1>`+
			`<script>console.error("fixture console error");</script>`)
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		delayMS, _ := strconv.Atoi(r.URL.Query().Get("delay_ms"))
		if delayMS > 0 {
			time.Sleep(time.Duration(delayMS) * time.Millisecond)
		}
		render(w, "Slow", `<h1>Slow page</h1>`)
	})

	mux.HandleFunc("/static/pixel.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(onePixelPNG)
	})

	return mux
}

func page(title, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, title, body)
	}
}

// demoRequest serves the demo form and accepts its submission. Every
// field is required both client-side (required attributes keep the
// browser from submitting an incomplete form) and server-side.
func demoRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		render(w, "Request a Demo", demoFormBody(""))
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	for _, field := range []string{"first_name", "last_name", "email", "company"} {
		if r.PostFormValue(field) == "" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			render(w, "Request a Demo", demoFormBody("All fields are required."))
			return
		}
	}
	render(w, "Thank You", demoThanksBody)
}

func demoFormBody(errorMsg string) string {
	alert := ""
	if errorMsg != "" {
		alert = fmt.Sprintf(`<div class="form-error" role="alert">%s</div>`,
			html.EscapeString(errorMsg))
	}
	return fmt.Sprintf(`
<nav aria-label="breadcrumb"><a href="/">Home</a> / <span>Request a Demo</span></nav>
<h1>Request a Demo</h1>
<p>See your security rating and how BitSight helps you manage cyber risk.</p>
%s
<form id="demo-request-form" class="webform-submission-form" action="/demo/security-rating" method="post">
<label for="edit-first-name">First Name</label>
<input type="text" id="edit-first-name" name="first_name" required>
<label for="edit-last-name">Last Name</label>
<input type="text" id="edit-last-name" name="last_name" required>
<label for="edit-email">Business Email</label>
<input type="email" id="edit-email" name="email" required>
<label for="edit-company">Company</label>
<input type="text" id="edit-company" name="company" required>
<button type="submit" class="webform-button--submit">Submit Request</button>
</form>`, alert)
}

const demoThanksBody = `
<h1>Thank You</h1>
<div class="webform-confirmation" role="status">
<p>Thank you for your interest. A member of our team will reach out shortly.</p>
</div>
<a href="/">Back to Home</a>`

func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprint(w, `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Page Not Found | BitSight</title></head>
<body>
<h1>404 &mdash; Page Not Found</h1>
<p>We couldn't find the page you were looking for.</p>
<a href="/">Back to Home</a>
</body>
</html>`)
}

func titleFor(path string) string {
	switch path {
	case "/login":
		return "Log In"
	case "/customers":
		return "Customer Stories"
	case "/contact-us":
		return "Contact Us"
	default:
		return "BitSight"
	}
}

func genericBody(title string) string {
	return fmt.Sprintf(`
<h1>%s</h1>
<p>Learn how security ratings help you manage cyber risk across your organization.</p>
<a href="/contact-us">Contact Sales</a>`, html.EscapeString(title))
}

func render(w http.ResponseWriter, title, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, layout, html.EscapeString(title), body)
}

// layout carries the shared chrome: header nav with dropdown menus,
// search form, demo and login actions, and the footer.
const layout = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s | BitSight</title>
<style>
[hidden] { display: none !important; }
header.site-header { display: flex; gap: 1rem; padding: 1rem; }
footer.site-footer { padding: 2rem 1rem; }
</style>
</head>
<body>
<header class="site-header">
<nav class="main-menu" aria-label="Main">
<a class="site-logo" href="/">BitSight</a>
<button class="main-menu-block__item-link" data-menu="solutions">Solutions</button>
<div role="menu" id="menu-solutions" hidden>
<a href="/solutions/exposure-management">Exposure Management</a>
<a href="/solutions/security-performance-management">Security Performance Management</a>
<a href="/solutions/national-cybersecurity">National Cybersecurity</a>
</div>
<button class="main-menu-block__item-link" data-menu="products">Products</button>
<div role="menu" id="menu-products" hidden>
<a href="/products/security-ratings">Security Ratings</a>
<a href="/products/third-party-risk-management">Third-Party Risk Management</a>
<a href="/products/cyber-threat-intelligence">Cyber Threat Intelligence</a>
</div>
<button class="main-menu-block__item-link" data-menu="resources">Resources</button>
<div role="menu" id="menu-resources" hidden>
<a href="/resources/blog">Blog</a>
<a href="/resources/reports">Reports</a>
<a href="/resources/events">Events</a>
</div>
<button class="main-menu-block__item-link" data-menu="company">Company</button>
<div role="menu" id="menu-company" hidden>
<a href="/company/about">About</a>
<a href="/company/careers">Careers</a>
<a href="/company/newsroom">Newsroom</a>
</div>
<button aria-label="Search" class="search-toggle">Search</button>
<form id="views-exposed-form-search-search-page" action="/search" method="get" hidden>
<input type="search" name="q" placeholder="Search the site">
</form>
<a class="button--filled-white" href="/demo/security-rating">Request Demo</a>
<a href="/login">Log In</a>
</nav>
</header>
<main>
%s
</main>
<footer class="site-footer footer">
<a href="/company/about">About</a>
<a href="/contact-us">Contact</a>
<a href="/legal/privacy-policy">Privacy Policy</a>
<a href="/resources/blog">Blog</a>
<p>&copy; 2024 BitSight Technologies, Inc.</p>
</footer>
<script>
document.querySelectorAll('button[data-menu]').forEach(function (btn) {
  btn.addEventListener('click', function () {
    document.querySelectorAll('[role="menu"]').forEach(function (m) { m.hidden = true; });
    var menu = document.getElementById('menu-' + btn.dataset.menu);
    if (menu) { menu.hidden = false; }
  });
});
var searchToggle = document.querySelector('[aria-label="Search"]');
if (searchToggle) {
  searchToggle.addEventListener('click', function () {
    var form = document.getElementById('views-exposed-form-search-search-page');
    if (form) { form.hidden = !form.hidden; }
  });
}
</script>
</body>
</html>
`

const homeBody = `
<section class="hero-homepage">
<div class="hero-homepage__title">
<h1>AI-powered intelligence for cyber risk</h1>
<h2>See the risk others miss across your entire attack surface</h2>
<a class="button--filled-white" href="/demo/security-rating">Learn more</a>
<a href="/customers">See customer stories</a>
</div>
<img src="/static/pixel.png" alt="Platform overview" width="640" height="360">
</section>
<section class="product-teasers">
<article>
<h3>Third-Party Risk Management</h3>
<p>Continuously monitor every vendor in your supply chain.</p>
<a href="/products/third-party-risk-management">Learn more</a>
</article>
<article>
<h3>Exposure Management</h3>
<p>Discover and prioritize exposure across your digital assets.</p>
<a href="/solutions/exposure-management">Learn more</a>
</article>
<article>
<h3>Cyber Threat Intelligence</h3>
<p>Track adversaries before they reach your perimeter.</p>
<a href="/products/cyber-threat-intelligence">Learn more</a>
</article>
<article>
<h3>Governance &amp; Reporting</h3>
<p>Report cyber risk in the language your board speaks.</p>
<a href="/products/security-ratings">Learn more</a>
</article>
</section>`

const tprmBody = `
<nav aria-label="breadcrumb"><a href="/">Home</a> / <span>Third-Party Risk Management</span></nav>
<h1>Third-Party Risk Management</h1>
<p>Continuously monitor vendor profiles across your supply chain, using
AI to accelerate assessments and map evidence to security frameworks.</p>
<ul>
<li>Automated vendor profiles with continuous monitoring</li>
<li>AI to accelerate assessments and evidence collection</li>
<li>Control mapping across common security frameworks</li>
</ul>
<img src="/static/pixel.png" alt="TPRM dashboard" width="640" height="360">
<video src="/static/tour.mp4" title="Product tour" preload="none" width="640" height="360"></video>
<a href="/demo/security-rating">Request a Demo</a>
<a href="/contact-us">Contact Sales</a>
<a href="/resources/reports">Learn more</a>`

const exposureBody = `
<nav aria-label="breadcrumb"><a href="/">Home</a> / <span>Exposure Management</span></nav>
<h1>Exposure Management</h1>
<p>Map all your digital assets, surface shadow IT before it becomes
risk, and visualize areas of concentrated exposure.</p>
<ul>
<li>Continuous discovery of digital assets and shadow IT</li>
<li>Heat maps that visualize areas of concentrated risk</li>
</ul>
<img src="/static/pixel.png" alt="Exposure map" width="640" height="360">
<a href="/demo/security-rating">Request a Demo</a>
<a href="/contact-us">Contact Sales</a>
<a href="/resources/reports">Learn more</a>`

const threatIntelBody = `
<nav aria-label="breadcrumb"><a href="/">Home</a> / <span>Cyber Threat Intelligence</span></nav>
<h1>Cyber Threat Intelligence</h1>
<p>Real-time monitoring of underground forums and ransomware groups,
curated by analysts and delivered where your team works.</p>
<ul>
<li>Coverage of underground forums and criminal marketplaces</li>
<li>Tracking of active ransomware groups and their victims</li>
<li>Real-time alerts on emerging campaigns</li>
</ul>
<img src="/static/pixel.png" alt="Threat intel feed" width="640" height="360">
<a href="/demo/security-rating">Request a Demo</a>
<a href="/contact-us">Contact Sales</a>
<a href="/resources/reports">Learn more</a>`
