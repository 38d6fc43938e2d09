package browser_test

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	web "pdgc/internal/adapters/http"
	"pdgc/internal/adapters/http/metrics"
	"pdgc/internal/domain/featureflag"
	"pdgc/internal/domain/site"
)

// testApp holds the running test server and Playwright handles.
type testApp struct {
	BaseURL string
	Site    *web.Site
	Server  *http.Server
	PW      *playwright.Playwright
	Browser playwright.Browser
}

// fixtureProfile is the default profile without a headline, so the page
// heading falls back to the tagline.
func fixtureProfile() site.Profile {
	p := site.DefaultProfile()
	p.Headline = ""
	return p
}

// newTestApp builds the site with the given flags and starts an HTTP server.
func newTestApp(t *testing.T, flags featureflag.Set) *testApp {
	t.Helper()

	s, err := web.NewSite(fixtureProfile(), flags)
	if err != nil {
		t.Fatalf("failed to build site: %v", err)
	}
	s.Metrics = metrics.New()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	mux := web.NewMux(s, web.Options{
		CSRFKey: make([]byte, 32),
		TrustedOrigins: []string{
			fmt.Sprintf("127.0.0.1:%d", port),
			fmt.Sprintf("localhost:%d", port),
		},
		Version: "browser-test",
	})
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	// Wait for server to be ready
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/healthz")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	// Start Playwright
	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	app := &testApp{
		BaseURL: baseURL,
		Site:    s,
		Server:  srv,
		PW:      pw,
		Browser: browser,
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
	})

	return app
}

// newPage creates a new browser page (tab) with third-party embeds stubbed.
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	stubThirdParty(t, page)
	return page
}

// stubThirdParty answers vendor requests locally so tests never touch the network.
func stubThirdParty(t *testing.T, page playwright.Page) {
	t.Helper()
	stub := func(contentType, body string) func(playwright.Route) {
		return func(route playwright.Route) {
			route.Fulfill(playwright.RouteFulfillOptions{
				Status:      playwright.Int(200),
				ContentType: playwright.String(contentType),
				Body:        body,
			})
		}
	}
	if err := page.Route("**/embed-form-script.min.js", stub("application/javascript", "/* zeffy */")); err != nil {
		t.Fatalf("failed to stub zeffy script: %v", err)
	}
	if err := page.Route("https://www.zeffy.com/**", stub("text/html", "<!doctype html><title>zeffy</title>")); err != nil {
		t.Fatalf("failed to stub zeffy embeds: %v", err)
	}
}

// open navigates to the donation page and waits for the client script.
func (a *testApp) open(t *testing.T, page playwright.Page) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + "/"); err != nil {
		t.Fatalf("failed to navigate: %v", err)
	}
	if _, err := page.WaitForFunction("() => window.pdgc !== undefined", nil); err != nil {
		t.Fatalf("client script did not load: %v", err)
	}
}

// theme returns the current data-theme attribute of the document.
func theme(t *testing.T, page playwright.Page) string {
	t.Helper()
	v, err := page.Locator("html").GetAttribute("data-theme")
	if err != nil {
		t.Fatalf("failed to read data-theme: %v", err)
	}
	return v
}

// count returns the number of elements matching selector.
func count(t *testing.T, page playwright.Page, selector string) int {
	t.Helper()
	n, err := page.Locator(selector).Count()
	if err != nil {
		t.Fatalf("failed to count %s: %v", selector, err)
	}
	return n
}
