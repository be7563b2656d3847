// Package markup checks served storefront HTML against the page object
// selectors without starting a browser.
package markup

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/demoblaze/storefront-e2e/internal/pages"
)

// Expectation lists selectors that must each match exactly one element of
// the page at Path. Elements rendered by script are not listed.
type Expectation struct {
	Path      string
	Selectors []string
}

// Finding is the match count of one selector on one page
type Finding struct {
	Path     string
	Selector string
	Matches  int
}

// OK reports whether the selector resolves to a single element
func (f Finding) OK() bool {
	return f.Matches == 1
}

// DefaultExpectations covers the static part of the signup, login and cart page objects
func DefaultExpectations() []Expectation {
	return []Expectation{
		{
			Path: "/index.html",
			Selectors: []string{
				pages.SelectorSignupLink,
				pages.SelectorSignupModal,
				pages.SelectorSignupUsername,
				pages.SelectorSignupEmail,
				pages.SelectorSignupPassword,
				pages.SelectorSignupButton,
				pages.SelectorSignupClose,
				pages.SelectorLoginLink,
				pages.SelectorLoginModal,
				pages.SelectorLoginUsername,
				pages.SelectorLoginPassword,
				pages.SelectorLoginButton,
				pages.SelectorLoginClose,
				pages.SelectorCartLink,
			},
		},
		{
			Path: pages.CartPath,
			Selectors: []string{
				pages.SelectorCartLink,
				pages.SelectorCartTotal,
				pages.SelectorPlaceOrderButton,
			},
		},
	}
}

// Inspect parses one HTML document and counts matches for each selector
func Inspect(r io.Reader, exp Expectation) ([]Finding, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", exp.Path, err)
	}

	findings := make([]Finding, 0, len(exp.Selectors))
	for _, selector := range exp.Selectors {
		findings = append(findings, Finding{
			Path:     exp.Path,
			Selector: selector,
			Matches:  doc.Find(selector).Length(),
		})
	}
	return findings, nil
}

// Checker fetches pages from a storefront
type Checker struct {
	Client  *http.Client
	BaseURL string
}

// Check fetches every expected page and inspects it
func (c *Checker) Check(ctx context.Context, expectations []Expectation) ([]Finding, error) {
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	base := strings.TrimRight(c.BaseURL, "/")

	var findings []Finding
	for _, exp := range expectations {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+exp.Path, nil)
		if err != nil {
			return nil, fmt.Errorf("build request for %s: %w", exp.Path, err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", exp.Path, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: unexpected status %d", exp.Path, resp.StatusCode)
		}

		found, err := Inspect(resp.Body, exp)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		findings = append(findings, found...)
	}
	return findings, nil
}

// Broken returns the findings that are not OK
func Broken(findings []Finding) []Finding {
	var broken []Finding
	for _, f := range findings {
		if !f.OK() {
			broken = append(broken, f)
		}
	}
	return broken
}
