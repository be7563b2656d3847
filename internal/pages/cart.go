package pages

import (
	"errors"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// ErrCartEmpty is the assertion failure of VerifyCartNotEmpty
var ErrCartEmpty = errors.New("cart is empty")

// CartPage wraps cart.html
type CartPage struct {
	Page             playwright.Page
	CartURL          string
	CartLink         playwright.Locator
	CartTableRows    playwright.Locator
	TotalPrice       playwright.Locator
	DeleteButtons    playwright.Locator
	PlaceOrderButton playwright.Locator

	expect playwright.PlaywrightAssertions
}

// NewCartPage binds the cart locators to page. baseURL is the storefront
// root, e.g. https://demoblaze.com.
func NewCartPage(page playwright.Page, baseURL string) *CartPage {
	return &CartPage{
		Page:             page,
		CartURL:          strings.TrimRight(baseURL, "/") + CartPath,
		CartLink:         page.Locator(SelectorCartLink),
		CartTableRows:    page.Locator(SelectorCartRows),
		TotalPrice:       page.Locator(SelectorCartTotal),
		DeleteButtons:    page.Locator(SelectorCartDelete),
		PlaceOrderButton: page.Locator(SelectorPlaceOrderButton),
		expect:           playwright.NewPlaywrightAssertions(),
	}
}

// OpenCart clicks the nav link and blocks until the browser is on the cart URL
func (p *CartPage) OpenCart() error {
	if err := p.CartLink.Click(); err != nil {
		return fmt.Errorf("click cart link: %w", err)
	}
	if err := p.Page.WaitForURL(p.CartURL); err != nil {
		return fmt.Errorf("wait for %s: %w", p.CartURL, err)
	}
	return nil
}

// GetCartItems returns the number of cart rows at call time
func (p *CartPage) GetCartItems() (int, error) {
	n, err := p.CartTableRows.Count()
	if err != nil {
		return 0, fmt.Errorf("count cart rows: %w", err)
	}
	return n, nil
}

// VerifyCartNotEmpty fails with ErrCartEmpty when there are no cart rows
func (p *CartPage) VerifyCartNotEmpty() error {
	n, err := p.GetCartItems()
	if err != nil {
		return err
	}
	if n <= 0 {
		return fmt.Errorf("expected cart rows > 0, got %d: %w", n, ErrCartEmpty)
	}
	return nil
}

// DeleteFirstItem clicks the first delete link, if any, and waits until the
// table has one row fewer. It does nothing when there is no delete link.
func (p *CartPage) DeleteFirstItem() error {
	n, err := p.DeleteButtons.Count()
	if err != nil {
		return fmt.Errorf("count delete links: %w", err)
	}
	if n == 0 {
		return nil
	}

	rows, err := p.GetCartItems()
	if err != nil {
		return err
	}
	if err := p.DeleteButtons.First().Click(); err != nil {
		return fmt.Errorf("click first delete link: %w", err)
	}
	if err := p.expect.Locator(p.CartTableRows).ToHaveCount(rows - 1); err != nil {
		return fmt.Errorf("wait for cart to shrink to %d rows: %w", rows-1, err)
	}
	return nil
}

// ProceedToCheckout clicks "Place Order"; the order modal is not awaited
func (p *CartPage) ProceedToCheckout() error {
	if err := p.PlaceOrderButton.Click(); err != nil {
		return fmt.Errorf("click place order: %w", err)
	}
	return nil
}

// GetTotal returns the text of the total price cell
func (p *CartPage) GetTotal() (string, error) {
	total, err := p.TotalPrice.TextContent()
	if err != nil {
		return "", fmt.Errorf("read cart total: %w", err)
	}
	return strings.TrimSpace(total), nil
}
