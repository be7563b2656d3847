package pages

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
)

// selectorLocator remembers the selector it was created with
type selectorLocator struct {
	playwright.Locator
	selector string
}

// recordingPage hands out selectorLocators; all other methods panic
type recordingPage struct {
	playwright.Page
}

func (recordingPage) Locator(selector string, _ ...playwright.PageLocatorOptions) playwright.Locator {
	return selectorLocator{selector: selector}
}

func selectorOf(l playwright.Locator) string {
	return l.(selectorLocator).selector
}

func TestNewSignupPage_Selectors(t *testing.T) {
	p := NewSignupPage(recordingPage{})

	assert.Equal(t, "#signin2", selectorOf(p.SignupLink))
	assert.Equal(t, "#sign-username", selectorOf(p.UsernameInput))
	assert.Equal(t, "#sign-email", selectorOf(p.EmailInput))
	assert.Equal(t, "#sign-password", selectorOf(p.PasswordInput))
	assert.Equal(t, "button[onclick='register()']", selectorOf(p.SignupButton))
	assert.Equal(t, "#signInModal .close", selectorOf(p.CloseButton))
	assert.Equal(t, "#signInModal", selectorOf(p.SignupModal))
}

func TestNewLoginPage_Selectors(t *testing.T) {
	p := NewLoginPage(recordingPage{})

	assert.Equal(t, "#login2", selectorOf(p.LoginLink))
	assert.Equal(t, "#logInModal", selectorOf(p.LoginModal))
	assert.Equal(t, "#loginusername", selectorOf(p.UsernameInput))
	assert.Equal(t, "#loginpassword", selectorOf(p.PasswordInput))
	assert.Equal(t, "button[onclick='logIn()']", selectorOf(p.LoginButton))
	assert.Equal(t, "#logInModal .close", selectorOf(p.CloseButton))
}

func TestNewCartPage(t *testing.T) {
	tests := []struct {
		baseURL string
		want    string
	}{
		{"https://demoblaze.com", "https://demoblaze.com/cart.html"},
		{"https://demoblaze.com/", "https://demoblaze.com/cart.html"},
		{"http://127.0.0.1:8080", "http://127.0.0.1:8080/cart.html"},
	}
	for _, tt := range tests {
		t.Run(tt.baseURL, func(t *testing.T) {
			assert.Equal(t, tt.want, NewCartPage(recordingPage{}, tt.baseURL).CartURL)
		})
	}

	p := NewCartPage(recordingPage{}, "https://demoblaze.com")
	assert.Equal(t, "#cartur", selectorOf(p.CartLink))
	assert.Equal(t, "#tbodyid > tr", selectorOf(p.CartTableRows))
	assert.Equal(t, "#totalp", selectorOf(p.TotalPrice))
	assert.Equal(t, "a[onclick^='delete']", selectorOf(p.DeleteButtons))
	assert.Equal(t, "button[data-target='#orderModal']", selectorOf(p.PlaceOrderButton))
}

// countLocator reports a fixed element count
type countLocator struct {
	playwright.Locator
	n int
}

func (c countLocator) Count() (int, error) { return c.n, nil }

func TestCartPage_VerifyCartNotEmpty(t *testing.T) {
	tests := []struct {
		rows    int
		wantErr bool
	}{
		{rows: 0, wantErr: true},
		{rows: 1},
		{rows: 3},
	}
	for _, tt := range tests {
		p := &CartPage{CartTableRows: countLocator{n: tt.rows}}

		n, err := p.GetCartItems()
		assert.NoError(t, err)
		assert.Equal(t, tt.rows, n)

		err = p.VerifyCartNotEmpty()
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrCartEmpty)
		} else {
			assert.NoError(t, err)
		}
	}
}

func TestCartPage_DeleteFirstItemOnEmptyCart(t *testing.T) {
	// Rows and assertions are left nil: with no delete link nothing else is touched.
	p := &CartPage{DeleteButtons: countLocator{n: 0}}
	assert.NoError(t, p.DeleteFirstItem())
}
