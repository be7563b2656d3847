// Package pages holds page objects for the demoblaze storefront. Each page
// object binds a fixed set of Playwright locators to one page or modal and
// forwards actions to them one-to-one.
package pages

// Selectors must match the storefront markup exactly, including the
// JavaScript handler text inside onclick attributes.
const (
	SelectorSignupLink     = "#signin2"
	SelectorSignupUsername = "#sign-username"
	SelectorSignupEmail    = "#sign-email"
	SelectorSignupPassword = "#sign-password"
	SelectorSignupButton   = "button[onclick='register()']"
	SelectorSignupClose    = "#signInModal .close"
	SelectorSignupModal    = "#signInModal"

	SelectorLoginLink     = "#login2"
	SelectorLoginModal    = "#logInModal"
	SelectorLoginUsername = "#loginusername"
	SelectorLoginPassword = "#loginpassword"
	SelectorLoginButton   = "button[onclick='logIn()']"
	SelectorLoginClose    = "#logInModal .close"

	SelectorCartLink         = "#cartur"
	SelectorCartRows         = "#tbodyid > tr"
	SelectorCartTotal        = "#totalp"
	SelectorCartDelete       = "a[onclick^='delete']"
	SelectorPlaceOrderButton = "button[data-target='#orderModal']"
)

// CartPath is the cart page location relative to the storefront root
const CartPath = "/cart.html"
