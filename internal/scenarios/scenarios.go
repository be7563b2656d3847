// Package scenarios holds the storefront UI checks and the runner that
// executes them, each in its own browser context.
package scenarios

import (
	"context"
	"fmt"

	"github.com/demoblaze/storefront-e2e/internal/pages"
	"github.com/playwright-community/playwright-go"
)

// Credentials typed by ValidateLoginModal
const (
	TestUsername = "testuser"
	TestPassword = "password123"
)

// Env is what a scenario gets to work with
type Env struct {
	Page    playwright.Page
	BaseURL string
	Expect  playwright.PlaywrightAssertions
}

// Scenario is a named check. Run returns at the first failing step.
type Scenario struct {
	Name string
	Run  func(ctx context.Context, env Env) error
}

// Default returns the storefront checks in execution order
func Default() []Scenario {
	return []Scenario{
		{Name: "signup-modal", Run: ValidateSignupModal},
		{Name: "login-modal", Run: ValidateLoginModal},
		{Name: "cart-page", Run: ValidateCartPage},
	}
}

type visibleCheck struct {
	name    string
	locator playwright.Locator
}

func openHome(ctx context.Context, env Env) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := env.Page.Goto(env.BaseURL); err != nil {
		return fmt.Errorf("navigate to %s: %w", env.BaseURL, err)
	}
	return nil
}

func expectVisible(env Env, checks ...visibleCheck) error {
	for _, c := range checks {
		if err := env.Expect.Locator(c.locator).ToBeVisible(); err != nil {
			return fmt.Errorf("%s should be visible: %w", c.name, err)
		}
	}
	return nil
}

// ValidateSignupModal opens the sign up modal and checks its controls are shown
func ValidateSignupModal(ctx context.Context, env Env) error {
	if err := openHome(ctx, env); err != nil {
		return err
	}

	signup := pages.NewSignupPage(env.Page)
	if err := signup.OpenSignupModal(); err != nil {
		return err
	}

	// Email visibility check disabled pending DEF-002. Add
	// {"email input", signup.EmailInput} back once the defect is closed.
	return expectVisible(env,
		visibleCheck{"username input", signup.UsernameInput},
		visibleCheck{"password input", signup.PasswordInput},
		visibleCheck{"sign up button", signup.SignupButton},
		visibleCheck{"close button", signup.CloseButton},
	)
}

// ValidateLoginModal opens the log in modal, checks its controls and submits
// the test credentials. The outcome of the submit is not checked.
func ValidateLoginModal(ctx context.Context, env Env) error {
	if err := openHome(ctx, env); err != nil {
		return err
	}

	login := pages.NewLoginPage(env.Page)
	if err := login.OpenLoginModal(); err != nil {
		return err
	}
	if err := expectVisible(env,
		visibleCheck{"username input", login.UsernameInput},
		visibleCheck{"password input", login.PasswordInput},
		visibleCheck{"log in button", login.LoginButton},
	); err != nil {
		return err
	}

	if err := login.FillLoginForm(TestUsername, TestPassword); err != nil {
		return err
	}
	return login.SubmitLogin()
}

// ValidateCartPage navigates to the cart and checks the order button is shown
func ValidateCartPage(ctx context.Context, env Env) error {
	if err := openHome(ctx, env); err != nil {
		return err
	}

	cart := pages.NewCartPage(env.Page, env.BaseURL)
	if err := cart.OpenCart(); err != nil {
		return err
	}
	return expectVisible(env, visibleCheck{"place order button", cart.PlaceOrderButton})
}
