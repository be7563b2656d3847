package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// LoginPage wraps the "Log in" modal
type LoginPage struct {
	Page          playwright.Page
	LoginLink     playwright.Locator
	LoginModal    playwright.Locator
	UsernameInput playwright.Locator
	PasswordInput playwright.Locator
	LoginButton   playwright.Locator
	CloseButton   playwright.Locator
}

// NewLoginPage binds the login locators to page
func NewLoginPage(page playwright.Page) *LoginPage {
	return &LoginPage{
		Page:          page,
		LoginLink:     page.Locator(SelectorLoginLink),
		LoginModal:    page.Locator(SelectorLoginModal),
		UsernameInput: page.Locator(SelectorLoginUsername),
		PasswordInput: page.Locator(SelectorLoginPassword),
		LoginButton:   page.Locator(SelectorLoginButton),
		CloseButton:   page.Locator(SelectorLoginClose),
	}
}

// OpenLoginModal clicks the nav link and waits for the modal to become visible
func (p *LoginPage) OpenLoginModal() error {
	if err := p.LoginLink.Click(); err != nil {
		return fmt.Errorf("click log in link: %w", err)
	}
	if err := p.LoginModal.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	}); err != nil {
		return fmt.Errorf("wait for log in modal: %w", err)
	}
	return nil
}

// FillLoginForm types both values verbatim
func (p *LoginPage) FillLoginForm(username, password string) error {
	if err := p.UsernameInput.Fill(username); err != nil {
		return fmt.Errorf("fill log in username: %w", err)
	}
	if err := p.PasswordInput.Fill(password); err != nil {
		return fmt.Errorf("fill log in password: %w", err)
	}
	return nil
}

// SubmitLogin clicks the log in button once. Success or failure feedback
// from the site is not awaited.
func (p *LoginPage) SubmitLogin() error {
	if err := p.LoginButton.Click(); err != nil {
		return fmt.Errorf("click log in button: %w", err)
	}
	return nil
}

// CloseModal dismisses the modal
func (p *LoginPage) CloseModal() error {
	if err := p.CloseButton.Click(); err != nil {
		return fmt.Errorf("click log in close: %w", err)
	}
	return nil
}
