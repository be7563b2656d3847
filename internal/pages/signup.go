package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// SignupPage wraps the "Sign up" modal
type SignupPage struct {
	Page          playwright.Page
	SignupLink    playwright.Locator
	UsernameInput playwright.Locator
	EmailInput    playwright.Locator
	PasswordInput playwright.Locator
	SignupButton  playwright.Locator
	CloseButton   playwright.Locator
	SignupModal   playwright.Locator
}

// NewSignupPage binds the signup locators to page
func NewSignupPage(page playwright.Page) *SignupPage {
	return &SignupPage{
		Page:          page,
		SignupLink:    page.Locator(SelectorSignupLink),
		UsernameInput: page.Locator(SelectorSignupUsername),
		EmailInput:    page.Locator(SelectorSignupEmail),
		PasswordInput: page.Locator(SelectorSignupPassword),
		SignupButton:  page.Locator(SelectorSignupButton),
		CloseButton:   page.Locator(SelectorSignupClose),
		SignupModal:   page.Locator(SelectorSignupModal),
	}
}

// OpenSignupModal clicks the nav link and waits for the modal to become visible
func (p *SignupPage) OpenSignupModal() error {
	if err := p.SignupLink.Click(); err != nil {
		return fmt.Errorf("click sign up link: %w", err)
	}
	if err := p.SignupModal.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	}); err != nil {
		return fmt.Errorf("wait for sign up modal: %w", err)
	}
	return nil
}

// FillSignupForm types the three values verbatim; nothing is validated
func (p *SignupPage) FillSignupForm(username, email, password string) error {
	if err := p.UsernameInput.Fill(username); err != nil {
		return fmt.Errorf("fill sign up username: %w", err)
	}
	if err := p.EmailInput.Fill(email); err != nil {
		return fmt.Errorf("fill sign up email: %w", err)
	}
	if err := p.PasswordInput.Fill(password); err != nil {
		return fmt.Errorf("fill sign up password: %w", err)
	}
	return nil
}

// SubmitSignup clicks the register button without waiting for the outcome
func (p *SignupPage) SubmitSignup() error {
	if err := p.SignupButton.Click(); err != nil {
		return fmt.Errorf("click sign up button: %w", err)
	}
	return nil
}

// CloseModal dismisses the modal
func (p *SignupPage) CloseModal() error {
	if err := p.CloseButton.Click(); err != nil {
		return fmt.Errorf("click sign up close: %w", err)
	}
	return nil
}
