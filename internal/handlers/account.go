package handlers

import (
	"errors"
	"net/http"

	"github.com/demoblaze/storefront-e2e/internal/models"
	"github.com/demoblaze/storefront-e2e/internal/services"
	"github.com/sirupsen/logrus"
)

// Messages shown by the storefront, verbatim from demoblaze
const (
	MsgUserExists       = "This user already exist."
	MsgUserNotFound     = "User does not exist."
	MsgWrongPassword    = "Wrong password."
	MsgFillCredentials  = "Please fill out Username and Password."
	MsgInvalidToken     = "Invalid token."
	MsgFillNameAndCard  = "Please fill out Name and Creditcard."
	MsgUnknownProduct   = "Product does not exist."
	MsgCartItemNotFound = "Item not found."
	MsgInternalError    = "Something went wrong."
)

// CredentialsRequest is the body of /signup and /login
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenRequest is the body of /check and /logout
type TokenRequest struct {
	Token string `json:"token"`
}

// CheckResponse mirrors demoblaze's session check payload
type CheckResponse struct {
	Item struct {
		Username string `json:"username"`
	} `json:"Item"`
}

// SignupHandler handles account registration
type SignupHandler struct {
	accounts services.AccountService
	logger   logrus.FieldLogger
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(accounts services.AccountService, logger logrus.FieldLogger) *SignupHandler {
	return &SignupHandler{accounts: accounts, logger: logger}
}

// ServeHTTP handles POST /api/signup
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	err := h.accounts.Signup(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		h.logger.WithField("username", req.Username).Info("User signed up")
		writeJSON(w, h.logger, http.StatusOK, "")
	case errors.Is(err, models.ErrUserExists):
		sendErrorMessage(w, h.logger, MsgUserExists)
	case errors.Is(err, models.ErrEmptyUsername), errors.Is(err, models.ErrEmptyPassword):
		sendErrorMessage(w, h.logger, MsgFillCredentials)
	default:
		h.logger.WithError(err).Error("Error signing up")
		sendErrorMessage(w, h.logger, MsgInternalError)
	}
}

// LoginHandler handles log in
type LoginHandler struct {
	accounts services.AccountService
	logger   logrus.FieldLogger
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(accounts services.AccountService, logger logrus.FieldLogger) *LoginHandler {
	return &LoginHandler{accounts: accounts, logger: logger}
}

// ServeHTTP handles POST /api/login. Success is a bare JSON string "Auth_token: <token>".
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	token, err := h.accounts.Login(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		h.logger.WithField("username", req.Username).Info("User logged in")
		writeJSON(w, h.logger, http.StatusOK, "Auth_token: "+token)
	case errors.Is(err, models.ErrUserNotFound):
		sendErrorMessage(w, h.logger, MsgUserNotFound)
	case errors.Is(err, models.ErrWrongPassword):
		sendErrorMessage(w, h.logger, MsgWrongPassword)
	default:
		h.logger.WithError(err).Error("Error logging in")
		sendErrorMessage(w, h.logger, MsgInternalError)
	}
}

// CheckHandler resolves an auth token to its username
type CheckHandler struct {
	accounts services.AccountService
	logger   logrus.FieldLogger
}

// NewCheckHandler creates a new session check handler
func NewCheckHandler(accounts services.AccountService, logger logrus.FieldLogger) *CheckHandler {
	return &CheckHandler{accounts: accounts, logger: logger}
}

// ServeHTTP handles POST /api/check
func (h *CheckHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	username, err := h.accounts.Authenticate(req.Token)
	if err != nil {
		sendErrorMessage(w, h.logger, MsgInvalidToken)
		return
	}

	var resp CheckResponse
	resp.Item.Username = username
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// LogoutHandler forgets an auth token
type LogoutHandler struct {
	accounts services.AccountService
	logger   logrus.FieldLogger
}

// NewLogoutHandler creates a new logout handler
func NewLogoutHandler(accounts services.AccountService, logger logrus.FieldLogger) *LogoutHandler {
	return &LogoutHandler{accounts: accounts, logger: logger}
}

// ServeHTTP handles POST /api/logout
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	h.accounts.Logout(req.Token)
	writeJSON(w, h.logger, http.StatusOK, "")
}
