package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/demoblaze/storefront-e2e/internal/services"
	"github.com/sirupsen/logrus"
)

// ErrorResponse is sent for malformed requests
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MessageResponse carries a storefront-level failure. Like demoblaze it is
// delivered with status 200 and shown to the user through alert().
type MessageResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

// CartOwnerRequest identifies a cart: a guest cookie, or an auth token when Flag is set
type CartOwnerRequest struct {
	Cookie string `json:"cookie"`
	Flag   bool   `json:"flag"`
}

// errInvalidOwner is returned when a logged-in request carries an unknown token
var errInvalidOwner = errors.New("invalid cart owner")

// resolveOwner maps a cart owner request to the key carts are stored under
func resolveOwner(accounts services.AccountService, req CartOwnerRequest) (string, error) {
	if req.Cookie == "" {
		return "", errInvalidOwner
	}
	if !req.Flag {
		return req.Cookie, nil
	}
	username, err := accounts.Authenticate(req.Cookie)
	if err != nil {
		return "", errInvalidOwner
	}
	return username, nil
}

// decodeRequest enforces POST and decodes the JSON body into v. It writes
// the error response itself and reports whether the handler should go on.
func decodeRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		sendErrorResponse(w, "Invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

// writeJSON encodes v with the given status
func writeJSON(w http.ResponseWriter, logger logrus.FieldLogger, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithError(err).Error("Error encoding response")
	}
}

// sendErrorMessage reports a storefront-level failure
func sendErrorMessage(w http.ResponseWriter, logger logrus.FieldLogger, message string) {
	writeJSON(w, logger, http.StatusOK, MessageResponse{ErrorMessage: message})
}

// sendErrorResponse sends a JSON error response
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
