package handlers

import (
	"errors"
	"net/http"

	"github.com/demoblaze/storefront-e2e/internal/models"
	"github.com/demoblaze/storefront-e2e/internal/services"
	"github.com/sirupsen/logrus"
)

// AddToCartRequest is the body of /addtocart; ID is generated by the browser
type AddToCartRequest struct {
	ID        string `json:"id"`
	Cookie    string `json:"cookie"`
	ProductID int    `json:"prod_id"`
	Flag      bool   `json:"flag"`
}

// DeleteItemRequest is the body of /deleteitem
type DeleteItemRequest struct {
	ID string `json:"id"`
}

// CartEntry is one cart row joined with its product
type CartEntry struct {
	ID        string `json:"id"`
	Cookie    string `json:"cookie"`
	ProductID int    `json:"prod_id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Image     string `json:"img"`
}

// CartResponse lists cart rows, oldest first
type CartResponse struct {
	Items []CartEntry `json:"Items"`
}

// CartHandlers serves the cart endpoints
type CartHandlers struct {
	carts    services.CartService
	accounts services.AccountService
	logger   logrus.FieldLogger
}

// NewCartHandlers creates the cart endpoint handlers
func NewCartHandlers(carts services.CartService, accounts services.AccountService, logger logrus.FieldLogger) *CartHandlers {
	return &CartHandlers{carts: carts, accounts: accounts, logger: logger}
}

// AddToCart handles POST /api/addtocart
func (h *CartHandlers) AddToCart() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req AddToCartRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		owner, err := resolveOwner(h.accounts, CartOwnerRequest{Cookie: req.Cookie, Flag: req.Flag})
		if err != nil {
			sendErrorMessage(w, h.logger, MsgInvalidToken)
			return
		}

		item, err := h.carts.Add(r.Context(), req.ID, owner, req.ProductID)
		switch {
		case err == nil:
			h.logger.WithFields(logrus.Fields{"item": item.ID, "product": item.ProductID}).Info("Product added to cart")
			writeJSON(w, h.logger, http.StatusOK, "")
		case errors.Is(err, services.ErrUnknownProduct):
			sendErrorMessage(w, h.logger, MsgUnknownProduct)
		case errors.Is(err, models.ErrInvalidCartItemID), errors.Is(err, models.ErrInvalidProductID),
			errors.Is(err, models.ErrCartItemExists):
			sendErrorResponse(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.WithError(err).Error("Error adding to cart")
			sendErrorMessage(w, h.logger, MsgInternalError)
		}
	})
}

// ViewCart handles POST /api/viewcart
func (h *CartHandlers) ViewCart() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req CartOwnerRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		owner, err := resolveOwner(h.accounts, req)
		if err != nil {
			sendErrorMessage(w, h.logger, MsgInvalidToken)
			return
		}

		lines, err := h.carts.View(r.Context(), owner)
		if err != nil {
			h.logger.WithError(err).Error("Error viewing cart")
			sendErrorMessage(w, h.logger, MsgInternalError)
			return
		}

		resp := CartResponse{Items: make([]CartEntry, 0, len(lines))}
		for _, line := range lines {
			resp.Items = append(resp.Items, CartEntry{
				ID:        line.Item.ID,
				Cookie:    line.Item.Cookie,
				ProductID: line.Product.ID,
				Title:     line.Product.Title,
				Price:     line.Product.Price,
				Image:     line.Product.ImageURL,
			})
		}
		writeJSON(w, h.logger, http.StatusOK, resp)
	})
}

// DeleteItem handles POST /api/deleteitem
func (h *CartHandlers) DeleteItem() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req DeleteItemRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		err := h.carts.Delete(r.Context(), req.ID)
		switch {
		case err == nil:
			h.logger.WithField("item", req.ID).Info("Cart item deleted")
			writeJSON(w, h.logger, http.StatusOK, "Item deleted.")
		case errors.Is(err, models.ErrCartItemNotFound):
			sendErrorMessage(w, h.logger, MsgCartItemNotFound)
		default:
			h.logger.WithError(err).Error("Error deleting cart item")
			sendErrorMessage(w, h.logger, MsgInternalError)
		}
	})
}

// DeleteCart handles POST /api/deletecart
func (h *CartHandlers) DeleteCart() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req CartOwnerRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		owner, err := resolveOwner(h.accounts, req)
		if err != nil {
			sendErrorMessage(w, h.logger, MsgInvalidToken)
			return
		}

		if err := h.carts.Clear(r.Context(), owner); err != nil {
			h.logger.WithError(err).Error("Error deleting cart")
			sendErrorMessage(w, h.logger, MsgInternalError)
			return
		}
		writeJSON(w, h.logger, http.StatusOK, "")
	})
}
