package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

type checkoutRequest struct {
	CartID *int64 `json:"cartId" validate:"omitempty,gt=0"`
}

type checkoutResponse struct {
	OK      bool     `json:"ok"`
	Message string   `json:"message"`
	Total   *float64 `json:"total,omitempty"`
}

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	// The body is optional; an absent or empty body checks out the
	// default cart.
	var req checkoutRequest
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	cartID := a.defaultCart
	if req.CartID != nil {
		cartID = *req.CartID
	}

	res, err := a.checkoutSvc.Checkout(r.Context(), cartID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, checkoutResponse{
		OK:      true,
		Message: res.Message,
		Total:   res.Total,
	})
}
