package http

import (
	"net/http"
)

type addCartItemRequest struct {
	ProductID *int64 `json:"id_objeto" validate:"required,gt=0"`
}

type setQuantityRequest struct {
	Qty *int64 `json:"qty" validate:"required,gte=0"`
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := a.cartID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	items, err := a.cartSvc.List(r.Context(), cartID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(items))
	for _, item := range items {
		resp = append(resp, mapCartItem(item))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	cartID, err := a.cartID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.cartSvc.Add(r.Context(), cartID, *req.ProductID); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"ok": true})
}

func (a *API) handleSetCartItemQty(w http.ResponseWriter, r *http.Request) {
	cartID, err := a.cartID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	productID, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var req setQuantityRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.cartSvc.SetQuantity(r.Context(), cartID, productID, *req.Qty); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	cartID, err := a.cartID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	productID, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.cartSvc.Remove(r.Context(), cartID, productID); err != nil {
		handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleClearCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := a.cartID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.cartSvc.Clear(r.Context(), cartID); err != nil {
		handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
