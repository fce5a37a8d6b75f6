package http

import (
	"net/http"

	domcart "example.com/carrito-backend/internal/domain/cart"
)

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	estado := r.URL.Query().Get("estado")

	products, err := a.productSvc.List(r.Context(), estado)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, domcart.ErrInvalidProductID)
		return
	}

	p, err := a.productSvc.GetByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProductDetail(p))
}
