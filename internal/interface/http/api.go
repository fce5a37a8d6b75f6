package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domcart "example.com/carrito-backend/internal/domain/cart"
	domcheckout "example.com/carrito-backend/internal/domain/checkout"
	domproduct "example.com/carrito-backend/internal/domain/product"
	cartuc "example.com/carrito-backend/internal/usecase/cart"
	checkoutuc "example.com/carrito-backend/internal/usecase/checkout"
	productuc "example.com/carrito-backend/internal/usecase/product"
)

type API struct {
	cartSvc     *cartuc.Service
	productSvc  *productuc.Service
	checkoutSvc *checkoutuc.Service
	validator   *validator.Validate
	defaultCart int64
}

type Dependencies struct {
	CartService     *cartuc.Service
	ProductService  *productuc.Service
	CheckoutService *checkoutuc.Service
	// DefaultCartID is used when a request carries no X-Cart-ID header.
	DefaultCartID int64
}

func NewAPI(deps Dependencies) *API {
	defaultCart := deps.DefaultCartID
	if defaultCart <= 0 {
		defaultCart = 1
	}
	return &API{
		cartSvc:     deps.CartService,
		productSvc:  deps.ProductService,
		checkoutSvc: deps.CheckoutService,
		validator:   validator.New(),
		defaultCart: defaultCart,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"message": "Backend carrito activo",
			"docs":    []string{"/api/cart", "/api/checkout", "/api/products", "/api/products/:id"},
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/cart", a.handleGetCart)
		r.Post("/cart", a.handleAddCartItem)
		r.Patch("/cart/items/{id}", a.handleSetCartItemQty)
		r.Delete("/cart/items/{id}", a.handleRemoveCartItem)
		r.Delete("/cart", a.handleClearCart)

		r.Post("/checkout", a.handleCheckout)

		r.Get("/products", a.handleListProducts)
		r.Get("/products/{id}", a.handleGetProduct)
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

// cartID resolves the cart a request operates on: the X-Cart-ID header
// when present, otherwise the configured default.
func (a *API) cartID(r *http.Request) (int64, error) {
	raw := r.Header.Get("X-Cart-ID")
	if raw == "" {
		return a.defaultCart, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domcart.ErrInvalidCartID
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{OK: false, Message: err.Error()})
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

func mapCartItem(item domcart.DetailedItem) map[string]any {
	name := item.ProductName
	if name == "" {
		name = fmt.Sprintf("Producto %d", item.ProductID)
	}
	return map[string]any{
		"id":    item.ProductID,
		"name":  name,
		"price": item.ProductPrice,
		"qty":   item.Quantity,
		"image": item.ProductImage,
	}
}

func mapProduct(p *domproduct.Product) map[string]any {
	return map[string]any{
		"id":     p.ID,
		"name":   p.Name,
		"price":  p.Price,
		"stock":  p.Stock,
		"image":  p.Image,
		"estado": p.Status,
	}
}

func mapProductDetail(p *domproduct.Product) map[string]any {
	detail := mapProduct(p)
	detail["descripcion"] = p.Description
	return detail
}

func handleDomainError(w http.ResponseWriter, err error) {
	var rejected *domcheckout.RejectedError
	switch {
	case errors.Is(err, domcart.ErrInvalidProductID),
		errors.Is(err, domcart.ErrInvalidQuantity),
		errors.Is(err, domcart.ErrInvalidCartID):
		respondError(w, http.StatusBadRequest, err)
	case errors.As(err, &rejected):
		respondError(w, http.StatusBadRequest, err)
	case errors.Is(err, domproduct.ErrProductNotFound):
		respondError(w, http.StatusNotFound, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
