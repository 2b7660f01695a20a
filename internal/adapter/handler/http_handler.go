package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/rl1809/bookstore/internal/core/domain"
	"github.com/rl1809/bookstore/internal/core/service"
)

// HTTPHandler is the storefront's view layer: it owns the responsibilities
// the stores delegate to their caller, such as clamping added quantities to
// stock and translating zero-quantity updates into removals.
type HTTPHandler struct {
	catalog *service.CatalogService
	cart    *service.CartService
	auth    *service.AuthService
	orders  *service.OrderService
}

func NewHTTPHandler(catalog *service.CatalogService, cart *service.CartService, auth *service.AuthService, orders *service.OrderService) *HTTPHandler {
	return &HTTPHandler{catalog: catalog, cart: cart, auth: auth, orders: orders}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Admin    bool   `json:"admin"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type identityResponse struct {
	Token    string          `json:"token"`
	Identity domain.Identity `json:"identity"`
}

type addItemRequest struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type cartResponse struct {
	Lines      []domain.CartLine `json:"lines"`
	TotalItems int               `json:"total_items"`
	TotalPrice string            `json:"total_price"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session := sessionFrom(r)
	identity, err := h.auth.Register(r.Context(), session, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusBadRequest, "name, email and password are required")
			return
		}
		h.internalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, identityResponse{Token: session.Token, Identity: *identity})
}

func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session := sessionFrom(r)
	identity, err := h.auth.Login(r.Context(), session, req.Email, req.Password, req.Admin)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, identityResponse{Token: session.Token, Identity: *identity})
}

func (h *HTTPHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), sessionFrom(r)); err != nil {
		h.internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) Me(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	if !session.IsAuthenticated() {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, identityResponse{Token: session.Token, Identity: *session.Identity})
}

func (h *HTTPHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	filter := service.Filter{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	}

	books, err := h.catalog.List(r.Context(), filter)
	if err != nil {
		h.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *HTTPHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.catalog.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			writeError(w, http.StatusNotFound, "book not found")
			return
		}
		h.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := append([]string{domain.CategoryAll}, domain.Categories...)
	writeJSON(w, http.StatusOK, categories)
}

func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cart.Get(r.Context(), sessionFrom(r).Token)
	if err != nil {
		h.internalError(w, err)
		return
	}
	writeCart(w, http.StatusOK, cart)
}

// AddCartItem resolves the book, clamps the requested quantity to the
// available stock and merges the snapshot into the cart.
func (h *HTTPHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.BookID == "" {
		writeError(w, http.StatusBadRequest, "book_id is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		writeError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}

	book, err := h.catalog.Get(r.Context(), req.BookID)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			writeError(w, http.StatusNotFound, "book not found")
			return
		}
		h.internalError(w, err)
		return
	}
	if book.Stock < 1 {
		writeError(w, http.StatusConflict, "out of stock")
		return
	}

	quantity := req.Quantity
	if quantity > book.Stock {
		quantity = book.Stock
	}

	cart, err := h.cart.Add(r.Context(), sessionFrom(r).Token, book.Summary(), quantity)
	if err != nil {
		h.internalError(w, err)
		return
	}
	writeCart(w, http.StatusOK, cart)
}

// UpdateCartItem replaces a line's quantity; zero or less means removal.
func (h *HTTPHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bookID := mux.Vars(r)["bookID"]
	token := sessionFrom(r).Token

	var (
		cart domain.Cart
		err  error
	)
	if req.Quantity < 1 {
		cart, err = h.cart.Remove(r.Context(), token, bookID)
	} else {
		cart, err = h.cart.UpdateQuantity(r.Context(), token, bookID, req.Quantity)
	}
	if err != nil {
		h.internalError(w, err)
		return
	}
	writeCart(w, http.StatusOK, cart)
}

func (h *HTTPHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cart.Remove(r.Context(), sessionFrom(r).Token, mux.Vars(r)["bookID"])
	if err != nil {
		h.internalError(w, err)
		return
	}
	writeCart(w, http.StatusOK, cart)
}

func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cart.Clear(r.Context(), sessionFrom(r).Token)
	if err != nil {
		h.internalError(w, err)
		return
	}
	writeCart(w, http.StatusOK, cart)
}

func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Checkout(r.Context(), sessionFrom(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			writeError(w, http.StatusUnauthorized, "not authenticated")
		case errors.Is(err, service.ErrEmptyCart):
			writeError(w, http.StatusConflict, "cart is empty")
		default:
			h.internalError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireCapability(w, r, domain.CapViewOrders)
	if !ok {
		return
	}

	orders, err := h.orders.History(r.Context(), session.Identity.ID)
	if err != nil {
		h.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *HTTPHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireCapability(w, r, domain.CapManageBooks); !ok {
		return
	}

	var book domain.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.catalog.Create(r.Context(), book)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBook):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrBookExists):
			writeError(w, http.StatusConflict, "book already exists")
		default:
			h.internalError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireCapability(w, r, domain.CapManageBooks); !ok {
		return
	}

	var book domain.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	book.ID = mux.Vars(r)["id"]

	updated, err := h.catalog.Update(r.Context(), book)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBook):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrBookNotFound):
			writeError(w, http.StatusNotFound, "book not found")
		default:
			h.internalError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireCapability(w, r, domain.CapManageBooks); !ok {
		return
	}

	if err := h.catalog.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			writeError(w, http.StatusNotFound, "book not found")
			return
		}
		h.internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireCapability(w, r, domain.CapManageOrders); !ok {
		return
	}

	orders, err := h.orders.ListAll(r.Context())
	if err != nil {
		h.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireCapability(w, r, domain.CapManageOrders); !ok {
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], domain.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "invalid order status")
		case errors.Is(err, service.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, "order not found")
		default:
			h.internalError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "status updated"})
}

// requireCapability applies the typed allow/deny decision at the boundary:
// anonymous callers get 401, authenticated ones without the capability 403.
func (h *HTTPHandler) requireCapability(w http.ResponseWriter, r *http.Request, capability domain.Capability) (domain.Session, bool) {
	session := sessionFrom(r)
	decision := h.auth.Authorize(session.Identity, capability)
	if decision.Allowed {
		return session, true
	}

	status := http.StatusForbidden
	if session.Identity == nil {
		status = http.StatusUnauthorized
	}
	writeError(w, status, decision.Reason)
	return session, false
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, err error) {
	log.WithError(err).Error("request failed")
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeCart(w http.ResponseWriter, status int, cart domain.Cart) {
	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	writeJSON(w, status, cartResponse{
		Lines:      lines,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice().StringFixed(2),
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
