package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/rl1809/bookstore/internal/core/domain"
)

// SessionHeader carries the opaque session token. The server echoes the
// (possibly freshly minted) token on every /api response so a client can
// pick it up after its first request.
const SessionHeader = "X-Session-Token"

type contextKey string

const sessionContextKey contextKey = "session"

// Router wires every storefront and admin route behind the logging and
// session middlewares.
func (h *HTTPHandler) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.sessionMiddleware)

	api.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)

	api.HandleFunc("/books", h.ListBooks).Methods(http.MethodGet)
	api.HandleFunc("/books/{id}", h.GetBook).Methods(http.MethodGet)
	api.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet)

	api.HandleFunc("/cart", h.GetCart).Methods(http.MethodGet)
	api.HandleFunc("/cart", h.ClearCart).Methods(http.MethodDelete)
	api.HandleFunc("/cart/items", h.AddCartItem).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{bookID}", h.UpdateCartItem).Methods(http.MethodPut)
	api.HandleFunc("/cart/items/{bookID}", h.RemoveCartItem).Methods(http.MethodDelete)

	api.HandleFunc("/checkout", h.Checkout).Methods(http.MethodPost)
	api.HandleFunc("/orders", h.ListOrders).Methods(http.MethodGet)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/books", h.CreateBook).Methods(http.MethodPost)
	admin.HandleFunc("/books/{id}", h.UpdateBook).Methods(http.MethodPut)
	admin.HandleFunc("/books/{id}", h.DeleteBook).Methods(http.MethodDelete)
	admin.HandleFunc("/orders", h.ListAllOrders).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}/status", h.UpdateOrderStatus).Methods(http.MethodPut)

	return logMiddleware(r)
}

// sessionMiddleware resolves the caller's session, minting one when the
// token is absent or unknown, and echoes the token back.
func (h *HTTPHandler) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := h.auth.EnsureSession(r.Context(), sessionToken(r))
		if err != nil {
			log.WithError(err).Error("failed to resolve session")
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		w.Header().Set(SessionHeader, session.Token)
		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return r.Header.Get(SessionHeader)
}

func sessionFrom(r *http.Request) domain.Session {
	session, _ := r.Context().Value(sessionContextKey).(domain.Session)
	return session
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL.Path,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
		}).Info("got a new request")
		next.ServeHTTP(w, r)
	})
}
