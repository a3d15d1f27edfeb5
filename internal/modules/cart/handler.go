package cart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/imagiro/imagiro-backend/internal/modules/catalog"
)

// sessionCookie carries the visitor's cart token between requests.
const sessionCookie = "imagiro_cart"

type sessionKey struct{}

// Handler exposes cart HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(withSession)
		r.Get("/", h.getCart)
		r.Delete("/", h.clearCart)
		r.Post("/items", h.addItem)
		r.Patch("/items/{id}", h.updateItem)
		r.Delete("/items/{id}", h.removeItem)
		r.Post("/items/{id}/materials/{materialID}", h.toggleMaterial)
		r.Post("/promo", h.applyPromo)
	})
}

// withSession reads the cart cookie, minting a fresh token on first touch.
// The token becomes part of a storage key, so only values this server could
// have minted are accepted; anything else is replaced.
func withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var token string
		if c, err := r.Cookie(sessionCookie); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				token = c.Value
			}
		}
		if token == "" {
			token = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, token)))
	})
}

func sessionToken(r *http.Request) string {
	token, _ := r.Context().Value(sessionKey{}).(string)
	return token
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Summary(r.Context(), sessionToken(r)))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Clear(r.Context(), sessionToken(r)))
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	summary, err := h.service.AddItem(r.Context(), sessionToken(r), req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrOutOfStock):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	respond(w, http.StatusCreated, summary)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	lineID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusOK, h.service.UpdateQuantity(r.Context(), sessionToken(r), lineID, req.Quantity))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	lineID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusOK, h.service.RemoveItem(r.Context(), sessionToken(r), lineID))
}

func (h *Handler) toggleMaterial(w http.ResponseWriter, r *http.Request) {
	lineID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	materialID := chi.URLParam(r, "materialID")
	respond(w, http.StatusOK, h.service.ToggleMaterial(r.Context(), sessionToken(r), lineID, materialID))
}

func (h *Handler) applyPromo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.service.ApplyPromo(r.Context(), req.Code); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "applied"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
