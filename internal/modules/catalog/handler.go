package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/products/featured", h.listFeatured)
		r.Get("/products/{id}", h.getProduct)
		r.Get("/categories", h.listCategories)
		r.Get("/materials", h.listMaterials)
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := Filter{
		Search:     q.Get("search"),
		Categories: q["category"],
		Sort:       q.Get("sort"),
	}
	// unparseable price bounds are treated as unset, not rejected
	if v, err := decimal.NewFromString(q.Get("min_price")); err == nil {
		f.MinPrice = &v
	}
	if v, err := decimal.NewFromString(q.Get("max_price")); err == nil {
		f.MaxPrice = &v
	}
	respond(w, http.StatusOK, h.service.ListProducts(r.Context(), f))
}

func (h *Handler) listFeatured(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.ListFeatured(r.Context()))
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Categories(r.Context()))
}

func (h *Handler) listMaterials(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Materials(r.Context()))
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
