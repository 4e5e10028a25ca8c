package api

import (
	"net/http"

	"github.com/erazemk/glitzme/internal/store"
)

// CatalogHandler serves the public, active-only catalog listings.
type CatalogHandler struct {
	Store *store.Store
}

// Rentals handles GET /api/rentals. An optional ?category= narrows the list.
func (h *CatalogHandler) Rentals(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.ListRentals(r.Context(), store.ListOptions{
		ActiveOnly: true,
		Category:   r.URL.Query().Get("category"),
	})
	if err != nil {
		storageError(w, r, "failed to list rentals", err)
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

// Packages handles GET /api/packages.
func (h *CatalogHandler) Packages(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.ListPackages(r.Context(), true)
	if err != nil {
		storageError(w, r, "failed to list packages", err)
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

// Team handles GET /api/team.
func (h *CatalogHandler) Team(w http.ResponseWriter, r *http.Request) {
	members, err := h.Store.ListTeamMembers(r.Context(), true)
	if err != nil {
		storageError(w, r, "failed to list team members", err)
		return
	}
	jsonResponse(w, http.StatusOK, members)
}

// Carousel handles GET /api/carousel.
func (h *CatalogHandler) Carousel(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.ListCarouselItems(r.Context(), true)
	if err != nil {
		storageError(w, r, "failed to list carousel items", err)
		return
	}
	jsonResponse(w, http.StatusOK, items)
}
