package api

import (
	"net/http"
	"time"

	"github.com/erazemk/glitzme/internal/store"
)

// NewRouter creates the public read API router.
func NewRouter(st *store.Store) http.Handler {
	mux := http.NewServeMux()

	catalog := &CatalogHandler{Store: st}
	settings := &SettingsHandler{Store: st}

	mux.HandleFunc("GET /api/rentals", catalog.Rentals)
	mux.HandleFunc("GET /api/packages", catalog.Packages)
	mux.HandleFunc("GET /api/team", catalog.Team)
	mux.HandleFunc("GET /api/carousel", catalog.Carousel)

	mux.HandleFunc("GET /api/settings", settings.List)
	mux.HandleFunc("GET /api/settings/{key}", settings.Get)

	mux.HandleFunc("GET /api/health", Health(time.Now))

	return mux
}
