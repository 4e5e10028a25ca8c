package web

import (
	"net/http"
	"strings"

	"github.com/erazemk/glitzme/internal/auth"
	"github.com/erazemk/glitzme/internal/store"
	webembed "github.com/erazemk/glitzme/web"
)

// NewRouter creates the admin panel router. It also serves /static/ assets
// and uploaded images from uploadDir.
func NewRouter(st *store.Store, gate *auth.Gate, sessions auth.SessionStore, uploadDir string) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Store:     st,
		Gate:      gate,
		Sessions:  sessions,
		Templates: templates,
		UploadDir: uploadDir,
	}

	mux := http.NewServeMux()
	admin := RequireAdmin(gate, sessions)
	guard := func(h http.HandlerFunc) http.Handler { return admin(h) }

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))
	mux.Handle("GET "+UploadsPrefix, http.StripPrefix(UploadsPrefix, noListing(http.FileServer(http.Dir(uploadDir)))))

	mux.HandleFunc("GET /admin/login", s.LoginPage)
	mux.HandleFunc("POST /admin/login", s.LoginSubmit)
	mux.HandleFunc("POST /admin/logout", s.Logout)

	mux.Handle("GET /admin", guard(s.Dashboard))
	mux.Handle("GET /admin/{$}", guard(s.Dashboard))

	mux.Handle("GET /admin/rentals", guard(s.RentalsPage))
	mux.Handle("POST /admin/rentals", guard(s.RentalCreateSubmit))
	mux.Handle("GET /admin/rentals/{id}", guard(s.RentalEditPage))
	mux.Handle("POST /admin/rentals/{id}", guard(s.RentalUpdateSubmit))
	mux.Handle("POST /admin/rentals/{id}/delete", guard(s.RentalDeleteSubmit))

	mux.Handle("GET /admin/packages", guard(s.PackagesPage))
	mux.Handle("POST /admin/packages", guard(s.PackageCreateSubmit))
	mux.Handle("GET /admin/packages/{id}", guard(s.PackageEditPage))
	mux.Handle("POST /admin/packages/{id}", guard(s.PackageUpdateSubmit))
	mux.Handle("POST /admin/packages/{id}/delete", guard(s.PackageDeleteSubmit))

	mux.Handle("GET /admin/team", guard(s.TeamPage))
	mux.Handle("POST /admin/team", guard(s.TeamCreateSubmit))
	mux.Handle("GET /admin/team/{id}", guard(s.TeamEditPage))
	mux.Handle("POST /admin/team/{id}", guard(s.TeamUpdateSubmit))
	mux.Handle("POST /admin/team/{id}/delete", guard(s.TeamDeleteSubmit))

	mux.Handle("GET /admin/carousel", guard(s.CarouselPage))
	mux.Handle("POST /admin/carousel", guard(s.CarouselCreateSubmit))
	mux.Handle("GET /admin/carousel/{id}", guard(s.CarouselEditPage))
	mux.Handle("POST /admin/carousel/{id}", guard(s.CarouselUpdateSubmit))
	mux.Handle("POST /admin/carousel/{id}/delete", guard(s.CarouselDeleteSubmit))

	mux.Handle("GET /admin/settings", guard(s.SettingsPage))
	mux.Handle("POST /admin/settings", guard(s.SettingsSubmit))

	mux.Handle("POST /admin/uploads", guard(s.UploadSubmit))

	return mux, nil
}

// noListing hides directory indexes.
func noListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
