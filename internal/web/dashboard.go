package web

import (
	"net/http"

	"github.com/erazemk/glitzme/internal/model"
	"github.com/erazemk/glitzme/internal/store"
)

type entityCount struct {
	Label  string
	Path   string
	Total  int
	Active int
}

type dashboardPage struct {
	PageData
	Counts   []entityCount
	Settings int
}

// Dashboard handles GET /admin.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rentals, err := s.Store.ListRentals(ctx, store.ListOptions{})
	if err != nil {
		serverError(w, "failed to list rentals for dashboard", err)
		return
	}
	packages, err := s.Store.ListPackages(ctx, false)
	if err != nil {
		serverError(w, "failed to list packages for dashboard", err)
		return
	}
	team, err := s.Store.ListTeamMembers(ctx, false)
	if err != nil {
		serverError(w, "failed to list team for dashboard", err)
		return
	}
	carousel, err := s.Store.ListCarouselItems(ctx, false)
	if err != nil {
		serverError(w, "failed to list carousel for dashboard", err)
		return
	}
	settings, err := s.Store.AllSettings(ctx)
	if err != nil {
		serverError(w, "failed to list settings for dashboard", err)
		return
	}

	s.Templates.Render(w, "dashboard.html", &dashboardPage{
		PageData: PageData{Title: "Dashboard", LoggedIn: true},
		Counts: []entityCount{
			{"Rentals", "/admin/rentals", len(rentals), countActive(rentals, func(x model.RentalItem) bool { return x.IsActive })},
			{"Packages", "/admin/packages", len(packages), countActive(packages, func(x model.PackageItem) bool { return x.IsActive })},
			{"Team members", "/admin/team", len(team), countActive(team, func(x model.TeamMember) bool { return x.IsActive })},
			{"Carousel slides", "/admin/carousel", len(carousel), countActive(carousel, func(x model.CarouselItem) bool { return x.IsActive })},
		},
		Settings: len(settings),
	})
}

func countActive[T any](items []T, active func(T) bool) int {
	n := 0
	for _, item := range items {
		if active(item) {
			n++
		}
	}
	return n
}
