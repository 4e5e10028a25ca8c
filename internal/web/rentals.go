package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/erazemk/glitzme/internal/model"
	"github.com/erazemk/glitzme/internal/store"
)

type rentalsPage struct {
	PageData
	Rentals  []model.RentalItem
	Category string
}

type rentalEditPage struct {
	PageData
	Rental *model.RentalItem
}

// RentalsPage handles GET /admin/rentals. Inactive items are listed too.
func (s *Server) RentalsPage(w http.ResponseWriter, r *http.Request) {
	s.renderRentals(w, r, http.StatusOK, "")
}

func (s *Server) renderRentals(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	category := r.URL.Query().Get("category")
	rentals, err := s.Store.ListRentals(r.Context(), store.ListOptions{Category: category})
	if err != nil {
		serverError(w, "failed to list rentals", err)
		return
	}

	s.Templates.RenderStatus(w, status, "rentals.html", &rentalsPage{
		PageData: PageData{Title: "Rentals", LoggedIn: true, Error: errMsg},
		Rentals:  rentals,
		Category: category,
	})
}

// RentalCreateSubmit handles POST /admin/rentals.
func (s *Server) RentalCreateSubmit(w http.ResponseWriter, r *http.Request) {
	f, err := parseForm(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	in := model.RentalInput{
		Name:         f.str("name"),
		ImagePath:    f.str("image_path"),
		Price:        f.str("price"),
		Deposit:      f.str("deposit"),
		PriceText:    f.str("price_text"),
		DepositText:  f.str("deposit_text"),
		Category:     f.str("category"),
		Description:  f.str("description"),
		IsActive:     f.flag("is_active"),
		DisplayOrder: f.intValue("display_order"),
	}
	if err := firstErr(f.err, in.Validate()); err != nil {
		s.renderRentals(w, r, http.StatusBadRequest, errorMessage(err))
		return
	}

	id, err := s.Store.AddRental(r.Context(), in)
	if err != nil {
		serverError(w, "failed to add rental", err)
		return
	}

	slog.Info("rental added", "id", id, "name", in.Name)
	http.Redirect(w, r, "/admin/rentals", http.StatusSeeOther)
}

// RentalEditPage handles GET /admin/rentals/{id}.
func (s *Server) RentalEditPage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	s.renderRentalEdit(w, r, id, http.StatusOK, "")
}

func (s *Server) renderRentalEdit(w http.ResponseWriter, r *http.Request, id int64, status int, errMsg string) {
	rental, err := s.Store.GetRental(r.Context(), id)
	if err != nil {
		serverError(w, "failed to get rental", err)
		return
	}
	if rental == nil {
		http.NotFound(w, r)
		return
	}

	s.Templates.RenderStatus(w, status, "rental_edit.html", &rentalEditPage{
		PageData: PageData{Title: rental.Name, LoggedIn: true, Error: errMsg},
		Rental:   rental,
	})
}

// RentalUpdateSubmit handles POST /admin/rentals/{id}. Only submitted fields
// change.
func (s *Server) RentalUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	f, err := parseForm(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	patch := model.RentalPatch{
		Name:         f.text("name"),
		ImagePath:    f.text("image_path"),
		Price:        f.text("price"),
		Deposit:      f.text("deposit"),
		PriceText:    f.text("price_text"),
		DepositText:  f.text("deposit_text"),
		Category:     f.text("category"),
		Description:  f.text("description"),
		IsActive:     f.flag("is_active"),
		DisplayOrder: f.number("display_order"),
	}
	if err := firstErr(f.err, patch.Validate()); err != nil {
		s.renderRentalEdit(w, r, id, http.StatusBadRequest, errorMessage(err))
		return
	}

	updated, err := s.Store.UpdateRental(r.Context(), id, patch)
	if err != nil {
		serverError(w, "failed to update rental", err)
		return
	}
	if !updated && !s.rentalExists(w, r, id) {
		return
	}

	slog.Info("rental updated", "id", id)
	http.Redirect(w, r, fmt.Sprintf("/admin/rentals/%d", id), http.StatusSeeOther)
}

// rentalExists tells an empty patch apart from a missing row. It writes the
// 404 or 500 response itself when it returns false.
func (s *Server) rentalExists(w http.ResponseWriter, r *http.Request, id int64) bool {
	rental, err := s.Store.GetRental(r.Context(), id)
	if err != nil {
		serverError(w, "failed to get rental", err)
		return false
	}
	if rental == nil {
		http.NotFound(w, r)
		return false
	}
	return true
}

// RentalDeleteSubmit handles POST /admin/rentals/{id}/delete.
func (s *Server) RentalDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deleted, err := s.Store.DeleteRental(r.Context(), id)
	if err != nil {
		serverError(w, "failed to delete rental", err)
		return
	}
	if !deleted {
		http.NotFound(w, r)
		return
	}

	slog.Info("rental deleted", "id", id)
	http.Redirect(w, r, "/admin/rentals", http.StatusSeeOther)
}
