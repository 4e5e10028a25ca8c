package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/erazemk/glitzme/internal/model"
)

type carouselPage struct {
	PageData
	Items []model.CarouselItem
}

type carouselEditPage struct {
	PageData
	Item *model.CarouselItem
}

// CarouselPage handles GET /admin/carousel.
func (s *Server) CarouselPage(w http.ResponseWriter, r *http.Request) {
	s.renderCarousel(w, r, http.StatusOK, "")
}

func (s *Server) renderCarousel(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	items, err := s.Store.ListCarouselItems(r.Context(), false)
	if err != nil {
		serverError(w, "failed to list carousel items", err)
		return
	}

	s.Templates.RenderStatus(w, status, "carousel.html", &carouselPage{
		PageData: PageData{Title: "Carousel", LoggedIn: true, Error: errMsg},
		Items:    items,
	})
}

// CarouselCreateSubmit handles POST /admin/carousel.
func (s *Server) CarouselCreateSubmit(w http.ResponseWriter, r *http.Request) {
	f, err := parseForm(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	in := model.CarouselInput{
		Title:           f.str("title"),
		ImagePath:       f.str("image_path"),
		MobileImagePath: f.str("mobile_image_path"),
		AltText:         f.str("alt_text"),
		LinkURL:         f.str("link_url"),
		LinkText:        f.str("link_text"),
		IsActive:        f.flag("is_active"),
		DisplayOrder:    f.intValue("display_order"),
	}
	if err := firstErr(f.err, in.Validate()); err != nil {
		s.renderCarousel(w, r, http.StatusBadRequest, errorMessage(err))
		return
	}

	id, err := s.Store.AddCarouselItem(r.Context(), in)
	if err != nil {
		serverError(w, "failed to add carousel item", err)
		return
	}

	slog.Info("carousel item added", "id", id, "title", in.Title)
	http.Redirect(w, r, "/admin/carousel", http.StatusSeeOther)
}

// CarouselEditPage handles GET /admin/carousel/{id}.
func (s *Server) CarouselEditPage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	s.renderCarouselEdit(w, r, id, http.StatusOK, "")
}

func (s *Server) renderCarouselEdit(w http.ResponseWriter, r *http.Request, id int64, status int, errMsg string) {
	item, err := s.Store.GetCarouselItem(r.Context(), id)
	if err != nil {
		serverError(w, "failed to get carousel item", err)
		return
	}
	if item == nil {
		http.NotFound(w, r)
		return
	}

	s.Templates.RenderStatus(w, status, "carousel_edit.html", &carouselEditPage{
		PageData: PageData{Title: item.Title, LoggedIn: true, Error: errMsg},
		Item:     item,
	})
}

// CarouselUpdateSubmit handles POST /admin/carousel/{id}.
func (s *Server) CarouselUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	f, err := parseForm(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	patch := model.CarouselPatch{
		Title:           f.text("title"),
		ImagePath:       f.text("image_path"),
		MobileImagePath: f.text("mobile_image_path"),
		AltText:         f.text("alt_text"),
		LinkURL:         f.text("link_url"),
		LinkText:        f.text("link_text"),
		IsActive:        f.flag("is_active"),
		DisplayOrder:    f.number("display_order"),
	}
	if err := firstErr(f.err, patch.Validate()); err != nil {
		s.renderCarouselEdit(w, r, id, http.StatusBadRequest, errorMessage(err))
		return
	}

	updated, err := s.Store.UpdateCarouselItem(r.Context(), id, patch)
	if err != nil {
		serverError(w, "failed to update carousel item", err)
		return
	}
	if !updated {
		item, err := s.Store.GetCarouselItem(r.Context(), id)
		if err != nil {
			serverError(w, "failed to get carousel item", err)
			return
		}
		if item == nil {
			http.NotFound(w, r)
			return
		}
	}

	slog.Info("carousel item updated", "id", id)
	http.Redirect(w, r, fmt.Sprintf("/admin/carousel/%d", id), http.StatusSeeOther)
}

// CarouselDeleteSubmit handles POST /admin/carousel/{id}/delete.
func (s *Server) CarouselDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deleted, err := s.Store.DeleteCarouselItem(r.Context(), id)
	if err != nil {
		serverError(w, "failed to delete carousel item", err)
		return
	}
	if !deleted {
		http.NotFound(w, r)
		return
	}

	slog.Info("carousel item deleted", "id", id)
	http.Redirect(w, r, "/admin/carousel", http.StatusSeeOther)
}
