package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/erazemk/glitzme/internal/model"
)

type packagesPage struct {
	PageData
	Packages []model.PackageItem
}

type packageEditPage struct {
	PageData
	Package *model.PackageItem
}

// PackagesPage handles GET /admin/packages.
func (s *Server) PackagesPage(w http.ResponseWriter, r *http.Request) {
	s.renderPackages(w, r, http.StatusOK, "")
}

func (s *Server) renderPackages(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	packages, err := s.Store.ListPackages(r.Context(), false)
	if err != nil {
		serverError(w, "failed to list packages", err)
		return
	}

	s.Templates.RenderStatus(w, status, "packages.html", &packagesPage{
		PageData: PageData{Title: "Packages", LoggedIn: true, Error: errMsg},
		Packages: packages,
	})
}

// PackageCreateSubmit handles POST /admin/packages.
func (s *Server) PackageCreateSubmit(w http.ResponseWriter, r *http.Request) {
	f, err := parseForm(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	in := model.PackageInput{
		Name:         f.str("name"),
		ImagePath:    f.str("image_path"),
		Price:        f.str("price"),
		PriceText:    f.str("price_text"),
		Description:  f.str("description"),
		IsActive:     f.flag("is_active"),
		DisplayOrder: f.intValue("display_order"),
	}
	if err := firstErr(f.err, in.Validate()); err != nil {
		s.renderPackages(w, r, http.StatusBadRequest, errorMessage(err))
		return
	}

	id, err := s.Store.AddPackage(r.Context(), in)
	if err != nil {
		serverError(w, "failed to add package", err)
		return
	}

	slog.Info("package added", "id", id, "name", in.Name)
	http.Redirect(w, r, "/admin/packages", http.StatusSeeOther)
}

// PackageEditPage handles GET /admin/packages/{id}.
func (s *Server) PackageEditPage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	s.renderPackageEdit(w, r, id, http.StatusOK, "")
}

func (s *Server) renderPackageEdit(w http.ResponseWriter, r *http.Request, id int64, status int, errMsg string) {
	pkg, err := s.Store.GetPackage(r.Context(), id)
	if err != nil {
		serverError(w, "failed to get package", err)
		return
	}
	if pkg == nil {
		http.NotFound(w, r)
		return
	}

	s.Templates.RenderStatus(w, status, "package_edit.html", &packageEditPage{
		PageData: PageData{Title: pkg.Name, LoggedIn: true, Error: errMsg},
		Package:  pkg,
	})
}

// PackageUpdateSubmit handles POST /admin/packages/{id}.
func (s *Server) PackageUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	f, err := parseForm(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	patch := model.PackagePatch{
		Name:         f.text("name"),
		ImagePath:    f.text("image_path"),
		Price:        f.text("price"),
		PriceText:    f.text("price_text"),
		Description:  f.text("description"),
		IsActive:     f.flag("is_active"),
		DisplayOrder: f.number("display_order"),
	}
	if err := firstErr(f.err, patch.Validate()); err != nil {
		s.renderPackageEdit(w, r, id, http.StatusBadRequest, errorMessage(err))
		return
	}

	updated, err := s.Store.UpdatePackage(r.Context(), id, patch)
	if err != nil {
		serverError(w, "failed to update package", err)
		return
	}
	if !updated {
		pkg, err := s.Store.GetPackage(r.Context(), id)
		if err != nil {
			serverError(w, "failed to get package", err)
			return
		}
		if pkg == nil {
			http.NotFound(w, r)
			return
		}
	}

	slog.Info("package updated", "id", id)
	http.Redirect(w, r, fmt.Sprintf("/admin/packages/%d", id), http.StatusSeeOther)
}

// PackageDeleteSubmit handles POST /admin/packages/{id}/delete.
func (s *Server) PackageDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deleted, err := s.Store.DeletePackage(r.Context(), id)
	if err != nil {
		serverError(w, "failed to delete package", err)
		return
	}
	if !deleted {
		http.NotFound(w, r)
		return
	}

	slog.Info("package deleted", "id", id)
	http.Redirect(w, r, "/admin/packages", http.StatusSeeOther)
}
