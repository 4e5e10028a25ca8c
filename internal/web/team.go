package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/erazemk/glitzme/internal/model"
)

type teamPage struct {
	PageData
	Members []model.TeamMember
}

type teamEditPage struct {
	PageData
	Member *model.TeamMember
}

// TeamPage handles GET /admin/team.
func (s *Server) TeamPage(w http.ResponseWriter, r *http.Request) {
	s.renderTeam(w, r, http.StatusOK, "")
}

func (s *Server) renderTeam(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	members, err := s.Store.ListTeamMembers(r.Context(), false)
	if err != nil {
		serverError(w, "failed to list team members", err)
		return
	}

	s.Templates.RenderStatus(w, status, "team.html", &teamPage{
		PageData: PageData{Title: "Team", LoggedIn: true, Error: errMsg},
		Members:  members,
	})
}

// TeamCreateSubmit handles POST /admin/team.
func (s *Server) TeamCreateSubmit(w http.ResponseWriter, r *http.Request) {
	f, err := parseForm(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	in := model.TeamMemberInput{
		Name:            f.str("name"),
		Role:            f.str("role"),
		ImagePath:       f.str("image_path"),
		MobileImagePath: f.str("mobile_image_path"),
		IsActive:        f.flag("is_active"),
		DisplayOrder:    f.intValue("display_order"),
	}
	if err := firstErr(f.err, in.Validate()); err != nil {
		s.renderTeam(w, r, http.StatusBadRequest, errorMessage(err))
		return
	}

	id, err := s.Store.AddTeamMember(r.Context(), in)
	if err != nil {
		serverError(w, "failed to add team member", err)
		return
	}

	slog.Info("team member added", "id", id, "name", in.Name)
	http.Redirect(w, r, "/admin/team", http.StatusSeeOther)
}

// TeamEditPage handles GET /admin/team/{id}.
func (s *Server) TeamEditPage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	s.renderTeamEdit(w, r, id, http.StatusOK, "")
}

func (s *Server) renderTeamEdit(w http.ResponseWriter, r *http.Request, id int64, status int, errMsg string) {
	member, err := s.Store.GetTeamMember(r.Context(), id)
	if err != nil {
		serverError(w, "failed to get team member", err)
		return
	}
	if member == nil {
		http.NotFound(w, r)
		return
	}

	s.Templates.RenderStatus(w, status, "team_edit.html", &teamEditPage{
		PageData: PageData{Title: member.Name, LoggedIn: true, Error: errMsg},
		Member:   member,
	})
}

// TeamUpdateSubmit handles POST /admin/team/{id}.
func (s *Server) TeamUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	f, err := parseForm(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	patch := model.TeamMemberPatch{
		Name:            f.text("name"),
		Role:            f.text("role"),
		ImagePath:       f.text("image_path"),
		MobileImagePath: f.text("mobile_image_path"),
		IsActive:        f.flag("is_active"),
		DisplayOrder:    f.number("display_order"),
	}
	if err := firstErr(f.err, patch.Validate()); err != nil {
		s.renderTeamEdit(w, r, id, http.StatusBadRequest, errorMessage(err))
		return
	}

	updated, err := s.Store.UpdateTeamMember(r.Context(), id, patch)
	if err != nil {
		serverError(w, "failed to update team member", err)
		return
	}
	if !updated {
		member, err := s.Store.GetTeamMember(r.Context(), id)
		if err != nil {
			serverError(w, "failed to get team member", err)
			return
		}
		if member == nil {
			http.NotFound(w, r)
			return
		}
	}

	slog.Info("team member updated", "id", id)
	http.Redirect(w, r, fmt.Sprintf("/admin/team/%d", id), http.StatusSeeOther)
}

// TeamDeleteSubmit handles POST /admin/team/{id}/delete.
func (s *Server) TeamDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deleted, err := s.Store.DeleteTeamMember(r.Context(), id)
	if err != nil {
		serverError(w, "failed to delete team member", err)
		return
	}
	if !deleted {
		http.NotFound(w, r)
		return
	}

	slog.Info("team member deleted", "id", id)
	http.Redirect(w, r, "/admin/team", http.StatusSeeOther)
}
