package web

import (
	"log/slog"
	"net/http"
)

// LoginPage handles GET /admin/login. A live session skips straight to the
// dashboard.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	if session, err := s.Sessions.Load(r); err == nil && s.Gate.IsAuthenticated(session) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	s.Templates.Render(w, "login.html", &PageData{Title: "Admin Login"})
}

// LoginSubmit handles POST /admin/login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	password := r.FormValue("password")

	session, ok := s.Gate.Authenticate(password)
	if !ok {
		slog.Warn("admin login failed", "remote", r.RemoteAddr)
		s.Templates.RenderStatus(w, http.StatusUnauthorized, "login.html", &PageData{
			Title: "Admin Login",
			Error: "Invalid password.",
		})
		return
	}

	if err := s.Sessions.Save(w, session); err != nil {
		slog.Error("failed to save admin session", "error", err)
		s.Templates.RenderStatus(w, http.StatusInternalServerError, "login.html", &PageData{
			Title: "Admin Login",
			Error: "Login failed, please try again.",
		})
		return
	}

	slog.Info("admin logged in", "remote", r.RemoteAddr, "expires", session.ExpiresAt)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout handles POST /admin/logout. It works with or without a session.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if err := s.Sessions.Clear(w, r); err != nil {
		slog.Error("failed to revoke admin session", "error", err)
	} else {
		slog.Info("admin logged out")
	}
	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}
