package web

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/erazemk/glitzme/internal/model"
)

type settingsPage struct {
	PageData
	Settings []model.SiteSetting
}

// SettingsPage handles GET /admin/settings.
func (s *Server) SettingsPage(w http.ResponseWriter, r *http.Request) {
	success := ""
	if r.URL.Query().Get("saved") == "1" {
		success = "Settings saved."
	}
	s.renderSettings(w, r, http.StatusOK, PageData{Success: success})
}

func (s *Server) renderSettings(w http.ResponseWriter, r *http.Request, status int, data PageData) {
	settings, err := s.Store.ListSettings(r.Context())
	if err != nil {
		serverError(w, "failed to list settings", err)
		return
	}

	data.Title = "Site Settings"
	data.LoggedIn = true
	s.Templates.RenderStatus(w, status, "settings.html", &settingsPage{
		PageData: data,
		Settings: settings,
	})
}

// SettingsSubmit handles POST /admin/settings. Each existing setting is
// posted as value_<key>; a non-empty new_key adds another setting.
func (s *Server) SettingsSubmit(w http.ResponseWriter, r *http.Request) {
	f, err := parseForm(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	var added *model.SiteSetting
	if f.str("new_key") != "" || f.str("new_value") != "" {
		st := model.SiteSetting{
			Key:         f.str("new_key"),
			Value:       f.str("new_value"),
			Type:        f.str("new_type"),
			Description: f.str("new_description"),
		}
		if !slices.Contains(model.SettingTypes, st.Type) {
			st.Type = model.SettingTypeText
		}
		if err := st.Validate(); err != nil {
			s.renderSettings(w, r, http.StatusBadRequest, PageData{Error: errorMessage(err)})
			return
		}
		added = &st
	}

	settings, err := s.Store.ListSettings(r.Context())
	if err != nil {
		serverError(w, "failed to list settings", err)
		return
	}

	changed := 0
	for _, st := range settings {
		v := f.text("value_" + st.Key)
		if v == nil || *v == st.Value {
			continue
		}
		st.Value = *v
		if err := s.Store.SetSetting(r.Context(), st); err != nil {
			serverError(w, "failed to save setting", err)
			return
		}
		changed++
	}

	if added != nil {
		if err := s.Store.SetSetting(r.Context(), *added); err != nil {
			serverError(w, "failed to add setting", err)
			return
		}
		slog.Info("setting added", "key", added.Key)
	}

	slog.Info("settings saved", "changed", changed)
	http.Redirect(w, r, "/admin/settings?saved=1", http.StatusSeeOther)
}
