package api

import (
	"net/http"

	"github.com/erazemk/glitzme/internal/store"
)

// SettingsHandler exposes site settings as plain key/value pairs.
type SettingsHandler struct {
	Store *store.Store
}

type settingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// List handles GET /api/settings.
func (h *SettingsHandler) List(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Store.AllSettings(r.Context())
	if err != nil {
		storageError(w, r, "failed to list settings", err)
		return
	}
	jsonResponse(w, http.StatusOK, settings)
}

// Get handles GET /api/settings/{key}.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	value, ok, err := h.Store.GetSetting(r.Context(), key)
	if err != nil {
		storageError(w, r, "failed to get setting", err)
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "setting not found")
		return
	}
	jsonResponse(w, http.StatusOK, settingResponse{Key: key, Value: value})
}
