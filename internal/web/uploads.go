package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path"

	"github.com/erazemk/glitzme/internal/imaging"
)

// UploadsPrefix is the URL path uploaded images are served under.
const UploadsPrefix = "/uploads/"

type uploadResponse struct {
	Path string `json:"path"`
}

// UploadSubmit handles POST /admin/uploads. The multipart field "image" is
// normalized to JPEG and stored under a random name; the response carries the
// path to put in an image_path field.
func (s *Server) UploadSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadSize+1<<20)
	if err := r.ParseMultipartForm(imaging.MaxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "file too large or malformed"})
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "image required"})
		return
	}
	defer file.Close()

	result, err := imaging.Process(file)
	if err != nil {
		slog.Warn("rejected upload", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	name, err := imaging.Save(s.UploadDir, result)
	if err != nil {
		slog.Error("failed to store upload", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to store image"})
		return
	}

	slog.Info("image uploaded", "file", name, "width", result.Width, "height", result.Height)
	writeJSON(w, http.StatusCreated, uploadResponse{Path: path.Join("uploads", name)})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
