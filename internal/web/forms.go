package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/erazemk/glitzme/internal/model"
)

// form reads admin form fields. Absent fields come back as nil so they map
// directly onto patch structs.
type form struct {
	values url.Values
	err    error
}

func parseForm(r *http.Request) (*form, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return &form{values: r.PostForm}, nil
}

// text returns the trimmed field value, or nil when the field was not sent.
func (f *form) text(name string) *string {
	if _, ok := f.values[name]; !ok {
		return nil
	}
	v := strings.TrimSpace(f.values.Get(name))
	return &v
}

// flag reads a checkbox. Forms pair each checkbox with a hidden "0" field of
// the same name, so the last value wins and an unchecked box still arrives.
func (f *form) flag(name string) *bool {
	vs, ok := f.values[name]
	if !ok || len(vs) == 0 {
		return nil
	}
	v := vs[len(vs)-1]
	on := v == "1" || v == "on" || v == "true"
	return &on
}

// number parses an integer field. A blank field counts as absent.
func (f *form) number(name string) *int {
	v := f.text(name)
	if v == nil || *v == "" {
		return nil
	}
	n, err := strconv.Atoi(*v)
	if err != nil {
		if f.err == nil {
			f.err = fmt.Errorf("%s must be a whole number", name)
		}
		return nil
	}
	return &n
}

func (f *form) str(name string) string {
	if v := f.text(name); v != nil {
		return *v
	}
	return ""
}

func (f *form) intValue(name string) int {
	if n := f.number(name); n != nil {
		return *n
	}
	return 0
}

// errorMessage turns a form or validation error into text for the page.
func errorMessage(err error) string {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("%s is required.", fieldLabel(verr.Field))
	}
	return err.Error()
}

func fieldLabel(field string) string {
	label := strings.ReplaceAll(field, "_", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}

// parseID reads the {id} path value. It answers 404 for ids that cannot exist.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return 0, false
	}
	return id, true
}

func serverError(w http.ResponseWriter, message string, err error) {
	slog.Error(message, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
