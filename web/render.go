package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// Frame is the data every page template is executed with. Title,
// description and keywords come from the matched rule's module descriptor
// unless the rule asks for the framework defaults.
type Frame struct {
	Title       string
	Description string
	Keywords    string
	Path        string
	Data        any
}

const (
	defaultTitle       = "Omniweb"
	defaultDescription = "Eine tolle Webseite mit vielen kleinen Diensten"
)

var templates = mustParseTemplates()

// Render executes the named page template inside the base layout. Head
// metadata is derived from the matched rule's settings; native rules and
// rules opting into the defaults get the framework values.
func Render(w http.ResponseWriter, r *http.Request, name string, data any) {
	RenderStatus(w, r, http.StatusOK, name, data)
}

// RenderStatus is Render with an explicit response status.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	frame := Frame{
		Title:       defaultTitle,
		Description: defaultDescription,
		Path:        r.URL.Path,
		Data:        data,
	}

	if settings := Settings(r.Context()); settings != nil && settings.ModuleInfo != nil {
		info := settings.ModuleInfo.PageAt(r.URL.Path)
		if !settings.DefaultTitle {
			frame.Title = info.Name
		}
		if !settings.DefaultDescription {
			frame.Description = info.Description
		}
		frame.Keywords = settings.ModuleInfo.KeywordsFor(r.URL.Path)
	}

	tmpl, ok := templates[name]
	if !ok {
		log.Error().Str("template", name).Msg("unknown page template")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "base", frame); err != nil {
		log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}

// RenderError renders the error page with the given status and message.
func RenderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RenderStatus(w, r, status, "error", struct {
		Status  int
		Message string
	}{Status: status, Message: message})
}

// RespondJSON writes a JSON response. API handlers use it for both data
// and error payloads.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode json response")
	}
}

// RespondJSONError writes the standard JSON error payload.
func RespondJSONError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]any{
		"status": status,
		"reason": message,
	})
}

// mustParseTemplates parses every page template against the base layout.
// Each page becomes its own template set so pages can override blocks
// independently.
func mustParseTemplates() map[string]*template.Template {
	layout, err := fs.ReadFile(assets, "templates/layouts/base.html")
	if err != nil {
		panic(fmt.Sprintf("web: read base layout: %v", err))
	}

	pages, err := fs.Glob(assets, "templates/pages/*.html")
	if err != nil {
		panic(fmt.Sprintf("web: glob page templates: %v", err))
	}

	parsed := make(map[string]*template.Template, len(pages))
	for _, path := range pages {
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/pages/"), ".html")
		content, err := fs.ReadFile(assets, path)
		if err != nil {
			panic(fmt.Sprintf("web: read template %s: %v", path, err))
		}

		tmpl := template.New(name)
		if _, err := tmpl.Parse(string(layout)); err != nil {
			panic(fmt.Sprintf("web: parse layout for %s: %v", name, err))
		}
		if _, err := tmpl.Parse(string(content)); err != nil {
			panic(fmt.Sprintf("web: parse template %s: %v", name, err))
		}
		parsed[name] = tmpl
	}
	return parsed
}
