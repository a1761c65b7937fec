package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
)

//go:embed templates/* static/*
var assets embed.FS

// Redirect is a native rule handler that sends the client to a fixed URL.
// Placeholders of the form {0}, {1} expand to the path captures of the
// matched rule, so alias rules can carry the request's trailing path over
// to the canonical location.
type Redirect struct {
	URL       string
	Permanent bool
}

func (h *Redirect) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	url := expandCaptures(h.URL, Captures(r.Context()))
	if query := r.URL.RawQuery; query != "" {
		url += "?" + query
	}
	status := http.StatusFound
	if h.Permanent {
		status = http.StatusMovedPermanently
	}
	http.Redirect(w, r, url, status)
}

func expandCaptures(url string, captures []string) string {
	for i, capture := range captures {
		url = strings.ReplaceAll(url, "{"+strconv.Itoa(i)+"}", capture)
	}
	return url
}

// StaticFiles serves the embedded static assets under the given URL prefix.
func StaticFiles(prefix string) http.Handler {
	staticFS, _ := fs.Sub(assets, "static")
	return http.StripPrefix(prefix, http.FileServer(http.FS(staticFS)))
}

// NotFound renders the 404 page.
func NotFound(w http.ResponseWriter, r *http.Request) {
	RenderError(w, r, http.StatusNotFound, "Diese Seite wurde nicht gefunden.")
}
