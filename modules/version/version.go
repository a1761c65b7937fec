// Package version reports build information about the running binary.
package version

import (
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/omniweb-dev/omniweb/domain/page"
	"github.com/omniweb-dev/omniweb/web"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Build describes the running binary.
type Build struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
}

// Current returns the build information, reading the VCS revision from the
// embedded build info when available.
func Current() Build {
	build := Build{
		Version:   Version,
		Commit:    "unknown",
		GoVersion: runtime.Version(),
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				build.Commit = setting.Value
			}
		}
	}
	return build
}

// Info is the module entry point.
func Info() *page.Info {
	return &page.Info{
		PageInfo: page.PageInfo{
			Name:        "Version",
			Description: "Die aktuelle Version der Webseite",
			Path:        "/version",
			Keywords:    []string{"Version", "Build"},
		},
		SubPages: []page.PageInfo{
			{
				Name:        "Versions-API",
				Description: "Die aktuelle Version als JSON",
				Path:        "/api/version",
			},
		},
		Handlers: []page.Rule{
			{Pattern: "/version", Handler: &htmlHandler{}, Name: "version"},
			{Pattern: "/api/version", Handler: &apiHandler{}, Name: "version-api"},
		},
	}
}

type htmlHandler struct {
	page.ModulePage
}

func (h *htmlHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	web.Render(w, r, "version", Current())
}

type apiHandler struct {
	page.ModulePage
}

func (h *apiHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	web.RespondJSON(w, http.StatusOK, Current())
}
