// Package endpoints serves the API endpoint listing at /api/endpunkte. The
// listing is assembled from the discovered module descriptors, so endpoints
// appear and disappear with their modules.
package endpoints

import (
	"net/http"
	"strings"

	"github.com/omniweb-dev/omniweb/domain/page"
	"github.com/omniweb-dev/omniweb/web"
)

// Info is the module entry point.
func Info() *page.Info {
	return &page.Info{
		PageInfo: page.PageInfo{
			Name:        "API-Endpunkte",
			Description: "Alle verfügbaren API-Endpunkte",
			Path:        "/api/endpunkte",
			Keywords:    []string{"API", "Endpunkte"},
		},
		Handlers: []page.Rule{
			{Pattern: "/api/endpunkte", Handler: &handler{}, Name: "endpoints"},
		},
	}
}

type handler struct {
	page.ModulePage
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	endpoints := collect(web.Pages(r.Context()))
	if strings.HasPrefix(r.Header.Get("Accept"), "application/json") {
		web.RespondJSON(w, http.StatusOK, endpoints)
		return
	}
	web.Render(w, r, "endpunkte", endpoints)
}

// collect gathers every page with a path under /api/ from the module
// descriptors, including the modules' sub pages.
func collect(infos []*page.Info) []page.PageInfo {
	var endpoints []page.PageInfo
	for _, info := range infos {
		if strings.HasPrefix(info.Path, "/api/") {
			endpoints = append(endpoints, info.PageInfo)
		}
		for _, sub := range info.SubPages {
			if strings.HasPrefix(sub.Path, "/api/") {
				endpoints = append(endpoints, sub)
			}
		}
	}
	return endpoints
}
