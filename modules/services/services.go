// Package services lists the external services run alongside the website.
package services

import (
	"net/http"

	"github.com/omniweb-dev/omniweb/domain/page"
	"github.com/omniweb-dev/omniweb/web"
)

// Service is one externally hosted offering.
type Service struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var services = []Service{
	{Name: "Mumble", Description: "Ein Sprachchat-Server unter mumble.omniweb.org"},
	{Name: "Matrix", Description: "Ein Matrix-Heimserver für Chats"},
	{Name: "SuperTuxKart", Description: "Ein Server für das freie Rennspiel SuperTuxKart"},
}

// Info is the module entry point.
func Info() *page.Info {
	return &page.Info{
		PageInfo: page.PageInfo{
			Name:        "Dienste",
			Description: "Übersicht über die angebotenen Dienste",
			Path:        "/services",
			Keywords:    []string{"Dienste", "Services", "Mumble", "Matrix"},
		},
		Aliases: []string{"/services-list", "/dienste"},
		SubPages: []page.PageInfo{
			{
				Name:        "Dienste-API",
				Description: "Die Dienste als JSON",
				Path:        "/api/services",
			},
		},
		Handlers: []page.Rule{
			{Pattern: "/services", Handler: &htmlHandler{}, Name: "services"},
			{Pattern: "/api/services", Handler: &apiHandler{}, Name: "services-api"},
		},
	}
}

type htmlHandler struct {
	page.ModulePage
}

func (h *htmlHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	web.Render(w, r, "services", services)
}

type apiHandler struct {
	page.ModulePage
}

func (h *apiHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	web.RespondJSON(w, http.StatusOK, services)
}
