// Package mainpage serves the start page: a listing of every visible module.
package mainpage

import (
	"net/http"

	"github.com/omniweb-dev/omniweb/domain/page"
	"github.com/omniweb-dev/omniweb/web"
)

// Info is the module entry point.
func Info() *page.Info {
	return &page.Info{
		PageInfo: page.PageInfo{
			Name:        "Startseite",
			Description: "Die Startseite mit einer Übersicht aller Seiten",
			Path:        "/",
			Keywords:    []string{"Startseite", "Übersicht"},
		},
		Handlers: []page.Rule{
			{Pattern: "/", Handler: &handler{}, Name: "mainpage"},
		},
	}
}

type handler struct {
	page.ModulePage
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	infos := web.Pages(r.Context())
	pages := make([]page.PageInfo, 0, len(infos))
	for _, info := range infos {
		if info.Path != "/" && info.Path != "" {
			pages = append(pages, info.PageInfo)
		}
	}
	web.Render(w, r, "index", pages)
}
