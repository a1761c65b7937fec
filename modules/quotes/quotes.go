// Package quotes serves falsch zugeordnete Zitate: real quotes attributed
// to authors who never said them, rated by visitors and stored in SQLite.
package quotes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/omniweb-dev/omniweb/domain/page"
	"github.com/omniweb-dev/omniweb/domain/quote"
	"github.com/omniweb-dev/omniweb/parse"
	"github.com/omniweb-dev/omniweb/web"
	"github.com/rs/zerolog/log"
)

// ShareTargets maps share button names to URL templates. It is registered
// under its own qualified name for the share page tooling but is not a
// module, so discovery must skip it via the ignore list.
var ShareTargets = map[string]string{
	"mastodon": "https://toot.kytta.dev/?text={text}",
	"email":    "mailto:?subject={text}&body={url}",
}

// Module builds the entry point with the given store bound in.
func Module(store quote.Store) page.InfoFunc {
	return func() *page.Info {
		return &page.Info{
			PageInfo: page.PageInfo{
				Name:        "Falsche Zitate",
				Description: "Zitate, die ihren Autoren falsch zugeordnet wurden",
				Path:        "/zitate",
				Keywords:    []string{"Zitate", "falsch", "Autoren"},
			},
			SubPages: []page.PageInfo{
				{
					Name:        "Zitate-API",
					Description: "Ein zufälliges falsches Zitat als JSON",
					Path:        "/api/zitate",
				},
			},
			Aliases: []string{"/z", "/quotes"},
			Handlers: []page.Rule{
				{Pattern: "/zitate", Handler: &htmlHandler{store: store}, Name: "quotes"},
				{Pattern: "/zitate/([0-9]+)", Handler: &htmlHandler{store: store}, Name: "quote"},
				{Pattern: "/api/zitate", Handler: &apiHandler{store: store}, Name: "quotes-api"},
				{Pattern: "/api/zitate/([0-9]+)", Handler: &apiHandler{store: store}, Name: "quote-api"},
			},
		}
	}
}

type htmlHandler struct {
	page.ModulePage
	store quote.Store
}

type quotePage struct {
	Quote    string
	Author   string
	Rating   int
	NextPath string
}

func (h *htmlHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q, ok := fetch(w, r, h.store)
	if !ok {
		return
	}
	web.Render(w, r, "zitate", quotePage{
		Quote:    q.Quote,
		Author:   q.Author,
		Rating:   q.Rating,
		NextPath: "/zitate",
	})
}

type apiHandler struct {
	page.ModulePage
	store quote.Store
}

var rateShape = parse.Object("rate", nil,
	parse.Opt("bewertung", parse.Optional(parse.Int()), nil),
)

func (h *apiHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	args, ok := web.Args(w, r, rateShape)
	if !ok {
		return
	}

	q, ok := fetch(w, r, h.store)
	if !ok {
		return
	}

	if delta, isSet := args["bewertung"].(int); isSet && r.Method == http.MethodPost {
		if err := h.store.Rate(r.Context(), q.ID, clampRating(delta)); err != nil {
			log.Error().Err(err).Int64("id", q.ID).Msg("rate quote")
			web.RespondJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		q.Rating += clampRating(delta)
	}

	web.RespondJSON(w, http.StatusOK, map[string]any{
		"id":        q.ID,
		"zitat":     q.Quote,
		"autor":     q.Author,
		"bewertung": q.Rating,
	})
}

// fetch loads the quote addressed by the rule's capture, or a random one
// for the capture-free patterns. A false return means the response has
// already been written.
func fetch(w http.ResponseWriter, r *http.Request, store quote.Store) (quote.WrongQuote, bool) {
	captures := web.Captures(r.Context())

	var q quote.WrongQuote
	var err error
	if len(captures) > 0 && captures[0] != "" {
		var id int64
		id, err = strconv.ParseInt(captures[0], 10, 64)
		if err == nil {
			q, err = store.Get(r.Context(), id)
		}
	} else {
		q, err = store.Random(r.Context())
	}

	if err != nil {
		if errors.Is(err, quote.ErrNotFound) {
			web.RenderError(w, r, http.StatusNotFound, "Dieses Zitat wurde nicht gefunden.")
		} else {
			log.Error().Err(err).Msg("load quote")
			web.RenderError(w, r, http.StatusInternalServerError, "Interner Fehler.")
		}
		return quote.WrongQuote{}, false
	}
	return q, true
}

// clampRating keeps single ratings within one step in either direction.
func clampRating(delta int) int {
	if delta > 1 {
		return 1
	}
	if delta < -1 {
		return -1
	}
	return delta
}
