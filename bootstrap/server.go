package bootstrap

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/omniweb-dev/omniweb/web"
	"golang.org/x/crypto/bcrypt"
)

// router builds the outer HTTP router: operational endpoints plus the
// module routing table. The table handler reads the atomic pointer per
// request so rebuilds take effect without restarting the server.
func (a *App) router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if a.Metrics != nil {
		r.Use(a.Metrics.Middleware)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if a.Metrics != nil {
		r.Handle(a.Config().Metrics.Path, a.Metrics.Handler())
	}

	r.Post("/-/reload", a.handleReload)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		a.Mux().ServeHTTP(w, r)
	})

	return r
}

// handleReload rebuilds the routing table on demand. The caller must
// present the admin token as a bearer token; the endpoint is disabled when
// no token hash is configured.
func (a *App) handleReload(w http.ResponseWriter, r *http.Request) {
	hash := a.Config().Admin.TokenHash
	if hash == "" {
		web.RespondJSONError(w, http.StatusNotFound, "reload endpoint disabled")
		return
	}

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) != nil {
		web.RespondJSONError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	if err := a.Rebuild(); err != nil {
		a.Logger.Error().Err(err).Msg("reload failed")
		web.RespondJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	web.RespondJSON(w, http.StatusOK, map[string]any{
		"status": http.StatusOK,
		"rules":  a.Mux().Rules(),
	})
}
