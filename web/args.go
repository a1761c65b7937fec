package web

import (
	"errors"
	"net/http"

	"github.com/omniweb-dev/omniweb/parse"
)

// Args parses the request's query arguments into the given shape and
// responds with 400 on failure. Handlers check the second return value and
// bail out when it is false; the error response has already been written.
func Args(w http.ResponseWriter, r *http.Request, shape parse.Shape) (parse.Values, bool) {
	parsed, err := parse.Parse(shape, parse.FromValues(r.URL.Query()), false)
	if err != nil {
		var perr *parse.Error
		message := "invalid arguments"
		if errors.As(err, &perr) {
			message = perr.Error()
		}
		RespondJSONError(w, http.StatusBadRequest, message)
		return nil, false
	}

	values, ok := parsed.(parse.Values)
	if !ok {
		RespondJSONError(w, http.StatusBadRequest, "invalid arguments")
		return nil, false
	}
	return values, true
}
