package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/omniweb-dev/omniweb/domain/quote"
	"github.com/omniweb-dev/omniweb/web"
)

type stubStore struct {
	q quote.WrongQuote
}

func (s stubStore) Get(_ context.Context, id int64) (quote.WrongQuote, error) {
	if id != s.q.ID {
		return quote.WrongQuote{}, quote.ErrNotFound
	}
	return s.q, nil
}

func (s stubStore) Random(context.Context) (quote.WrongQuote, error) {
	return s.q, nil
}

func (s stubStore) List(context.Context) ([]quote.WrongQuote, error) {
	return []quote.WrongQuote{s.q}, nil
}

func (s stubStore) Rate(context.Context, int64, int) error {
	return nil
}

func newMux(t *testing.T) *web.Mux {
	t.Helper()
	info := Module(stubStore{q: quote.WrongQuote{
		ID:     1,
		Quote:  "Der frühe Vogel fängt den Wurm.",
		Author: "Albert Einstein",
	}})()
	mux, err := web.NewMux(info.Handlers, nil)
	if err != nil {
		t.Fatalf("NewMux error: %v", err)
	}
	return mux
}

func TestAPIRandomQuote(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/zitate", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"zitat"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestAPIUnknownQuoteIs404(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/zitate/999", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", rec.Code)
	}
}
