package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/omniweb-dev/omniweb/domain/page"
)

func serve(t *testing.T, mux *Mux, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestMuxFirstMatchWins(t *testing.T) {
	mark := func(tag string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(tag))
		})
	}

	mux, err := NewMux([]page.Rule{
		{Pattern: "/a", Handler: mark("first")},
		{Pattern: "/(.*)", Handler: mark("catchall")},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if got := serve(t, mux, http.MethodGet, "/a").Body.String(); got != "first" {
		t.Errorf("body = %q", got)
	}
	if got := serve(t, mux, http.MethodGet, "/b").Body.String(); got != "catchall" {
		t.Errorf("body = %q", got)
	}
}

func TestMuxAnchorsPatterns(t *testing.T) {
	mux, err := NewMux([]page.Rule{
		{Pattern: "/a", Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	// a prefix match is not a match
	if rec := serve(t, mux, http.MethodGet, "/a/b"); rec.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", rec.Code)
	}
}

func TestMuxRedirectCaptures(t *testing.T) {
	mux, err := NewMux([]page.Rule{
		{Pattern: `(?i)/soundboard(/.*|)`, Handler: &Redirect{URL: "/kaenguru-soundboard{0}", Permanent: true}},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		target string
		want   string
	}{
		{"/soundboard", "/kaenguru-soundboard"},
		{"/soundboard/herta", "/kaenguru-soundboard/herta"},
		{"/SoundBoard/herta", "/kaenguru-soundboard/herta"},
		{"/soundboard?x=1", "/kaenguru-soundboard?x=1"},
	}
	for _, tt := range tests {
		rec := serve(t, mux, http.MethodGet, tt.target)
		if rec.Code != http.StatusMovedPermanently {
			t.Errorf("%s: code = %d", tt.target, rec.Code)
		}
		if got := rec.Header().Get("Location"); got != tt.want {
			t.Errorf("%s: location = %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestMuxApiFallbacks(t *testing.T) {
	mux, err := NewMux([]page.Rule{
		{Pattern: `(?i)/(.+)/api/?`, Handler: &Redirect{URL: "/api/{0}"}},
		{Pattern: `(?i)/api/?`, Handler: &Redirect{URL: "/api/endpunkte"}},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	rec := serve(t, mux, http.MethodGet, "/zitate/api")
	if got := rec.Header().Get("Location"); got != "/api/zitate" {
		t.Errorf("location = %q", got)
	}

	rec = serve(t, mux, http.MethodGet, "/API/")
	if got := rec.Header().Get("Location"); got != "/api/endpunkte" {
		t.Errorf("location = %q", got)
	}
}

func TestMuxSettingsInContext(t *testing.T) {
	info := &page.Info{PageInfo: page.PageInfo{Name: "M", Path: "/m"}}
	settings := &page.RuleSettings{ModuleInfo: info}

	var got *page.RuleSettings
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Settings(r.Context())
	})

	mux, err := NewMux([]page.Rule{
		{Pattern: "/m", Handler: handler, Settings: settings},
	}, []*page.Info{info})
	if err != nil {
		t.Fatal(err)
	}

	serve(t, mux, http.MethodGet, "/m")
	if got != settings {
		t.Errorf("settings in context = %v", got)
	}
}

func TestMuxPagesInContext(t *testing.T) {
	visible := &page.Info{PageInfo: page.PageInfo{Name: "A", Path: "/a"}}
	hidden := &page.Info{PageInfo: page.PageInfo{Name: "H", Path: "/h", Hidden: true}}

	var got []*page.Info
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Pages(r.Context())
	})

	mux, err := NewMux([]page.Rule{{Pattern: "/", Handler: handler}}, []*page.Info{visible, hidden})
	if err != nil {
		t.Fatal(err)
	}

	serve(t, mux, http.MethodGet, "/")
	if len(got) != 1 || got[0] != visible {
		t.Errorf("pages in context = %v", got)
	}
}

func TestMuxNotFound(t *testing.T) {
	mux, err := NewMux(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	rec := serve(t, mux, http.MethodGet, "/nope")
	if rec.Code != http.StatusNotFound {
		t.Errorf("code = %d", rec.Code)
	}
}

func TestNewMuxRejectsBadPattern(t *testing.T) {
	_, err := NewMux([]page.Rule{{Pattern: "([", Handler: http.NotFoundHandler()}}, nil)
	if err == nil {
		t.Error("invalid pattern should fail compilation")
	}
}
