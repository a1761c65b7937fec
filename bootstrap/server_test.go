package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/omniweb-dev/omniweb/config"
	"github.com/rs/zerolog"
)

func TestHandleReloadDisabledWithoutTokenHash(t *testing.T) {
	a := &App{Logger: zerolog.Nop()}
	a.SetConfig(&config.Config{})

	rec := httptest.NewRecorder()
	a.handleReload(rec, httptest.NewRequest(http.MethodPost, "/-/reload", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", rec.Code)
	}
}

func TestHandleReloadRejectsBadToken(t *testing.T) {
	a := &App{Logger: zerolog.Nop()}
	a.SetConfig(&config.Config{Admin: config.AdminConfig{
		TokenHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}})

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/-/reload", nil)
	r.Header.Set("Authorization", "Bearer wrong")
	a.handleReload(rec, r)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("code = %d, want 401", rec.Code)
	}
}

// Hot reload swaps the configuration from the watcher goroutine while
// request handlers read it. Run with the race detector.
func TestConfigSwapDuringRequests(t *testing.T) {
	a := &App{Logger: zerolog.Nop()}
	a.SetConfig(&config.Config{})

	locked := &config.Config{Admin: config.AdminConfig{
		TokenHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			a.SetConfig(locked)
			a.SetConfig(&config.Config{})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			rec := httptest.NewRecorder()
			a.handleReload(rec, httptest.NewRequest(http.MethodPost, "/-/reload", nil))
			if rec.Code != http.StatusNotFound && rec.Code != http.StatusUnauthorized {
				t.Errorf("code = %d", rec.Code)
				return
			}
		}
	}()
	wg.Wait()
}
