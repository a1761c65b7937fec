package bootstrap

import (
	"testing"

	"github.com/omniweb-dev/omniweb/adapters/sqlite"
	"github.com/omniweb-dev/omniweb/core/loader"
	"github.com/omniweb-dev/omniweb/core/router"
	"github.com/omniweb-dev/omniweb/domain/page"
	"github.com/omniweb-dev/omniweb/web"
	"github.com/rs/zerolog"
)

func discoverAll(t *testing.T) *loader.Result {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(); err != nil {
		t.Fatal(err)
	}

	res, err := loader.Discover(loader.Config{
		Registry: DefaultRegistry(sqlite.NewQuoteStore(db)),
		Ignore:   loader.MergeIgnore(""),
		DevMode:  true,
		Logger:   zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	return res
}

func TestDefaultRegistryLoadsCleanly(t *testing.T) {
	res := discoverAll(t)

	if len(res.Errors) != 0 {
		t.Errorf("contract violations: %v", res.Errors)
	}
	// quotes.share and swappedwords.config are registered but not modules
	if res.Ignored != 2 {
		t.Errorf("Ignored = %d, want 2", res.Ignored)
	}
	if len(res.Loaded) != 10 {
		t.Errorf("Loaded = %v, want 10 modules", res.Loaded)
	}
}

func TestModulePathsAreUnique(t *testing.T) {
	res := discoverAll(t)

	seen := map[string]string{}
	var home int
	for i, name := range res.Loaded {
		info := res.Infos[i]
		if info.Path == "/" {
			home++
		}
		if other, dup := seen[info.Path]; dup {
			t.Errorf("path %q claimed by %s and %s", info.Path, other, name)
		}
		seen[info.Path] = name
	}
	if home != 1 {
		t.Errorf("home page claimed %d times, want exactly once", home)
	}
}

func TestFullTableCompiles(t *testing.T) {
	res := discoverAll(t)

	page.SortInfos(res.Infos)
	if res.Infos[0].Path != "/" {
		t.Fatalf("home not first after sort: %s", res.Infos[0].Path)
	}

	table := router.Build(staticRules(), res.Infos)
	mux, err := web.NewMux(table, res.Infos)
	if err != nil {
		t.Fatalf("table does not compile: %v", err)
	}
	if mux.Rules() < len(res.Infos) {
		t.Errorf("rules = %d, fewer than modules", mux.Rules())
	}
}
