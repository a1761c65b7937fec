package router

import (
	"net/http"
	"testing"

	"github.com/omniweb-dev/omniweb/domain/page"
	"github.com/omniweb-dev/omniweb/web"
)

type moduleHandler struct {
	page.ModulePage
}

func (moduleHandler) ServeHTTP(http.ResponseWriter, *http.Request) {}

func TestBuildSynthesizesSettings(t *testing.T) {
	info := &page.Info{
		PageInfo: page.PageInfo{Name: "Zitate", Description: "d", Path: "/zitate"},
		Handlers: []page.Rule{
			{Pattern: "/zitate", Handler: &moduleHandler{}},
			{Pattern: "/zitate/go", Handler: &web.Redirect{URL: "/zitate"}},
		},
	}

	table := Build(nil, []*page.Info{info})

	moduleRule := table[0]
	if moduleRule.Settings == nil {
		t.Fatal("module rule has no settings")
	}
	if moduleRule.Settings.ModuleInfo != info {
		t.Error("settings do not reference the module descriptor")
	}
	if moduleRule.Settings.DefaultTitle || moduleRule.Settings.DefaultDescription {
		t.Error("defaults must be off for synthesized settings")
	}

	// native handlers pass through without settings
	if table[1].Settings != nil {
		t.Error("native rule got settings")
	}
}

func TestBuildDoesNotMutateModuleRules(t *testing.T) {
	original := &page.RuleSettings{DefaultTitle: true}
	info := &page.Info{
		PageInfo: page.PageInfo{Name: "M", Description: "d", Path: "/m"},
		Handlers: []page.Rule{
			{Pattern: "/m", Handler: &moduleHandler{}, Settings: original},
		},
	}

	table := Build(nil, []*page.Info{info})

	if original.ModuleInfo != nil {
		t.Error("module-owned settings were mutated")
	}
	if table[0].Settings == original {
		t.Error("settings were not copied")
	}
	if !table[0].Settings.DefaultTitle {
		t.Error("copied settings lost DefaultTitle")
	}
	if table[0].Settings.ModuleInfo != info {
		t.Error("copied settings missing descriptor")
	}
}

func TestBuildAliasRules(t *testing.T) {
	info := &page.Info{
		PageInfo: page.PageInfo{Name: "S", Description: "d", Path: "/kaenguru-soundboard"},
		Aliases:  []string{"/soundboard"},
	}

	table := Build(nil, []*page.Info{info})

	alias := table[0]
	if alias.Pattern != `(?i)/soundboard(/.*|)` {
		t.Errorf("alias pattern = %q", alias.Pattern)
	}
	redirect, ok := alias.Handler.(*web.Redirect)
	if !ok {
		t.Fatalf("alias handler = %T", alias.Handler)
	}
	if redirect.URL != "/kaenguru-soundboard{0}" {
		t.Errorf("alias target = %q", redirect.URL)
	}
	if !redirect.Permanent {
		t.Error("alias redirects should be permanent")
	}
}

func TestBuildSkipsAliasesWithoutPath(t *testing.T) {
	info := &page.Info{
		PageInfo: page.PageInfo{Name: "Pathless", Description: "d"},
		Aliases:  []string{"/old-name"},
	}

	table := Build(nil, []*page.Info{info})

	for _, rule := range table {
		if rule.Name == "alias:/old-name" {
			t.Fatalf("pathless descriptor produced alias rule %q", rule.Pattern)
		}
	}
	if len(table) != 2 {
		t.Errorf("table = %d rules, want only the two API fallbacks", len(table))
	}
}

func TestBuildEmptyStillHasFallbacks(t *testing.T) {
	table := Build(nil, nil)
	if len(table) != 2 {
		t.Fatalf("table = %d rules, want the two API fallbacks", len(table))
	}
	if table[0].Pattern != `(?i)/(.+)/api/?` || table[1].Pattern != `(?i)/api/?` {
		t.Errorf("fallback patterns = %q, %q", table[0].Pattern, table[1].Pattern)
	}
}

func TestBuildOrdering(t *testing.T) {
	static := []page.Rule{{Pattern: "/static/.*", Handler: http.NotFoundHandler(), Name: "static"}}
	info := &page.Info{
		PageInfo: page.PageInfo{Name: "M", Description: "d", Path: "/m"},
		Handlers: []page.Rule{{Pattern: "/m", Handler: &moduleHandler{}, Name: "m"}},
		Aliases:  []string{"/alias"},
	}

	table := Build(static, []*page.Info{info})

	names := make([]string, len(table))
	for i, rule := range table {
		names[i] = rule.Name
	}

	want := []string{"static", "m", "alias:/alias", "api-alias", "api-root"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("table order = %v, want %v", names, want)
		}
	}

	// the API fallbacks are always last
	last := table[len(table)-1]
	if last.Pattern != `(?i)/api/?` {
		t.Errorf("last pattern = %q", last.Pattern)
	}
	if target := last.Handler.(*web.Redirect).URL; target != "/api/endpunkte" {
		t.Errorf("api root target = %q", target)
	}
}
