package page

import "net/http"

// Rule is one entry of the routing table: a regex path pattern, the handler
// serving it, optional per-rule settings and an optional name. Patterns are
// matched in table order, first match wins. A "(?i)" prefix requests
// case-insensitive matching.
type Rule struct {
	Pattern  string
	Handler  http.Handler
	Settings *RuleSettings
	Name     string
}

// RuleSettings carries the metadata the serving layer needs to render a
// module page: whether to fall back to framework default title/description
// and the descriptor of the owning module.
type RuleSettings struct {
	DefaultTitle       bool
	DefaultDescription bool
	ModuleInfo         *Info
}

// ModuleHandler marks handlers contributed by feature modules, as opposed
// to native handlers such as redirects and static file servers. Only rules
// whose handler carries this marker get settings synthesized by the routing
// table builder.
type ModuleHandler interface {
	ModulePage()
}

// ModulePage is embedded by module handlers to mark their provenance.
type ModulePage struct{}

// ModulePage implements the ModuleHandler marker.
func (ModulePage) ModulePage() {}
