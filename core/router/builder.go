// Package router assembles the ordered routing table from static rules and
// the discovered module descriptors. Building is pure: the inputs are never
// mutated, so a table can be rebuilt from a fresh discovery pass and swapped
// in atomically while requests are being served.
package router

import (
	"regexp"

	"github.com/omniweb-dev/omniweb/domain/page"
	"github.com/omniweb-dev/omniweb/web"
)

// apiAliasPattern rewrites /<page>/api/... requests onto the flat /api
// namespace. It sits second to last so every module rule wins over it.
const apiAliasPattern = `(?i)/(.+)/api/?`

// apiRootPattern sends bare /api requests to the endpoint listing.
const apiRootPattern = `(?i)/api/?`

// Build assembles the routing table: the static rules first, then each
// module's rules in descriptor order followed by its alias redirects, then
// the two fixed API fallbacks. Module-contributed rules get their settings
// synthesized here; the module's own rule values are copied, never touched.
func Build(static []page.Rule, infos []*page.Info) []page.Rule {
	table := make([]page.Rule, 0, len(static)+len(infos)*2+2)
	table = append(table, static...)

	for _, info := range infos {
		for _, rule := range info.Handlers {
			table = append(table, withSettings(rule, info))
		}
		// aliases need a canonical path to redirect to
		if info.Path != "" {
			for _, alias := range info.Aliases {
				table = append(table, aliasRule(alias, info.Path))
			}
		}
	}

	table = append(table,
		page.Rule{
			Pattern: apiAliasPattern,
			Handler: &web.Redirect{URL: "/api/{0}"},
			Name:    "api-alias",
		},
		page.Rule{
			Pattern: apiRootPattern,
			Handler: &web.Redirect{URL: "/api/endpunkte"},
			Name:    "api-root",
		},
	)

	return table
}

// withSettings returns the rule with settings synthesized for module
// handlers. Native handlers pass through unchanged. Existing settings are
// copied before the descriptor is attached so that module-owned values stay
// immutable across rebuilds.
func withSettings(rule page.Rule, info *page.Info) page.Rule {
	if _, ok := rule.Handler.(page.ModuleHandler); !ok {
		return rule
	}

	settings := page.RuleSettings{
		DefaultTitle:       false,
		DefaultDescription: false,
	}
	if rule.Settings != nil {
		settings = *rule.Settings
	}
	settings.ModuleInfo = info
	rule.Settings = &settings
	return rule
}

// aliasRule matches an alternate prefix, with or without a trailing rest,
// case-insensitively, and redirects onto the canonical path. The rest of
// the request path is carried over.
func aliasRule(alias, path string) page.Rule {
	return page.Rule{
		Pattern: `(?i)` + regexp.QuoteMeta(alias) + `(/.*|)`,
		Handler: &web.Redirect{URL: path + "{0}", Permanent: true},
		Name:    "alias:" + alias,
	}
}
