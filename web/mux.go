// Package web serves the routing table over HTTP: a regex path mux matching
// rules in table order, native redirect and static handlers, and HTML
// rendering for module pages. Templates and static assets are embedded in
// the binary.
package web

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/omniweb-dev/omniweb/domain/page"
)

// Mux matches request paths against an ordered rule table. Patterns are
// anchored to the whole path; the first matching rule wins. A Mux is
// immutable once built, so rebuilds produce a fresh Mux that the server
// swaps in atomically.
type Mux struct {
	rules    []compiledRule
	infos    []*page.Info
	notFound http.Handler
}

type compiledRule struct {
	re       *regexp.Regexp
	handler  http.Handler
	settings *page.RuleSettings
	name     string
}

// NewMux compiles the rule table. The visible page listing is attached to
// every request context so listing pages can render without further wiring.
func NewMux(rules []page.Rule, infos []*page.Info) (*Mux, error) {
	mux := &Mux{
		infos:    page.VisibleInfos(infos),
		notFound: http.HandlerFunc(NotFound),
	}
	for _, rule := range rules {
		re, err := compilePattern(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", rule.Pattern, err)
		}
		mux.rules = append(mux.rules, compiledRule{
			re:       re,
			handler:  rule.Handler,
			settings: rule.Settings,
			name:     rule.Name,
		})
	}
	return mux, nil
}

// compilePattern anchors a rule pattern to the whole request path. A
// leading "(?i)" stays in front of the anchor so it applies to the entire
// expression.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	flags := ""
	if strings.HasPrefix(pattern, "(?i)") {
		flags, pattern = "(?i)", pattern[len("(?i)"):]
	}
	return regexp.Compile(flags + "^(?:" + pattern + ")$")
}

func (m *Mux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := WithPages(r.Context(), m.infos)
	path := r.URL.Path

	for _, rule := range m.rules {
		match := rule.re.FindStringSubmatch(path)
		if match == nil {
			continue
		}
		ctx = withMatch(ctx, rule.settings, match[1:])
		rule.handler.ServeHTTP(w, r.WithContext(ctx))
		return
	}

	m.notFound.ServeHTTP(w, r.WithContext(ctx))
}

// Rules returns the number of compiled rules, for metrics.
func (m *Mux) Rules() int { return len(m.rules) }
