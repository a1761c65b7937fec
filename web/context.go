package web

import (
	"context"

	"github.com/omniweb-dev/omniweb/domain/page"
)

type ctxKey string

const (
	settingsKey ctxKey = "rule-settings"
	capturesKey ctxKey = "captures"
	pagesKey    ctxKey = "pages"
)

// withMatch adds the matched rule's settings and path captures to the
// request context. Native handlers such as Redirect read the captures;
// module handlers read the settings during rendering.
func withMatch(ctx context.Context, settings *page.RuleSettings, captures []string) context.Context {
	ctx = context.WithValue(ctx, capturesKey, captures)
	if settings != nil {
		ctx = context.WithValue(ctx, settingsKey, settings)
	}
	return ctx
}

// Settings retrieves the matched rule's settings, or nil for native rules.
func Settings(ctx context.Context) *page.RuleSettings {
	settings, _ := ctx.Value(settingsKey).(*page.RuleSettings)
	return settings
}

// Captures retrieves the path captures of the matched rule.
func Captures(ctx context.Context) []string {
	captures, _ := ctx.Value(capturesKey).([]string)
	return captures
}

// WithPages adds the visible module listing to the context. The serving
// layer installs it once per table build so listing pages can render
// without holding a reference to the mux.
func WithPages(ctx context.Context, infos []*page.Info) context.Context {
	return context.WithValue(ctx, pagesKey, infos)
}

// Pages retrieves the visible module listing.
func Pages(ctx context.Context) []*page.Info {
	infos, _ := ctx.Value(pagesKey).([]*page.Info)
	return infos
}
