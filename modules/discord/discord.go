// Package discord redirects /discord to the community's invite link. The
// module contributes only a native redirect, so it never gets rule settings.
package discord

import (
	"github.com/omniweb-dev/omniweb/domain/page"
	"github.com/omniweb-dev/omniweb/web"
)

const inviteURL = "https://discord.gg/JTgmLwcfSs"

// Info is the module entry point.
func Info() *page.Info {
	return &page.Info{
		PageInfo: page.PageInfo{
			Name:        "Discord",
			Description: "Der Discord-Server der Webseite",
			Path:        "/discord",
			Keywords:    []string{"Discord", "Chat"},
			Hidden:      true,
		},
		Handlers: []page.Rule{
			{
				Pattern: "(?i)/discord(/.*|)",
				Handler: &web.Redirect{URL: inviteURL},
				Name:    "discord",
			},
		},
	}
}
