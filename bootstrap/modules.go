package bootstrap

import (
	"github.com/omniweb-dev/omniweb/core/loader"
	"github.com/omniweb-dev/omniweb/domain/page"
	"github.com/omniweb-dev/omniweb/domain/quote"
	"github.com/omniweb-dev/omniweb/modules/converter"
	"github.com/omniweb-dev/omniweb/modules/discord"
	"github.com/omniweb-dev/omniweb/modules/endpoints"
	"github.com/omniweb-dev/omniweb/modules/mainpage"
	"github.com/omniweb-dev/omniweb/modules/quotes"
	"github.com/omniweb-dev/omniweb/modules/services"
	"github.com/omniweb-dev/omniweb/modules/solver"
	"github.com/omniweb-dev/omniweb/modules/soundboard"
	"github.com/omniweb-dev/omniweb/modules/swappedwords"
	"github.com/omniweb-dev/omniweb/modules/version"
)

// DefaultRegistry builds the registry of compiled-in modules. The entries
// quotes.share and swappedwords.config are registered for their tooling but
// are not modules; the default ignore list keeps discovery away from them.
func DefaultRegistry(quoteStore quote.Store) *loader.Registry {
	reg := loader.NewRegistry()

	reg.Register("mainpage.index", page.InfoFunc(mainpage.Info))
	reg.Register("quotes.quotes", quotes.Module(quoteStore))
	reg.Register("quotes.share", quotes.ShareTargets)
	reg.Register("converter.converter", page.InfoFunc(converter.Info))
	reg.Register("solver.hangman", page.InfoFunc(solver.Info))
	reg.Register("soundboard.soundboard", page.InfoFunc(soundboard.Info))
	reg.Register("swappedwords.swapped", page.InfoFunc(swappedwords.Info))
	reg.Register("swappedwords.config", swappedwords.DefaultConfig)
	reg.Register("services.services", page.InfoFunc(services.Info))
	reg.Register("version.version", page.InfoFunc(version.Info))
	reg.Register("discord.discord", page.InfoFunc(discord.Info))
	reg.Register("endpoints.endpoints", page.InfoFunc(endpoints.Info))

	return reg
}
