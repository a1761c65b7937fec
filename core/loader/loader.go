package loader

import (
	"fmt"
	"strings"
	"time"

	"github.com/omniweb-dev/omniweb/domain/page"
	"github.com/rs/zerolog"
)

// DefaultIgnore lists units that are registered for other purposes but
// intentionally never loaded as modules.
var DefaultIgnore = []string{
	"quotes.share",
	"swappedwords.config",
}

// slowLoadThreshold is the per-unit load latency above which a warning is
// emitted. Slow units delay startup but never abort it.
const slowLoadThreshold = 100 * time.Millisecond

// Result accumulates one discovery pass. It is fully built during the pass
// and treated as read-only afterwards.
type Result struct {
	// Loaded holds the qualified names of successfully loaded units.
	Loaded []string

	// Infos holds the collected descriptors, in load order.
	Infos []*page.Info

	// Errors holds one message per contract violation.
	Errors []string

	// Ignored counts the units skipped via ignore rules.
	Ignored int

	// Slow counts the units that exceeded the load latency threshold.
	Slow int
}

// Config configures a discovery pass.
type Config struct {
	// Registry holds the compiled-in module entry points.
	Registry *Registry

	// ManifestDir optionally names a directory of YAML manifest units.
	ManifestDir string

	// Ignore is the merged ignore list: exact qualified names plus
	// "group.*" wildcards. DefaultIgnore is always applied in addition.
	Ignore []string

	// DevMode escalates contract violations to a startup failure.
	DevMode bool

	Logger zerolog.Logger
}

// StartupError aborts process startup in dev mode. It carries all
// accumulated contract violations.
type StartupError struct {
	Errors []string
}

func (e *StartupError) Error() string {
	return strings.Join(e.Errors, "\n")
}

// MergeIgnore combines the built-in ignore list with a comma separated
// configuration value.
func MergeIgnore(csv string) []string {
	merged := append([]string{}, DefaultIgnore...)
	for _, name := range strings.Split(csv, ",") {
		if name = strings.TrimSpace(name); name != "" {
			merged = append(merged, name)
		}
	}
	return merged
}

// ignored reports whether a qualified name is excluded: by the "_" opt-out
// prefix on its group or unit part, by a "group.*" wildcard or by an exact
// ignore-list entry.
func ignored(name string, ignore []string) bool {
	group, unit := splitName(name)
	if strings.HasPrefix(group, "_") || strings.HasPrefix(unit, "_") {
		return true
	}
	for _, entry := range ignore {
		if entry == name || entry == group+".*" {
			return true
		}
	}
	return false
}

// Discover runs one discovery pass: it walks the registry and the manifest
// directory, validates the module contract per unit and collects the
// descriptors. Contract violations never abort the scan; in dev mode they
// abort startup after the scan completes, in production they are logged
// and the successfully loaded modules are served.
func Discover(cfg Config) (*Result, error) {
	res := &Result{}

	if cfg.Registry != nil {
		for _, name := range cfg.Registry.Names() {
			if ignored(name, cfg.Ignore) {
				res.Ignored++
				continue
			}
			loadRegistered(cfg, res, name)
		}
	}

	if cfg.ManifestDir != "" {
		if err := discoverManifests(cfg, res); err != nil {
			return nil, err
		}
	}

	if len(res.Errors) > 0 {
		if cfg.DevMode {
			// abort startup so misconfigured modules get fixed
			return nil, &StartupError{Errors: res.Errors}
		}
		for _, msg := range res.Errors {
			cfg.Logger.Error().Msg(msg)
		}
	}

	cfg.Logger.Info().
		Int("loaded", len(res.Loaded)).
		Int("ignored", res.Ignored).
		Strs("modules", res.Loaded).
		Msg("module discovery finished")

	return res, nil
}

// loadRegistered validates and invokes one registry entry point.
func loadRegistered(cfg Config, res *Result, name string) {
	entry := cfg.Registry.entry(name)
	if entry == nil {
		res.Errors = append(res.Errors, fmt.Sprintf(
			"module %q has no entry point; register a page.InfoFunc or add %q to the ignore list",
			name, name))
		return
	}

	fn, ok := entry.(page.InfoFunc)
	if !ok {
		res.Errors = append(res.Errors, fmt.Sprintf(
			"entry point of module %q does not return a module descriptor; fix its type or add %q to the ignore list",
			name, name))
		return
	}

	start := time.Now()
	info := fn()
	elapsed := time.Since(start)

	if info == nil {
		res.Errors = append(res.Errors, fmt.Sprintf(
			"entry point of module %q returned no module descriptor", name))
		return
	}

	if elapsed > slowLoadThreshold {
		res.Slow++
		cfg.Logger.Warn().
			Str("module", name).
			Dur("took", elapsed).
			Msg("slow module load is affecting startup time")
	}

	res.Loaded = append(res.Loaded, name)
	res.Infos = append(res.Infos, info)
}
