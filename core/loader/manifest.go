package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/omniweb-dev/omniweb/domain/page"
	"github.com/omniweb-dev/omniweb/web"
	"gopkg.in/yaml.v3"
)

// manifest is the on-disk form of a redirect-only module: one YAML unit
// per file, one subdirectory per module group. Manifest modules cannot
// carry code, so their handlers are limited to redirects.
type manifest struct {
	ModuleInfo *manifestInfo `yaml:"module_info"`
}

type manifestInfo struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Path        string             `yaml:"path,omitempty"`
	Keywords    []string           `yaml:"keywords,omitempty"`
	Aliases     []string           `yaml:"aliases,omitempty"`
	Hidden      bool               `yaml:"hidden,omitempty"`
	SubPages    []manifestPage     `yaml:"sub_pages,omitempty"`
	Redirects   []manifestRedirect `yaml:"redirects,omitempty"`
}

type manifestPage struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Path        string   `yaml:"path,omitempty"`
	Keywords    []string `yaml:"keywords,omitempty"`
}

type manifestRedirect struct {
	Pattern   string `yaml:"pattern"`
	URL       string `yaml:"url"`
	Permanent bool   `yaml:"permanent,omitempty"`
}

// discoverManifests scans the manifest directory: one subdirectory per
// module, *.yaml candidate units inside. Units opt out with a "_" name
// prefix or an ignore-list entry. A missing directory is not an error;
// an unreadable one is, since that points at a deployment problem.
func discoverManifests(cfg Config, res *Result) error {
	groups, err := os.ReadDir(cfg.ManifestDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read manifest dir %s: %w", cfg.ManifestDir, err)
	}

	for _, group := range groups {
		if !group.IsDir() || strings.HasPrefix(group.Name(), "_") {
			continue
		}
		if ignoredGroup(group.Name(), cfg.Ignore) {
			res.Ignored++
			continue
		}

		units, err := os.ReadDir(filepath.Join(cfg.ManifestDir, group.Name()))
		if err != nil {
			return fmt.Errorf("read module dir %s: %w", group.Name(), err)
		}

		for _, unit := range units {
			ext := filepath.Ext(unit.Name())
			if unit.IsDir() || (ext != ".yaml" && ext != ".yml") {
				continue
			}
			name := group.Name() + "." + strings.TrimSuffix(unit.Name(), ext)
			if ignored(name, cfg.Ignore) {
				res.Ignored++
				continue
			}
			path := filepath.Join(cfg.ManifestDir, group.Name(), unit.Name())
			loadManifest(cfg, res, name, path)
		}
	}

	return nil
}

func ignoredGroup(group string, ignore []string) bool {
	for _, entry := range ignore {
		if entry == group+".*" {
			return true
		}
	}
	return false
}

// loadManifest validates and loads one manifest unit. Both contract checks
// of code modules apply: the unit must declare a module_info document and
// that document must actually describe a module.
func loadManifest(cfg Config, res *Result, name, path string) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s is not readable: %v", path, err))
		return
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s is not a valid module manifest: %v", path, err))
		return
	}

	if m.ModuleInfo == nil {
		res.Errors = append(res.Errors, fmt.Sprintf(
			"%s has no module_info document; add one or add %q to the ignore list", path, name))
		return
	}
	if m.ModuleInfo.Name == "" || m.ModuleInfo.Description == "" {
		res.Errors = append(res.Errors, fmt.Sprintf(
			"module_info in %s does not describe a module: name and description are required", path))
		return
	}

	info := m.ModuleInfo.toInfo()

	if elapsed := time.Since(start); elapsed > slowLoadThreshold {
		res.Slow++
		cfg.Logger.Warn().
			Str("module", name).
			Dur("took", elapsed).
			Msg("slow module load is affecting startup time")
	}

	res.Loaded = append(res.Loaded, name)
	res.Infos = append(res.Infos, info)
}

func (mi *manifestInfo) toInfo() *page.Info {
	info := &page.Info{
		PageInfo: page.PageInfo{
			Name:        mi.Name,
			Description: mi.Description,
			Path:        mi.Path,
			Keywords:    mi.Keywords,
			Hidden:      mi.Hidden,
		},
		Aliases: mi.Aliases,
	}
	for _, sub := range mi.SubPages {
		info.SubPages = append(info.SubPages, page.PageInfo{
			Name:        sub.Name,
			Description: sub.Description,
			Path:        sub.Path,
			Keywords:    sub.Keywords,
		})
	}
	for _, redir := range mi.Redirects {
		info.Handlers = append(info.Handlers, page.Rule{
			Pattern: redir.Pattern,
			Handler: &web.Redirect{URL: redir.URL, Permanent: redir.Permanent},
		})
	}
	return info
}
