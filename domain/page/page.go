// Package page provides the value types that feature modules use to
// describe themselves: page metadata, module descriptors and routing rules.
// Everything in this package is immutable after discovery and safe to share
// across concurrent requests.
package page

import (
	"sort"
	"strings"
)

// PageInfo describes a single page: its display name, a short description,
// the canonical URL path (empty for pages without a direct route) and the
// keywords it can be found by.
type PageInfo struct {
	Name        string
	Description string
	Path        string
	Keywords    []string

	// Hidden pages are served normally but left out of page listings.
	Hidden bool
}

// Info is the descriptor a module exposes. It extends PageInfo with the
// routing rules the module contributes, metadata for its sub pages and
// alternate path prefixes that redirect to Path.
type Info struct {
	PageInfo

	Handlers []Rule
	SubPages []PageInfo
	Aliases  []string
}

// InfoFunc is the entry point every module registers with the loader.
// It must return a non-nil descriptor.
type InfoFunc func() *Info

// PageAt returns the page info for the given path. Sub pages are searched
// first by exact path; the module itself is the fallback.
func (m *Info) PageAt(path string) PageInfo {
	if m.Path == path {
		return m.PageInfo
	}
	for _, sub := range m.SubPages {
		if sub.Path == path {
			return sub
		}
	}
	return m.PageInfo
}

// KeywordsFor returns the keywords for the given path as a comma separated
// string. For a sub page the module's own keywords come first.
func (m *Info) KeywordsFor(path string) string {
	info := m.PageAt(path)
	if info.Path != m.Path {
		return strings.Join(append(append([]string{}, m.Keywords...), info.Keywords...), ", ")
	}
	return strings.Join(m.Keywords, ", ")
}

// Less orders descriptors by (name, description).
func (m *Info) Less(other *Info) bool {
	if m.Name != other.Name {
		return m.Name < other.Name
	}
	return m.Description < other.Description
}

// SortInfos sorts descriptors by (name, description) and then moves the
// home page (path "/") to the front, preserving the relative order of the
// rest. Only the first descriptor claiming "/" is moved.
func SortInfos(infos []*Info) {
	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].Less(infos[j])
	})

	for i, info := range infos {
		if info.Path == "/" {
			home := infos[i]
			copy(infos[1:i+1], infos[:i])
			infos[0] = home
			break
		}
	}
}

// VisibleInfos returns the descriptors that should appear in page listings.
func VisibleInfos(infos []*Info) []*Info {
	visible := make([]*Info, 0, len(infos))
	for _, info := range infos {
		if !info.Hidden {
			visible = append(visible, info)
		}
	}
	return visible
}
