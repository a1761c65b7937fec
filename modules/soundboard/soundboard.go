// Package soundboard serves the Känguru soundboard: short audio clips from
// the Känguru-Chroniken, browsable in full or per person. The clip list is
// embedded as a YAML document.
package soundboard

import (
	_ "embed"
	"fmt"
	"net/http"
	"sort"

	"github.com/omniweb-dev/omniweb/domain/page"
	"github.com/omniweb-dev/omniweb/web"
	"gopkg.in/yaml.v3"
)

//go:embed sounds.yaml
var soundFile []byte

// Sound is one clip of the soundboard.
type Sound struct {
	Person string `yaml:"person" json:"person"`
	Text   string `yaml:"text" json:"text"`
	File   string `yaml:"file" json:"file"`
}

var sounds = mustLoadSounds()

func mustLoadSounds() []Sound {
	var list []Sound
	if err := yaml.Unmarshal(soundFile, &list); err != nil {
		panic(fmt.Sprintf("soundboard: parse sounds.yaml: %v", err))
	}
	return list
}

// Persons returns the distinct persons in clip order.
func Persons() []string {
	seen := map[string]bool{}
	var persons []string
	for _, sound := range sounds {
		if !seen[sound.Person] {
			seen[sound.Person] = true
			persons = append(persons, sound.Person)
		}
	}
	sort.Strings(persons)
	return persons
}

// ByPerson returns the clips of one person, or nil for an unknown person.
func ByPerson(person string) []Sound {
	var filtered []Sound
	for _, sound := range sounds {
		if sound.Person == person {
			filtered = append(filtered, sound)
		}
	}
	return filtered
}

// Info is the module entry point.
func Info() *page.Info {
	info := &page.Info{
		PageInfo: page.PageInfo{
			Name:        "Känguru-Soundboard",
			Description: "Sounds aus den Känguru-Chroniken",
			Path:        "/kaenguru-soundboard",
			Keywords:    []string{"Känguru", "Soundboard", "Chroniken", "Sounds"},
		},
		Aliases: []string{"/soundboard", "/känguru-soundboard", "/kangaroo-soundboard"},
		Handlers: []page.Rule{
			{Pattern: "/kaenguru-soundboard", Handler: &htmlHandler{}, Name: "soundboard"},
			{Pattern: "/kaenguru-soundboard/([a-zäöü-]+)", Handler: &personHandler{}, Name: "soundboard-person"},
			{Pattern: "/api/kaenguru-soundboard", Handler: &apiHandler{}, Name: "soundboard-api"},
		},
	}

	info.SubPages = append(info.SubPages, page.PageInfo{
		Name:        "Soundboard-API",
		Description: "Alle Sounds als JSON",
		Path:        "/api/kaenguru-soundboard",
	})
	for _, person := range Persons() {
		info.SubPages = append(info.SubPages, page.PageInfo{
			Name:        "Känguru-Soundboard: " + person,
			Description: "Sounds von " + person,
			Path:        "/kaenguru-soundboard/" + person,
			Keywords:    []string{person},
		})
	}
	return info
}

type soundboardPage struct {
	Sounds  []Sound
	Persons []string
}

type htmlHandler struct {
	page.ModulePage
}

func (h *htmlHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	web.Render(w, r, "soundboard", soundboardPage{Sounds: sounds, Persons: Persons()})
}

type personHandler struct {
	page.ModulePage
}

func (h *personHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	captures := web.Captures(r.Context())
	if len(captures) == 0 {
		web.NotFound(w, r)
		return
	}
	filtered := ByPerson(captures[0])
	if filtered == nil {
		web.RenderError(w, r, http.StatusNotFound, "Diese Person wurde nicht gefunden.")
		return
	}
	web.Render(w, r, "soundboard", soundboardPage{Sounds: filtered})
}

type apiHandler struct {
	page.ModulePage
}

func (h *apiHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	web.RespondJSON(w, http.StatusOK, sounds)
}
