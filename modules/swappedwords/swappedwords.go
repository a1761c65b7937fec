// Package swappedwords serves the word swapper: configured word pairs in a
// text are exchanged for each other, keeping the capitalization of the
// original word.
package swappedwords

import (
	"net/http"
	"regexp"
	"strings"
	"unicode"

	"github.com/omniweb-dev/omniweb/domain/page"
	"github.com/omniweb-dev/omniweb/parse"
	"github.com/omniweb-dev/omniweb/web"
)

// maxTextLength bounds the input so a single request cannot hog the server.
const maxTextLength = 10_000

// DefaultConfig is the built-in pair list. It is also registered under its
// own qualified name for the config editor tooling but is not a module, so
// discovery must skip it via the ignore list.
var DefaultConfig = Config{
	Pairs: [][2]string{
		{"amtlich", "dämlich"},
		{"arm", "reich"},
		{"alt", "neu"},
		{"gut", "schlecht"},
		{"kommunismus", "kapitalismus"},
		{"links", "rechts"},
	},
}

// Config holds the word pairs to swap.
type Config struct {
	Pairs [][2]string
}

// Swap exchanges every configured word pair in the text. Matching is case
// insensitive on word boundaries; the replacement copies the first letter's
// case from the matched word. Pair words must begin and end with ASCII
// letters because \b in Go regexps is ASCII only.
func (c Config) Swap(text string) string {
	replacements := make(map[string]string, len(c.Pairs)*2)
	var alternatives []string
	for _, pair := range c.Pairs {
		first, second := strings.ToLower(pair[0]), strings.ToLower(pair[1])
		replacements[first] = second
		replacements[second] = first
		alternatives = append(alternatives, regexp.QuoteMeta(first), regexp.QuoteMeta(second))
	}

	re := regexp.MustCompile(`(?i)\b(` + strings.Join(alternatives, "|") + `)\b`)
	return re.ReplaceAllStringFunc(text, func(word string) string {
		replacement := replacements[strings.ToLower(word)]
		return matchCase(word, replacement)
	})
}

// matchCase copies the capitalization of the first rune of src onto dst.
func matchCase(src, dst string) string {
	if src == "" || dst == "" {
		return dst
	}
	srcRunes, dstRunes := []rune(src), []rune(dst)
	if unicode.IsUpper(srcRunes[0]) {
		dstRunes[0] = unicode.ToUpper(dstRunes[0])
	} else {
		dstRunes[0] = unicode.ToLower(dstRunes[0])
	}
	return string(dstRunes)
}

var argsShape = parse.Object("swappedwords", nil,
	parse.Opt("text", parse.String(), ""),
)

// Info is the module entry point.
func Info() *page.Info {
	return &page.Info{
		PageInfo: page.PageInfo{
			Name:        "Vertauschte Wörter",
			Description: "Ein Text-Umwandler, der Wortpaare vertauscht",
			Path:        "/vertauschte-woerter",
			Keywords:    []string{"vertauschte", "Wörter", "Text"},
		},
		SubPages: []page.PageInfo{
			{
				Name:        "Vertauschte-Wörter-API",
				Description: "Der umgewandelte Text als JSON",
				Path:        "/api/vertauschte-woerter",
			},
		},
		Aliases: []string{"/vertauschte-wörter", "/swapped-words"},
		Handlers: []page.Rule{
			{Pattern: "/vertauschte-woerter", Handler: &htmlHandler{}, Name: "swappedwords"},
			{Pattern: "/api/vertauschte-woerter", Handler: &apiHandler{}, Name: "swappedwords-api"},
		},
	}
}

// text reads the input from the form body on POST, from the query
// otherwise. A false return means an error response was written.
func text(w http.ResponseWriter, r *http.Request) (string, bool) {
	var input string
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			web.RespondJSONError(w, http.StatusBadRequest, "invalid form data")
			return "", false
		}
		input = r.PostFormValue("text")
	} else {
		args, ok := web.Args(w, r, argsShape)
		if !ok {
			return "", false
		}
		input = args.Str("text")
	}

	if len(input) > maxTextLength {
		web.RespondJSONError(w, http.StatusRequestEntityTooLarge, "text too long")
		return "", false
	}
	return input, true
}

type swappedPage struct {
	Input  string
	Output string
}

type htmlHandler struct {
	page.ModulePage
}

func (h *htmlHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	input, ok := text(w, r)
	if !ok {
		return
	}
	data := swappedPage{Input: input}
	if input != "" {
		data.Output = DefaultConfig.Swap(input)
	}
	web.Render(w, r, "vertauschte-woerter", data)
}

type apiHandler struct {
	page.ModulePage
}

func (h *apiHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	input, ok := text(w, r)
	if !ok {
		return
	}
	web.RespondJSON(w, http.StatusOK, map[string]string{
		"text":       input,
		"vertauscht": DefaultConfig.Swap(input),
	})
}
