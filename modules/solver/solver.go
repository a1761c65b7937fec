// Package solver serves the hangman solver: given a partially revealed
// word and the letters already guessed wrong, it lists the German words
// that still fit and the most promising next letters.
package solver

import (
	"bufio"
	"bytes"
	_ "embed"
	"net/http"
	"sort"
	"strings"

	"github.com/omniweb-dev/omniweb/domain/page"
	"github.com/omniweb-dev/omniweb/parse"
	"github.com/omniweb-dev/omniweb/web"
)

//go:embed words/de.txt
var wordFile []byte

var words = loadWords()

func loadWords() []string {
	var list []string
	scanner := bufio.NewScanner(bytes.NewReader(wordFile))
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			list = append(list, strings.ToLower(word))
		}
	}
	return list
}

// LetterCount pairs a candidate letter with how many matching words use it.
type LetterCount struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

// Result is one solver run.
type Result struct {
	Words      []string      `json:"words"`
	MatchCount int           `json:"match_count"`
	Letters    []LetterCount `json:"letters"`
}

// Solve finds the words matching the pattern. Underscores in input mark
// unrevealed positions. Letters listed in invalid, and in crossword mode
// also the already revealed letters, are excluded from blank positions.
func Solve(input, invalid string, crosswordMode bool, maxWords int) Result {
	input = strings.ToLower(strings.TrimSpace(input))
	pattern := []rune(input)

	excluded := map[rune]bool{}
	for _, r := range strings.ToLower(invalid) {
		if r != ' ' && r != ',' {
			excluded[r] = true
		}
	}
	if !crosswordMode {
		for _, r := range pattern {
			if r != '_' {
				excluded[r] = true
			}
		}
	}

	known := map[rune]bool{}
	for _, r := range pattern {
		if r != '_' {
			known[r] = true
		}
	}

	var matched []string
	letterCounts := map[rune]int{}
	for _, word := range words {
		if matches(word, pattern, excluded) {
			matched = append(matched, word)
			for _, r := range word {
				if !known[r] {
					letterCounts[r]++
				}
			}
		}
	}

	result := Result{MatchCount: len(matched)}
	if len(matched) > maxWords {
		result.Words = matched[:maxWords]
	} else {
		result.Words = matched
	}

	for letter, count := range letterCounts {
		result.Letters = append(result.Letters, LetterCount{Letter: string(letter), Count: count})
	}
	sort.Slice(result.Letters, func(i, j int) bool {
		if result.Letters[i].Count != result.Letters[j].Count {
			return result.Letters[i].Count > result.Letters[j].Count
		}
		return result.Letters[i].Letter < result.Letters[j].Letter
	})

	return result
}

func matches(word string, pattern []rune, excluded map[rune]bool) bool {
	runes := []rune(word)
	if len(runes) != len(pattern) {
		return false
	}
	for i, want := range pattern {
		if want == '_' {
			if excluded[runes[i]] {
				return false
			}
			continue
		}
		if runes[i] != want {
			return false
		}
	}
	return true
}

var argsShape = parse.Object("solver", nil,
	parse.Opt("input", parse.String(), ""),
	parse.Opt("invalid", parse.String(), ""),
	parse.Opt("crossword_mode", parse.Bool(), false),
	parse.Opt("max_words", parse.Int(), 20),
)

// Info is the module entry point.
func Info() *page.Info {
	return &page.Info{
		PageInfo: page.PageInfo{
			Name:        "Hangman-Löser",
			Description: "Ein Helfer zum Lösen von Galgenmännchen-Rätseln",
			Path:        "/hangman-loeser",
			Keywords:    []string{"Hangman", "Galgenmännchen", "Wörter", "Rätsel"},
		},
		SubPages: []page.PageInfo{
			{
				Name:        "Hangman-Löser-API",
				Description: "Passende Wörter als JSON",
				Path:        "/api/hangman-loeser",
			},
		},
		Aliases: []string{"/hangman-löser", "/hangman-solver"},
		Handlers: []page.Rule{
			{Pattern: "/hangman-loeser", Handler: &htmlHandler{}, Name: "solver"},
			{Pattern: "/api/hangman-loeser", Handler: &apiHandler{}, Name: "solver-api"},
		},
	}
}

type solverPage struct {
	Input   string
	Invalid string
	Result
}

type htmlHandler struct {
	page.ModulePage
}

func (h *htmlHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	args, ok := web.Args(w, r, argsShape)
	if !ok {
		return
	}
	web.Render(w, r, "hangman-loeser", solverPage{
		Input:   args.Str("input"),
		Invalid: args.Str("invalid"),
		Result:  Solve(args.Str("input"), args.Str("invalid"), args.Bool("crossword_mode"), args.Int("max_words")),
	})
}

type apiHandler struct {
	page.ModulePage
}

func (h *apiHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	args, ok := web.Args(w, r, argsShape)
	if !ok {
		return
	}
	web.RespondJSON(w, http.StatusOK,
		Solve(args.Str("input"), args.Str("invalid"), args.Bool("crossword_mode"), args.Int("max_words")))
}
