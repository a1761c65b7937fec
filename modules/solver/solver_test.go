package solver

import (
	"slices"
	"testing"
)

func TestSolveMatchesPattern(t *testing.T) {
	res := Solve("_aus", "", false, 20)

	for _, want := range []string{"maus", "laus", "haus"} {
		if !slices.Contains(res.Words, want) {
			t.Errorf("missing %q in %v", want, res.Words)
		}
	}
	if slices.Contains(res.Words, "baum") {
		t.Error("baum does not match _aus")
	}
}

func TestSolveExcludesInvalidLetters(t *testing.T) {
	res := Solve("_aus", "m, l", false, 20)

	if slices.Contains(res.Words, "maus") || slices.Contains(res.Words, "laus") {
		t.Errorf("excluded letters matched: %v", res.Words)
	}
	if !slices.Contains(res.Words, "haus") {
		t.Errorf("haus should still match: %v", res.Words)
	}
}

func TestSolveExcludesRevealedLetters(t *testing.T) {
	// outside crossword mode an already revealed letter cannot fill a blank
	res := Solve("r_st", "", false, 20)
	if slices.Contains(res.Words, "rost") == false {
		t.Errorf("rost should match: %v", res.Words)
	}

	res = Solve("_est", "", false, 20)
	for _, word := range res.Words {
		if word == "test" {
			t.Error("test repeats a revealed letter outside crossword mode")
		}
	}

	// crossword mode allows repeats
	res = Solve("_est", "", true, 20)
	if !slices.Contains(res.Words, "test") {
		t.Errorf("crossword mode should allow test: %v", res.Words)
	}
}

func TestSolveMaxWords(t *testing.T) {
	res := Solve("____", "", false, 2)
	if len(res.Words) > 2 {
		t.Errorf("words = %d, want at most 2", len(res.Words))
	}
	if res.MatchCount < len(res.Words) {
		t.Errorf("match count %d below returned words %d", res.MatchCount, len(res.Words))
	}
}

func TestSolveLetterRanking(t *testing.T) {
	res := Solve("_aus", "", false, 20)
	if len(res.Letters) == 0 {
		t.Fatal("no letter suggestions")
	}
	for i := 1; i < len(res.Letters); i++ {
		if res.Letters[i].Count > res.Letters[i-1].Count {
			t.Fatalf("letters not sorted by count: %v", res.Letters)
		}
	}
	// revealed letters are never suggested
	for _, lc := range res.Letters {
		if lc.Letter == "a" || lc.Letter == "u" || lc.Letter == "s" {
			t.Errorf("revealed letter suggested: %v", lc)
		}
	}
}

func TestSolveNoMatches(t *testing.T) {
	res := Solve("zzzzzzzzzz", "", false, 20)
	if res.MatchCount != 0 || len(res.Words) != 0 {
		t.Errorf("unexpected matches: %+v", res)
	}
}
