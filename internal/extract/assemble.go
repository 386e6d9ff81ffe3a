package extract

import (
	"strings"

	"github.com/guarzo/cardgap/internal/terms"
)

// Fields is the tuple the summary title is assembled from.
type Fields struct {
	Year        string
	CardSet     string
	PlayerName  string
	CardType    string
	IsAutograph bool
	CardNumber  string
	PrintRun    string
}

// Summary builds the normalized display/search title from extracted fields.
// Field order is fixed: year, set, player, card type, "auto", number, print
// run. Empty fields are omitted without leaving separators behind. When
// fewer than two fields are present the extraction produced nothing worth
// displaying, so a cleaned copy of the raw title is returned instead.
func Summary(rawTitle string, f Fields, d *terms.Dictionaries) string {
	var parts []string
	populated := 0

	add := func(s string) {
		parts = append(parts, s)
		populated++
	}

	if f.Year != "" {
		add(f.Year)
	}
	if f.CardSet != "" {
		add(f.CardSet)
	}
	if f.PlayerName != "" {
		// A "player" that is embedded in the set name is a product line
		// word that leaked through, not a person.
		if f.CardSet == "" || !strings.Contains(strings.ToLower(f.CardSet), strings.ToLower(f.PlayerName)) {
			add(f.PlayerName)
		} else {
			populated++
		}
	}
	if f.CardType != "" && !strings.EqualFold(f.CardType, "Base") {
		add(f.CardType)
	}
	if f.IsAutograph {
		add("auto")
	}
	if f.CardNumber != "" {
		add(f.CardNumber)
	}
	if f.PrintRun != "" {
		add(f.PrintRun)
	}

	if populated < 2 {
		return CleanTitle(rawTitle, d)
	}
	return tidy(strings.Join(parts, " "))
}

// CleanTitle strips grading vocabulary out of a raw title, the fallback when
// extraction could not recover enough structure. Only grading terms go;
// stripping marketing words too can hollow out titles that were nothing but
// marketing copy. If nothing survives, the tidied raw title is returned.
func CleanTitle(rawTitle string, d *terms.Dictionaries) string {
	out := rawTitle
	for _, m := range d.MatchGrading(rawTitle) {
		out = stripTerm(out, m.Text)
	}
	if cleaned := tidy(out); cleaned != "" {
		return cleaned
	}
	return tidy(rawTitle)
}

func tidy(s string) string {
	s = collapseSpaces(s)
	s = strings.Trim(s, " ,.;:-")
	return s
}
