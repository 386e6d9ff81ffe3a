// Package terms holds the shared vocabulary every extractor matches against:
// known brand/set names, parallel names, team names and grading noise.
// A Dictionaries value is immutable once built; the learning step returns a
// new value rather than mutating in place, so extractors stay pure.
package terms

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// SetEntry maps a canonical set name to the surface forms that identify it
// in a listing title.
type SetEntry struct {
	Canonical string
	Brand     string
	Surfaces  []string
}

// Match is one dictionary hit inside a title.
type Match struct {
	Name  string // canonical dictionary entry
	Text  string // exact text matched in the title
	Start int
	End   int
}

type phraseEntry struct {
	name string
	re   *regexp.Regexp
}

// Dictionaries bundles the four term tables. Build with New or Learn; all
// lookups are case-insensitive and match on whole-word boundaries only.
type Dictionaries struct {
	sets      []setEntry
	cardTypes []phraseEntry
	teams     []phraseEntry
	grading   []phraseEntry
	noise     []phraseEntry       // grading plus marketing, for removal lists
	known     map[string]struct{} // every phrase, lowercased, for candidate rejection
	overrides map[string]string

	// raw inputs, kept so Learn can rebuild an augmented copy
	rawSets      []SetEntry
	rawCardTypes []string
	rawTeams     []string
	rawGrading   []string
	rawMarketing []string
}

type setEntry struct {
	canonical string
	brand     string
	patterns  []*regexp.Regexp
}

var (
	phraseCacheMu sync.Mutex
	phraseCache   = map[string]*regexp.Regexp{}
)

// Phrase compiles a case-insensitive whole-phrase pattern. Interior spaces
// match any run of whitespace or hyphens, so "Bowman Chrome Draft" also hits
// "Bowman - Chrome Draft". Compiled patterns are cached.
func Phrase(phrase string) *regexp.Regexp {
	phraseCacheMu.Lock()
	defer phraseCacheMu.Unlock()
	if re, ok := phraseCache[phrase]; ok {
		return re
	}
	words := strings.Fields(phrase)
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	re := regexp.MustCompile(`(?i)\b` + strings.Join(quoted, `[\s\-]+`) + `\b`)
	phraseCache[phrase] = re
	return re
}

// New builds dictionaries from the static seed tables.
func New() *Dictionaries {
	return build(seedSets(), seedCardTypes(), seedTeams(), seedGrading(), seedMarketing(), nil)
}

func build(sets []SetEntry, cardTypes, teams, grading, marketing []string, overrides map[string]string) *Dictionaries {
	d := &Dictionaries{
		known:        make(map[string]struct{}),
		overrides:    overrides,
		rawSets:      sets,
		rawCardTypes: cardTypes,
		rawTeams:     teams,
		rawGrading:   grading,
		rawMarketing: marketing,
	}

	// Longest canonical first so "Bowman Chrome Draft" beats "Bowman".
	sorted := make([]SetEntry, len(sets))
	copy(sorted, sets)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i].Canonical) != len(sorted[j].Canonical) {
			return len(sorted[i].Canonical) > len(sorted[j].Canonical)
		}
		return sorted[i].Canonical < sorted[j].Canonical
	})
	for _, s := range sorted {
		e := setEntry{canonical: s.Canonical, brand: s.Brand}
		e.patterns = append(e.patterns, Phrase(s.Canonical))
		d.known[strings.ToLower(s.Canonical)] = struct{}{}
		for _, surface := range s.Surfaces {
			e.patterns = append(e.patterns, Phrase(surface))
			d.known[strings.ToLower(surface)] = struct{}{}
		}
		d.sets = append(d.sets, e)
	}

	d.cardTypes = sortedPhrases(cardTypes, d.known)
	d.teams = sortedPhrases(teams, d.known)
	d.grading = sortedPhrases(grading, d.known)
	d.noise = sortedPhrases(append(append([]string(nil), grading...), marketing...), d.known)
	return d
}

func sortedPhrases(phrases []string, known map[string]struct{}) []phraseEntry {
	uniq := make(map[string]struct{}, len(phrases))
	for _, p := range phrases {
		uniq[p] = struct{}{}
	}
	out := make([]phraseEntry, 0, len(uniq))
	for p := range uniq {
		out = append(out, phraseEntry{name: p, re: Phrase(p)})
		known[strings.ToLower(p)] = struct{}{}
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].name) != len(out[j].name) {
			return len(out[i].name) > len(out[j].name)
		}
		return out[i].name < out[j].name
	})
	return out
}

// MatchSet resolves the longest known set whose surface form appears in the
// title. The returned Match carries the canonical name, not the surface text
// that hit.
func (d *Dictionaries) MatchSet(title string) (Match, bool) {
	for _, e := range d.sets {
		for _, re := range e.patterns {
			if loc := re.FindStringIndex(title); loc != nil {
				return Match{
					Name:  e.canonical,
					Text:  title[loc[0]:loc[1]],
					Start: loc[0],
					End:   loc[1],
				}, true
			}
		}
	}
	return Match{}, false
}

// Brand returns the brand recorded for a canonical set name.
func (d *Dictionaries) Brand(canonical string) string {
	for _, e := range d.sets {
		if e.canonical == canonical {
			return e.brand
		}
	}
	return ""
}

// MatchCardTypes returns every parallel/finish hit in the title, longest
// entries claiming their span first, ordered by position of appearance.
func (d *Dictionaries) MatchCardTypes(title string) []Match {
	return matchAll(d.cardTypes, title)
}

// MatchNoise returns every grading/marketing-noise hit in the title.
func (d *Dictionaries) MatchNoise(title string) []Match {
	return matchAll(d.noise, title)
}

// MatchGrading returns only the grading-vocabulary hits in the title.
func (d *Dictionaries) MatchGrading(title string) []Match {
	return matchAll(d.grading, title)
}

func matchAll(entries []phraseEntry, title string) []Match {
	var out []Match
	claimed := make([][2]int, 0, 4)
	for _, e := range entries {
		for _, loc := range e.re.FindAllStringIndex(title, -1) {
			if overlapsAny(loc[0], loc[1], claimed) {
				continue
			}
			claimed = append(claimed, [2]int{loc[0], loc[1]})
			out = append(out, Match{
				Name:  e.name,
				Text:  title[loc[0]:loc[1]],
				Start: loc[0],
				End:   loc[1],
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

func overlapsAny(start, end int, spans [][2]int) bool {
	for _, s := range spans {
		if start < s[1] && end > s[0] {
			return true
		}
	}
	return false
}

// IsTerm reports whether s, as a whole phrase, is a known dictionary entry.
// Used to reject residual product fragments posing as player names.
func (d *Dictionaries) IsTerm(s string) bool {
	_, ok := d.known[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// SharesTerm reports whether any single word of s is a known dictionary
// entry, which marks a low-confidence extraction for review.
func (d *Dictionaries) SharesTerm(s string) bool {
	for _, w := range strings.Fields(s) {
		if d.IsTerm(w) {
			return true
		}
	}
	return false
}

// TrimTeams strips leading and trailing team/city names from a candidate
// player name. Teams are never a positive signal, only noise to remove.
func (d *Dictionaries) TrimTeams(name string) string {
	for {
		trimmed := strings.TrimSpace(name)
		changed := false
		for _, e := range d.teams {
			if loc := e.re.FindStringIndex(trimmed); loc != nil {
				if loc[0] == 0 {
					trimmed = strings.TrimSpace(trimmed[loc[1]:])
					changed = true
					break
				}
				if loc[1] == len(trimmed) {
					trimmed = strings.TrimSpace(trimmed[:loc[0]])
					changed = true
					break
				}
			}
		}
		if !changed {
			return trimmed
		}
		name = trimmed
	}
}

// Override returns the manual correction for a known-bad extracted name,
// if one is loaded.
func (d *Dictionaries) Override(name string) (string, bool) {
	if d.overrides == nil {
		return "", false
	}
	fixed, ok := d.overrides[strings.ToLower(strings.TrimSpace(name))]
	return fixed, ok
}

// NoiseNames returns the grading/noise vocabulary, longest first.
func (d *Dictionaries) NoiseNames() []string {
	out := make([]string, len(d.noise))
	for i, e := range d.noise {
		out[i] = e.name
	}
	return out
}
