package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/guarzo/cardgap/internal/terms"
)

// PlayerResult is an extracted player name plus a low-confidence marker.
// NeedsReview is set when the winning candidate shares a word with the term
// dictionaries, the shape this pipeline is known to misfire on (brand words
// that happen to look name-shaped).
type PlayerResult struct {
	Name        string
	NeedsReview bool
}

// Name-shape patterns, most specific first. The first pattern that yields a
// candidate not present in the dictionaries wins.
var nameShapes = []*regexp.Regexp{
	// Initials: "J.J. McCarthy", "C.J. Stroud"
	regexp.MustCompile(`\b([A-Z]\.\s?[A-Z]\.?\s+[A-Z][A-Za-z'\-]{2,})`),
	// Hyphenated compound surname: "Shai Gilgeous-Alexander"
	regexp.MustCompile(`\b([A-Z][a-zA-Z']+\s+[A-Z][a-zA-Z']+\-[A-Z][a-zA-Z']+)\b`),
	// Apostrophe'd given name: "De'Aaron Fox", "Ja'Marr Chase"
	regexp.MustCompile(`\b([A-Z][a-zA-Z]*'[A-Za-z][a-zA-Z]+\s+[A-Z][a-zA-Z]+)\b`),
	// Plain "First Last"
	regexp.MustCompile(`\b([A-Z][a-zA-Z]+\s+[A-Z][a-zA-Z]+)\b`),
}

// An all-caps run at the very start of the title, directly followed by the
// year, is taken as the player name before any stripping happens. Sellers
// lead with the name in that layout ("LEO DE VRIES 2024 Bowman's Best ...")
// and the residual-text shapes would otherwise collide with capitalized
// product tokens.
var leadingCapsRE = regexp.MustCompile(`^([A-Z][A-Z'.\-]*(?:\s+[A-Z][A-Z'.\-]*){1,2})\s+(?:19|20)\d{2}\b`)

// Player recovers the most plausible player name from a title. It prefers
// returning nothing over returning a wrong guess: candidates that are
// dictionary terms or implausibly short are rejected.
func Player(title string, d *terms.Dictionaries) (PlayerResult, bool) {
	return extractPlayer(title, d, claimedTexts(title, d))
}

// claimedTexts gathers the text already claimed by the other extractors so
// the player pass can strip it.
func claimedTexts(title string, d *terms.Dictionaries) []string {
	var out []string
	var claimed []span
	if y, s := yearSpan(title); y != "" {
		out = append(out, y)
		claimed = append(claimed, s)
	}
	if p, s := printRunSpan(title); p != "" {
		out = append(out, p)
		claimed = append(claimed, s)
	}
	if n, s := cardNumberSpan(title, claimed); n != "" {
		out = append(out, title[s.start:s.end])
		claimed = append(claimed, s)
	}
	_, typeMatches := cardTypeMatches(title, d, claimed)
	for _, m := range typeMatches {
		out = append(out, m.Text)
	}
	if m, ok := d.MatchSet(title); ok {
		out = append(out, m.Text, m.Name)
	}
	return out
}

func extractPlayer(title string, d *terms.Dictionaries, removals []string) (PlayerResult, bool) {
	if name, ok := leadingCapsName(title, d); ok {
		return finish(name, d)
	}

	residual := stripAll(title, d, removals)

	for _, shape := range nameShapes {
		for _, m := range shape.FindAllStringSubmatch(residual, -1) {
			candidate := strings.TrimSpace(m[1])
			if len(candidate) <= 3 || d.IsTerm(candidate) {
				continue
			}
			return finish(candidate, d)
		}
	}
	return PlayerResult{}, false
}

func leadingCapsName(title string, d *terms.Dictionaries) (string, bool) {
	m := leadingCapsRE.FindStringSubmatch(title)
	if m == nil {
		return "", false
	}
	candidate := m[1]
	if len(candidate) <= 3 || d.IsTerm(candidate) {
		return "", false
	}
	for _, w := range strings.Fields(candidate) {
		if d.IsTerm(w) {
			return "", false
		}
	}
	return candidate, true
}

// stripAll removes every removal-list entry from the title, longest entries
// first so multi-word set names go before their component words. The sort is
// explicit; nothing here depends on map iteration order.
func stripAll(title string, d *terms.Dictionaries, extra []string) string {
	removals := append([]string(nil), extra...)
	removals = append(removals, d.NoiseNames()...)

	sort.Slice(removals, func(i, j int) bool {
		if len(removals[i]) != len(removals[j]) {
			return len(removals[i]) > len(removals[j])
		}
		return removals[i] < removals[j]
	})

	out := title
	for _, term := range removals {
		out = stripTerm(out, term)
	}
	return collapseSpaces(out)
}

func stripTerm(s, term string) string {
	term = strings.TrimSpace(term)
	if term == "" {
		return s
	}
	var re *regexp.Regexp
	if isWordBounded(term) {
		re = terms.Phrase(term)
	} else {
		// Tokens like "#BCP-61" or "/150" have no word boundary to anchor
		// on, so they are removed as case-insensitive literals.
		re = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
	}
	return re.ReplaceAllString(s, " ")
}

func isWordBounded(term string) bool {
	first, last := term[0], term[len(term)-1]
	return isAlnum(first) && isAlnum(last)
}

func isAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// finish post-processes a winning candidate: manual override, team trim,
// punctuation cleanup, token cap and capitalization.
func finish(candidate string, d *terms.Dictionaries) (PlayerResult, bool) {
	if fixed, ok := d.Override(candidate); ok {
		return PlayerResult{Name: fixed}, fixed != ""
	}

	needsReview := d.SharesTerm(candidate)

	name := d.TrimTeams(candidate)
	name = strings.Trim(name, ` ,.-'"()[]*`)
	name = collapseSpaces(name)
	if len(name) <= 3 {
		return PlayerResult{}, false
	}

	tokens := strings.Fields(name)
	if len(tokens) > 3 {
		tokens = tokens[:3]
	}
	name = normalizeCase(tokens)

	if fixed, ok := d.Override(name); ok {
		return PlayerResult{Name: fixed}, fixed != ""
	}
	return PlayerResult{Name: name, NeedsReview: needsReview}, true
}

var nameSuffixes = map[string]string{
	"jr": "Jr", "sr": "Sr", "ii": "II", "iii": "III", "iv": "IV",
}

var nameParticles = map[string]struct{}{
	"de": {}, "la": {}, "le": {}, "van": {}, "von": {}, "der": {},
	"den": {}, "di": {}, "da": {}, "del": {}, "dos": {}, "st": {},
	"ter": {},
}

// normalizeCase title-cases name tokens with the hobby's usual exceptions:
// suffixes keep their fixed form, particles stay lowercase unless they lead,
// Mc/O'/hyphen compounds capitalize each part, initials stay uppercase.
func normalizeCase(tokens []string) string {
	out := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		lower := strings.ToLower(strings.TrimRight(tok, "."))
		if fixed, ok := nameSuffixes[lower]; ok && i > 0 {
			out = append(out, fixed)
			continue
		}
		if _, ok := nameParticles[lower]; ok && i > 0 {
			out = append(out, lower)
			continue
		}
		out = append(out, capToken(tok))
	}
	return strings.Join(out, " ")
}

func capToken(tok string) string {
	if strings.Contains(tok, ".") {
		// Initials: "j.j." -> "J.J."
		return strings.ToUpper(tok)
	}
	parts := strings.Split(tok, "-")
	for i, part := range parts {
		subs := strings.Split(part, "'")
		for j, sub := range subs {
			subs[j] = capWord(sub)
		}
		parts[i] = strings.Join(subs, "'")
	}
	return strings.Join(parts, "-")
}

func capWord(w string) string {
	if w == "" {
		return w
	}
	lower := strings.ToLower(w)
	if strings.HasPrefix(lower, "mc") && len(lower) > 2 {
		return "Mc" + strings.ToUpper(lower[2:3]) + lower[3:]
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}
