// Package extract turns a raw auction title into the structured card fields
// the tracker stores: year, set, parallel, card number, print run, flags and
// player name. Every extractor is a pure function of the title plus the term
// dictionaries; none of them ever error on malformed input, they just return
// nothing.
package extract

import (
	"regexp"
	"strings"

	"github.com/guarzo/cardgap/internal/terms"
)

type span struct{ start, end int }

func (s span) overlaps(other span) bool {
	return s.start < other.end && s.end > other.start
}

func overlapsClaimed(s span, claimed []span) bool {
	for _, c := range claimed {
		if s.overlaps(c) {
			return true
		}
	}
	return false
}

var (
	yearRE     = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	printRunRE = regexp.MustCompile(`(?:^|[^0-9])(/\d+)\b`)
	hashNumRE  = regexp.MustCompile(`#[A-Za-z0-9][A-Za-z0-9\-]*`)
	// Brand-specific bare prefixes seen on Bowman/Topps numbering.
	prefixNumRE = regexp.MustCompile(`(?i)\b(BDC|BDPP|BDP|BCP|CPA|CDA|US|RA)[\- ]?(\d+[A-Za-z]*)\b`)
	bareNumRE   = regexp.MustCompile(`\b\d{1,3}\b`)

	// Words that mean the following number is a grade or population count,
	// never a card number.
	gradeWordRE = regexp.MustCompile(`(?i)\b(psa|bgs|sgc|cgc|csg|hga|beckett|pop|gem|mint|grade|graded)[\s:#\-]*$`)

	autoRE    = regexp.MustCompile(`(?i)\b(auto|autograph|autographed|autographs|signature|signatures)\b`)
	rookieRE  = regexp.MustCompile(`(?i)\b(rookie|rc|1st|debut)\b`)
	youngGuns = regexp.MustCompile(`(?i)\byoung[\s\-]+guns\b`)
)

// Year returns the first 19xx/20xx token in the title. A title carrying two
// plausible years (a vintage year plus, say, a serial fragment) resolves to
// whichever comes first; no disambiguation is attempted.
func Year(title string) (string, bool) {
	y, _ := yearSpan(title)
	return y, y != ""
}

func yearSpan(title string) (string, span) {
	loc := yearRE.FindStringIndex(title)
	if loc == nil {
		return "", span{}
	}
	return title[loc[0]:loc[1]], span{loc[0], loc[1]}
}

// PrintRun returns the /N limited-edition token, e.g. "/150". A fraction
// like "23/150" is card numbering, not a print run, and is not matched.
func PrintRun(title string) (string, bool) {
	p, _ := printRunSpan(title)
	return p, p != ""
}

func printRunSpan(title string) (string, span) {
	m := printRunRE.FindStringSubmatchIndex(title)
	if m == nil {
		return "", span{}
	}
	return title[m[2]:m[3]], span{m[2], m[3]}
}

// CardNumber extracts the card's numbering token. Explicit #-prefixed tokens
// win; bare brand-prefixed tokens like BDP26 are a fallback; a lone small
// number is the last resort. Grading and population counts are never taken.
// The returned value is normalized with a leading '#'.
func CardNumber(title string) (string, bool) {
	var claimed []span
	if _, s := printRunSpan(title); s.end > 0 {
		claimed = append(claimed, s)
	}
	if _, s := yearSpan(title); s.end > 0 {
		claimed = append(claimed, s)
	}
	n, _ := cardNumberSpan(title, claimed)
	return n, n != ""
}

func cardNumberSpan(title string, claimed []span) (string, span) {
	for _, loc := range hashNumRE.FindAllStringIndex(title, -1) {
		s := span{loc[0], loc[1]}
		if overlapsClaimed(s, claimed) {
			continue
		}
		return title[loc[0]:loc[1]], s
	}

	if m := prefixNumRE.FindStringSubmatchIndex(title); m != nil {
		s := span{m[0], m[1]}
		if !overlapsClaimed(s, claimed) {
			prefix := strings.ToUpper(title[m[2]:m[3]])
			rest := strings.ToUpper(title[m[4]:m[5]])
			return "#" + prefix + rest, s
		}
	}

	for _, loc := range bareNumRE.FindAllStringIndex(title, -1) {
		s := span{loc[0], loc[1]}
		if overlapsClaimed(s, claimed) {
			continue
		}
		if gradeWordRE.MatchString(title[:loc[0]]) {
			continue
		}
		// A number preceded by '/' or '#' belongs to another token.
		if loc[0] > 0 && (title[loc[0]-1] == '/' || title[loc[0]-1] == '#') {
			continue
		}
		return "#" + title[loc[0]:loc[1]], s
	}

	return "", span{}
}

// CardTypes returns the parallel/color names found in the title, in order of
// appearance, e.g. "Silver Wave Prizm" or "Red". Tokens claimed by the card
// number or print run are excluded, as are bare numerics.
func CardTypes(title string, d *terms.Dictionaries) (string, bool) {
	var claimed []span
	if _, s := printRunSpan(title); s.end > 0 {
		claimed = append(claimed, s)
	}
	if _, s := yearSpan(title); s.end > 0 {
		claimed = append(claimed, s)
	}
	if _, s := cardNumberSpan(title, claimed); s.end > 0 {
		claimed = append(claimed, s)
	}
	ct, _ := cardTypeMatches(title, d, claimed)
	return ct, ct != ""
}

func cardTypeMatches(title string, d *terms.Dictionaries, claimed []span) (string, []terms.Match) {
	var kept []terms.Match
	seen := make(map[string]struct{})
	for _, m := range d.MatchCardTypes(title) {
		if overlapsClaimed(span{m.Start, m.End}, claimed) {
			continue
		}
		if isNumeric(m.Name) || strings.EqualFold(m.Name, "Base") {
			continue
		}
		if _, dup := seen[strings.ToLower(m.Name)]; dup {
			continue
		}
		seen[strings.ToLower(m.Name)] = struct{}{}
		kept = append(kept, m)
	}
	names := make([]string, len(kept))
	for i, m := range kept {
		names[i] = m.Name
	}
	return strings.Join(names, " "), kept
}

func isNumeric(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsAutograph reports whether the title carries an autograph keyword.
func IsAutograph(title string) bool {
	return autoRE.MatchString(title)
}

// IsRookie reports whether the title carries a rookie keyword.
func IsRookie(title string) bool {
	return rookieRE.MatchString(title) || youngGuns.MatchString(title)
}
