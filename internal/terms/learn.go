package terms

import (
	"sort"
	"strings"
)

// Learn scans a corpus of stored titles for vocabulary the seed tables miss
// and returns an augmented copy of the dictionaries. Two things are learned:
//
//   - card-type compounds: adjacent known parallel words merge into one
//     entry, so "Gold" next to "Wave" teaches "Gold Wave", and "Gold Wave"
//     next to "Refractor" then claims "Gold Wave Refractor" as a single
//     parallel on the next matching title.
//   - set surfaces: the literal text a set matched under (hyphenated or
//     otherwise reformatted) is recorded as a surface form of that entry.
//
// The receiver is not mutated and no stored record is touched. Learning is
// idempotent: the same corpus always yields the same dictionary contents,
// and an empty corpus returns the seeds unchanged.
func (d *Dictionaries) Learn(titles []string) *Dictionaries {
	learnedTypes := make(map[string]struct{})
	learnedSurfaces := make(map[string]map[string]struct{}) // canonical -> surfaces

	for _, title := range titles {
		for _, compound := range d.adjacentCardTypeRuns(title) {
			if !d.IsTerm(compound) {
				learnedTypes[compound] = struct{}{}
			}
		}
		if m, ok := d.MatchSet(title); ok {
			surface := strings.ToLower(strings.Join(strings.Fields(m.Text), " "))
			if !d.IsTerm(surface) {
				if learnedSurfaces[m.Name] == nil {
					learnedSurfaces[m.Name] = make(map[string]struct{})
				}
				learnedSurfaces[m.Name][surface] = struct{}{}
			}
		}
	}

	if len(learnedTypes) == 0 && len(learnedSurfaces) == 0 {
		return d
	}

	sets := make([]SetEntry, len(d.rawSets))
	copy(sets, d.rawSets)
	for i := range sets {
		if extra, ok := learnedSurfaces[sets[i].Canonical]; ok {
			surfaces := append([]string(nil), sets[i].Surfaces...)
			surfaces = append(surfaces, sortedKeys(extra)...)
			sets[i].Surfaces = surfaces
		}
	}

	cardTypes := append([]string(nil), d.rawCardTypes...)
	cardTypes = append(cardTypes, sortedKeys(learnedTypes)...)

	return build(sets, cardTypes, d.rawTeams, d.rawGrading, d.rawMarketing, d.overrides)
}

// adjacentCardTypeRuns finds maximal runs of card-type matches separated
// only by whitespace and returns each run of two or more as a compound name.
func (d *Dictionaries) adjacentCardTypeRuns(title string) []string {
	matches := d.MatchCardTypes(title)
	if len(matches) < 2 {
		return nil
	}

	var runs []string
	start := 0
	for i := 1; i <= len(matches); i++ {
		joined := i < len(matches) &&
			strings.TrimSpace(title[matches[i-1].End:matches[i].Start]) == ""
		if joined {
			continue
		}
		if i-start >= 2 {
			words := make([]string, 0, i-start)
			for _, m := range matches[start:i] {
				words = append(words, strings.Fields(m.Text)...)
			}
			runs = append(runs, titleCaseWords(words))
		}
		start = i
	}
	return runs
}

func titleCaseWords(words []string) string {
	out := make([]string, len(words))
	for i, w := range words {
		lower := strings.ToLower(w)
		out[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(out, " ")
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
