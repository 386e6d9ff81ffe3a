package terms

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
)

// maxOverrides bounds the manual correction table. The override list is a
// last-resort layer for names the heuristics systematically botch, not a
// place to accumulate unlimited special cases.
const maxOverrides = 250

// LoadOverrides reads a JSON object mapping a known-bad extracted name to
// its corrected form, e.g. {"Panini Level Devin": "Devin Booker"}. Keys are
// matched case-insensitively. A missing file is not an error.
func LoadOverrides(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read overrides: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}

	out := make(map[string]string, len(raw))
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if len(out) >= maxOverrides {
			log.Printf("overrides: table capped at %d entries, ignoring the rest", maxOverrides)
			break
		}
		out[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(raw[k])
	}
	return out, nil
}

// WithOverrides returns a copy of the dictionaries carrying the given
// correction table.
func (d *Dictionaries) WithOverrides(overrides map[string]string) *Dictionaries {
	copied := *d
	copied.overrides = overrides
	return &copied
}
