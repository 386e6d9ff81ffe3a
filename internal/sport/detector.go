// Package sport classifies a card into a sport from its title and extracted
// player name. Resolution is two-source: a curated keyword table first, then
// an external player-search API with a 24-hour result cache. Both sources
// missing is not an error; the card simply stays "Unknown".
package sport

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/guarzo/cardgap/internal/cache"
	"github.com/guarzo/cardgap/internal/model"
)

// CacheTTL is how long API results, including explicit not-founds, are
// remembered per lowercased player name.
const CacheTTL = 24 * time.Hour

// Detector resolves sports. Safe for concurrent use; concurrent lookups of
// the same uncached name may both hit the API, which is acceptable — the
// cache itself stays consistent.
type Detector struct {
	client SearchClient
	cache  *cache.Cache
	ttl    time.Duration
}

// NewDetector builds a detector. A nil client disables the API source and
// leaves keyword lookup only.
func NewDetector(client SearchClient, c *cache.Cache) *Detector {
	return &Detector{client: client, cache: c, ttl: CacheTTL}
}

// Detect resolves a sport for a card title and its extracted player name.
// It always returns a usable classification: a real sport or the "Unknown"
// sentinel, never an empty string and never an error. External API failures
// degrade to "Unknown" so a bulk run is never aborted by one lookup.
func (d *Detector) Detect(ctx context.Context, title, playerName string) string {
	if s := FromKeywords(title); s != "" {
		return s
	}
	if playerName != "" {
		if s := FromKeywords(playerName); s != "" {
			return s
		}
		if s := d.fromAPI(ctx, playerName); s != "" {
			return s
		}
	}
	return model.SportUnknown
}

func (d *Detector) fromAPI(ctx context.Context, playerName string) string {
	if d.client == nil {
		return ""
	}

	key := "sport|" + strings.ToLower(strings.TrimSpace(playerName))
	if d.cache != nil {
		var cached string
		if hit, err := d.cache.Get(key, &cached); err == nil && hit {
			return cached // may be "", a remembered not-found
		}
	}

	candidates, err := d.client.SearchPlayer(ctx, playerName)
	if err != nil {
		// Transient failures are a miss, not a cached result.
		log.Printf("sport: player search %q failed: %v", playerName, err)
		return ""
	}

	result := resolve(playerName, candidates)
	if d.cache != nil {
		if err := d.cache.Put(key, result, d.ttl); err != nil {
			log.Printf("sport: cache write for %q failed: %v", playerName, err)
		}
	}
	return result
}

// resolve picks the first exact case-insensitive name match, else the first
// candidate, and maps it to a sport.
func resolve(playerName string, candidates []Candidate) string {
	if len(candidates) == 0 {
		return ""
	}
	chosen := candidates[0]
	for _, c := range candidates {
		if strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(playerName)) {
			chosen = c
			break
		}
	}
	if s := normalizeSport(chosen.Sport); s != "" {
		return s
	}
	return SportForLeague(chosen.League)
}

func normalizeSport(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "baseball":
		return Baseball
	case "basketball":
		return Basketball
	case "american football":
		return Football
	case "ice hockey":
		return Hockey
	case "soccer", "football":
		return Soccer
	}
	return ""
}
