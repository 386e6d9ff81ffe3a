// Package backfill holds the batch drivers that walk stored records through
// the extraction pipeline: initial scan, re-extraction after dictionary
// improvements, sport detection for Unknown rows, and price refresh. Every
// driver isolates per-record failures — one bad record never aborts a run —
// and reports an updated/unchanged/errors tally. Cancellation is
// cooperative: the in-flight record finishes, the next never starts.
package backfill

import (
	"context"
	"fmt"
	"log"

	"github.com/guarzo/cardgap/internal/ebay"
	"github.com/guarzo/cardgap/internal/extract"
	"github.com/guarzo/cardgap/internal/model"
	"github.com/guarzo/cardgap/internal/progress"
	"github.com/guarzo/cardgap/internal/terms"
)

// CardStore is the persistence surface the drivers need.
type CardStore interface {
	All(ctx context.Context) ([]model.Card, error)
	AllTitles(ctx context.Context) ([]string, error)
	NeedingSport(ctx context.Context) ([]model.Card, error)
	HasTitle(ctx context.Context, title string) (bool, error)
	Insert(ctx context.Context, c *model.Card) error
	UpdateFields(ctx context.Context, id int64, p model.Patch) error
	UpdatePrices(ctx context.Context, id int64, psa10, psa9, raw *float64) error
}

// SportDetector resolves a sport for a card; always returns a usable
// classification, never errors.
type SportDetector interface {
	Detect(ctx context.Context, title, playerName string) string
}

// ListingSource supplies sold listings for a search term.
type ListingSource interface {
	Search(ctx context.Context, term string) ([]model.RawListing, error)
}

// Tally is what every driver reports at completion.
type Tally struct {
	Updated   int
	Unchanged int
	Errors    int
}

func (t Tally) String() string {
	return fmt.Sprintf("updated=%d unchanged=%d errors=%d",
		t.Updated, t.Unchanged, t.Errors)
}

// LearnDictionaries runs the learning step over the stored corpus. A corpus
// read failure falls back to the dictionaries as given; it never aborts the
// batch that follows.
func LearnDictionaries(ctx context.Context, s CardStore, d *terms.Dictionaries) *terms.Dictionaries {
	titles, err := s.AllTitles(ctx)
	if err != nil {
		log.Printf("backfill: corpus read failed, using seed dictionaries: %v", err)
		return d
	}
	return d.Learn(titles)
}

// Scan searches for sold listings of a term and inserts every title not
// already stored, fully extracted. The detector may be nil, in which case
// new cards start out Unknown.
func Scan(ctx context.Context, s CardStore, source ListingSource, detector SportDetector, d *terms.Dictionaries, term string) (Tally, error) {
	var tally Tally

	listings, err := source.Search(ctx, term)
	if err != nil {
		return tally, fmt.Errorf("search %q: %w", term, err)
	}

	for _, l := range listings {
		if err := ctx.Err(); err != nil {
			return tally, err
		}

		exists, err := s.HasTitle(ctx, l.Title)
		if err != nil {
			tally.Errors++
			log.Printf("backfill: dedupe check failed for %q: %v", l.Title, err)
			continue
		}
		if exists {
			tally.Unchanged++
			continue
		}

		card := NewCard(ctx, l, detector, d)
		if err := s.Insert(ctx, &card); err != nil {
			tally.Errors++
			log.Printf("backfill: insert failed for %q: %v", l.Title, err)
			continue
		}
		tally.Updated++
	}
	return tally, nil
}

// NewCard builds a fully-extracted card record from a raw listing.
func NewCard(ctx context.Context, l model.RawListing, detector SportDetector, d *terms.Dictionaries) model.Card {
	res := extract.All(l.Title, d)

	card := model.Card{
		Title:        l.Title,
		SummaryTitle: res.SummaryTitle,
		PlayerName:   res.PlayerName,
		Year:         res.Year,
		Brand:        res.Brand,
		CardSet:      res.CardSet,
		CardType:     res.CardType,
		CardNumber:   res.CardNumber,
		PrintRun:     res.PrintRun,
		IsRookie:     res.IsRookie,
		IsAutograph:  res.IsAutograph,
		NeedsReview:  res.NeedsReview,
		Sport:        model.SportUnknown,
		SoldDate:     l.SoldDate,
		Condition:    l.Condition,
		ItemURL:      l.ItemURL,
	}
	if bucket := ebay.GradeBucket(l.Title); bucket == ebay.BucketRaw && l.Price != nil {
		card.RawAverage = l.Price
	}
	if detector != nil {
		card.Sport = detector.Detect(ctx, l.Title, res.PlayerName)
	}
	return card
}

// ReExtract re-runs extraction over every stored record, learning from the
// corpus first, and writes back only the fields that changed.
func ReExtract(ctx context.Context, s CardStore, d *terms.Dictionaries, showProgress bool) (Tally, error) {
	var tally Tally

	d = LearnDictionaries(ctx, s, d)

	cards, err := s.All(ctx)
	if err != nil {
		return tally, fmt.Errorf("load cards: %w", err)
	}

	ind := progress.NewIndicator("Re-extracting", len(cards), showProgress)
	ind.Start()
	defer ind.Finish()

	for i, card := range cards {
		if err := ctx.Err(); err != nil {
			return tally, err
		}

		res := extract.All(card.Title, d)
		patch := res.Diff(card)
		if patch.IsEmpty() {
			tally.Unchanged++
		} else if err := s.UpdateFields(ctx, card.ID, patch); err != nil {
			tally.Errors++
			log.Printf("backfill: update failed for card %d: %v", card.ID, err)
		} else {
			tally.Updated++
		}
		ind.Update(i + 1)
	}
	return tally, nil
}

// DetectSports runs sport detection for every card still marked Unknown
// (or never attempted). Records are processed sequentially; the external
// API is rate-sensitive.
func DetectSports(ctx context.Context, s CardStore, detector SportDetector, showProgress bool) (Tally, error) {
	var tally Tally

	cards, err := s.NeedingSport(ctx)
	if err != nil {
		return tally, fmt.Errorf("load cards needing sport: %w", err)
	}

	ind := progress.NewIndicator("Detecting sports", len(cards), showProgress)
	ind.Start()
	defer ind.Finish()

	for i, card := range cards {
		if err := ctx.Err(); err != nil {
			return tally, err
		}

		resolved := detector.Detect(ctx, card.Title, card.PlayerName)
		if resolved == card.Sport {
			tally.Unchanged++
		} else if err := s.UpdateFields(ctx, card.ID, model.Patch{Sport: model.String(resolved)}); err != nil {
			tally.Errors++
			log.Printf("backfill: sport update failed for card %d: %v", card.ID, err)
		} else {
			tally.Updated++
		}
		ind.Update(i + 1)
	}
	return tally, nil
}
