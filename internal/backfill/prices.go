package backfill

import (
	"context"
	"fmt"
	"log"

	"github.com/guarzo/cardgap/internal/ebay"
	"github.com/guarzo/cardgap/internal/model"
	"github.com/guarzo/cardgap/internal/progress"
)

// RefreshPrices looks up recent sold prices for every card using its summary
// title as the search term, averages them per grading bucket and writes the
// price columns back. The multiplier is recomputed by the store on write.
func RefreshPrices(ctx context.Context, s CardStore, source ListingSource, showProgress bool) (Tally, error) {
	var tally Tally

	cards, err := s.All(ctx)
	if err != nil {
		return tally, fmt.Errorf("load cards: %w", err)
	}

	ind := progress.NewIndicator("Refreshing prices", len(cards), showProgress)
	ind.Start()
	defer ind.Finish()

	for i, card := range cards {
		if err := ctx.Err(); err != nil {
			return tally, err
		}
		ind.Update(i + 1)

		if card.SummaryTitle == "" {
			tally.Unchanged++
			continue
		}

		listings, err := source.Search(ctx, card.SummaryTitle)
		if err != nil {
			tally.Errors++
			log.Printf("backfill: price search failed for card %d: %v", card.ID, err)
			continue
		}

		psa10, psa9, raw := bucketAverages(listings)
		if psa10 == nil && psa9 == nil && raw == nil {
			tally.Unchanged++
			continue
		}
		if err := s.UpdatePrices(ctx, card.ID, psa10, psa9, raw); err != nil {
			tally.Errors++
			log.Printf("backfill: price update failed for card %d: %v", card.ID, err)
			continue
		}
		tally.Updated++
	}
	return tally, nil
}

// bucketAverages computes the mean sold price per grading bucket. Graded
// material that is neither PSA 10 nor PSA 9 is excluded from all buckets.
func bucketAverages(listings []model.RawListing) (psa10, psa9, raw *float64) {
	sums := map[string]float64{}
	counts := map[string]int{}

	for _, l := range listings {
		if l.Price == nil || *l.Price <= 0 {
			continue
		}
		bucket := ebay.GradeBucket(l.Title)
		if bucket == ebay.BucketOther {
			continue
		}
		sums[bucket] += *l.Price
		counts[bucket]++
	}

	avg := func(bucket string) *float64 {
		if counts[bucket] == 0 {
			return nil
		}
		v := sums[bucket] / float64(counts[bucket])
		return &v
	}
	return avg(ebay.BucketPSA10), avg(ebay.BucketPSA9), avg(ebay.BucketRaw)
}
