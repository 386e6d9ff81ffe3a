package backfill

import (
	"context"
	"testing"

	"github.com/guarzo/cardgap/internal/model"
)

func TestRefreshPrices(t *testing.T) {
	summary := "2024 Topps Chrome Paul Skenes #100"
	store := newFakeStore(
		model.Card{Title: "raw a", SummaryTitle: summary},
		model.Card{Title: "raw b"}, // never extracted, nothing to search by
	)

	source := &fakeSource{results: map[string][]model.RawListing{
		summary: {
			{Title: "2024 Topps Chrome Paul Skenes #100 PSA 10", Price: model.Float(500)},
			{Title: "2024 Topps Chrome Paul Skenes #100 PSA 10 pop 12", Price: model.Float(700)},
			{Title: "2024 Topps Chrome Paul Skenes #100 PSA 9", Price: model.Float(200)},
			{Title: "2024 Topps Chrome Paul Skenes #100", Price: model.Float(60)},
			{Title: "2024 Topps Chrome Paul Skenes #100 sharp", Price: model.Float(40)},
			{Title: "2024 Topps Chrome Paul Skenes #100 BGS 9.5", Price: model.Float(300)}, // other graded: excluded
			{Title: "2024 Topps Chrome Paul Skenes #100 freebie", Price: model.Float(0)},   // non-positive: excluded
		},
	}}

	tally, err := RefreshPrices(context.Background(), store, source, false)
	if err != nil {
		t.Fatalf("RefreshPrices: %v", err)
	}
	if tally.Updated != 1 || tally.Unchanged != 1 {
		t.Errorf("tally = %s, want updated=1 unchanged=1", tally)
	}

	written, ok := store.priceWrites[1]
	if !ok {
		t.Fatal("no price write for card 1")
	}
	psa10, psa9, raw := written[0], written[1], written[2]
	if psa10 == nil || *psa10 != 600 {
		t.Errorf("psa10 = %v, want 600 (mean of 500 and 700)", psa10)
	}
	if psa9 == nil || *psa9 != 200 {
		t.Errorf("psa9 = %v, want 200", psa9)
	}
	if raw == nil || *raw != 50 {
		t.Errorf("raw = %v, want 50 (mean of 60 and 40)", raw)
	}
}

func TestRefreshPricesNoListings(t *testing.T) {
	store := newFakeStore(model.Card{Title: "raw", SummaryTitle: "some summary"})
	source := &fakeSource{results: map[string][]model.RawListing{}}

	tally, err := RefreshPrices(context.Background(), store, source, false)
	if err != nil {
		t.Fatal(err)
	}
	if tally.Unchanged != 1 || len(store.priceWrites) != 0 {
		t.Errorf("tally = %s with %d writes; empty results should change nothing",
			tally, len(store.priceWrites))
	}
}

func TestBucketAverages(t *testing.T) {
	psa10, psa9, raw := bucketAverages([]model.RawListing{
		{Title: "card PSA 10", Price: model.Float(100)},
		{Title: "card raw", Price: model.Float(10)},
		{Title: "card raw two", Price: nil}, // no price: skipped
		{Title: "card SGC 9", Price: model.Float(80)},
	})
	if psa10 == nil || *psa10 != 100 {
		t.Errorf("psa10 = %v, want 100", psa10)
	}
	if psa9 != nil {
		t.Errorf("psa9 = %v, want nil", psa9)
	}
	if raw == nil || *raw != 10 {
		t.Errorf("raw = %v, want 10", raw)
	}
}
