package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/guarzo/cardgap/internal/model"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cards.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInsertAndAll(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	card := model.Card{
		Title:        "2024 Bowman Chrome Draft Konnor Griffin #BDC-168 PSA 10",
		SummaryTitle: "2024 Bowman Chrome Draft Konnor Griffin #BDC-168",
		PlayerName:   "Konnor Griffin",
		Year:         "2024",
		Brand:        "Bowman",
		CardSet:      "Bowman Chrome Draft",
		CardNumber:   "#BDC-168",
		IsRookie:     true,
		Sport:        model.SportUnknown,
		SoldDate:     "Aug 12, 2025",
		Condition:    "Pre-Owned",
		ItemURL:      "https://example.com/itm/1",
		PSA10Price:   model.Float(120),
	}
	if err := s.Insert(ctx, &card); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if card.ID == 0 {
		t.Fatal("Insert did not assign an ID")
	}
	if card.CreatedAt.IsZero() || card.LastUpdated.IsZero() {
		t.Error("Insert did not stamp timestamps")
	}

	cards, err := s.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("All returned %d cards, want 1", len(cards))
	}

	got := cards[0]
	if got.Title != card.Title || got.PlayerName != "Konnor Griffin" ||
		got.CardNumber != "#BDC-168" || !got.IsRookie || got.Sport != model.SportUnknown {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
	if got.PSA10Price == nil || *got.PSA10Price != 120 {
		t.Errorf("PSA10Price = %v, want 120", got.PSA10Price)
	}
	if got.RawAverage != nil || got.Multiplier != nil {
		t.Errorf("unset prices came back non-nil: %+v", got)
	}
}

func TestHasTitle(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	card := model.Card{Title: "2024 Topps Chrome Paul Skenes"}
	if err := s.Insert(ctx, &card); err != nil {
		t.Fatal(err)
	}

	if ok, err := s.HasTitle(ctx, card.Title); err != nil || !ok {
		t.Errorf("HasTitle(stored) = %v, %v; want true", ok, err)
	}
	if ok, err := s.HasTitle(ctx, "something else"); err != nil || ok {
		t.Errorf("HasTitle(absent) = %v, %v; want false", ok, err)
	}
}

func TestUpdateFieldsPartial(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	card := model.Card{
		Title:      "2024 Topps Chrome Paul Skenes",
		PlayerName: "Wrong Name",
		Year:       "2024",
	}
	if err := s.Insert(ctx, &card); err != nil {
		t.Fatal(err)
	}

	patch := model.Patch{
		PlayerName: model.String("Paul Skenes"),
		IsRookie:   model.Bool(true),
	}
	if err := s.UpdateFields(ctx, card.ID, patch); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}

	cards, err := s.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	got := cards[0]
	if got.PlayerName != "Paul Skenes" || !got.IsRookie {
		t.Errorf("patched fields not applied: %+v", got)
	}
	if got.Year != "2024" {
		t.Errorf("untouched column changed: Year = %q", got.Year)
	}
}

func TestUpdateFieldsEmptyPatch(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	card := model.Card{Title: "a title"}
	if err := s.Insert(ctx, &card); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateFields(ctx, card.ID, model.Patch{}); err != nil {
		t.Errorf("empty patch should be a no-op, got %v", err)
	}
}

func TestUpdatePricesComputesMultiplier(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	card := model.Card{Title: "a title"}
	if err := s.Insert(ctx, &card); err != nil {
		t.Fatal(err)
	}

	if err := s.UpdatePrices(ctx, card.ID, model.Float(500), model.Float(300), model.Float(50)); err != nil {
		t.Fatalf("UpdatePrices: %v", err)
	}

	cards, err := s.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	got := cards[0]
	if got.PSA10Price == nil || *got.PSA10Price != 500 {
		t.Errorf("PSA10Price = %v, want 500", got.PSA10Price)
	}
	if got.Multiplier == nil || *got.Multiplier != 10 {
		t.Errorf("Multiplier = %v, want 10", got.Multiplier)
	}

	// Dropping the raw average clears the multiplier.
	if err := s.UpdatePrices(ctx, card.ID, model.Float(500), nil, nil); err != nil {
		t.Fatal(err)
	}
	cards, _ = s.All(ctx)
	if cards[0].Multiplier != nil {
		t.Errorf("Multiplier = %v, want nil without a raw average", cards[0].Multiplier)
	}
}

func TestNeedingSport(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	unknown := model.Card{Title: "title a", Sport: model.SportUnknown}
	never := model.Card{Title: "title b"} // empty sport stores NULL
	done := model.Card{Title: "title c", Sport: "Baseball"}
	for _, c := range []*model.Card{&unknown, &never, &done} {
		if err := s.Insert(ctx, c); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.NeedingSport(ctx)
	if err != nil {
		t.Fatalf("NeedingSport: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("NeedingSport returned %d cards, want 2", len(got))
	}
	if got[0].Title != "title a" || got[1].Title != "title b" {
		t.Errorf("wrong rows: %q, %q", got[0].Title, got[1].Title)
	}
}

func TestBySport(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	for _, c := range []*model.Card{
		{Title: "skenes", Sport: "Baseball"},
		{Title: "bedard", Sport: "Hockey"},
		{Title: "wemby", Sport: "Basketball"},
	} {
		if err := s.Insert(ctx, c); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.BySport(ctx, "Hockey")
	if err != nil {
		t.Fatalf("BySport: %v", err)
	}
	if len(got) != 1 || got[0].Title != "bedard" {
		t.Errorf("BySport = %v, want the single hockey card", got)
	}
}

func TestAllTitles(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	titles := []string{"first title", "second title"}
	for _, title := range titles {
		c := model.Card{Title: title}
		if err := s.Insert(ctx, &c); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.AllTitles(ctx)
	if err != nil {
		t.Fatalf("AllTitles: %v", err)
	}
	if len(got) != 2 || got[0] != "first title" || got[1] != "second title" {
		t.Errorf("AllTitles = %v, want %v", got, titles)
	}
}
