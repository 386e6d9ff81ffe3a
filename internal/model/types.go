package model

import "time"

// SportUnknown is the sentinel persisted when no sport could be resolved.
// It is distinct from the empty string: both mean "needs detection", but
// only the sentinel is ever written back by the detector.
const SportUnknown = "Unknown"

// Card is one observed sold listing plus everything derived from its title.
// Title is immutable once stored; every other derived field may be rewritten
// by a backfill run.
type Card struct {
	ID           int64
	Title        string
	SummaryTitle string

	PlayerName string
	Year       string
	Brand      string
	CardSet    string
	CardType   string
	CardNumber string
	PrintRun   string

	IsRookie    bool
	IsAutograph bool
	NeedsReview bool

	Sport string

	PSA10Price  *float64
	PSA9Average *float64
	RawAverage  *float64
	Multiplier  *float64

	SoldDate  string
	Condition string
	ItemURL   string

	CreatedAt   time.Time
	LastUpdated time.Time
}

// RawListing is what the scraper hands the pipeline. Only Title is required;
// the rest passes through to storage unmodified.
type RawListing struct {
	Title     string
	Price     *float64
	SoldDate  string
	Condition string
	ItemURL   string
}

// Patch is a partial update to a card's derived fields. Nil pointers mean
// "leave the column alone", so a patch can rewrite one field without
// disturbing the others.
type Patch struct {
	SummaryTitle *string
	PlayerName   *string
	Year         *string
	Brand        *string
	CardSet      *string
	CardType     *string
	CardNumber   *string
	PrintRun     *string
	IsRookie     *bool
	IsAutograph  *bool
	NeedsReview  *bool
	Sport        *string
}

// IsEmpty reports whether the patch would change nothing.
func (p Patch) IsEmpty() bool {
	return p.SummaryTitle == nil && p.PlayerName == nil && p.Year == nil &&
		p.Brand == nil && p.CardSet == nil && p.CardType == nil &&
		p.CardNumber == nil && p.PrintRun == nil && p.IsRookie == nil &&
		p.IsAutograph == nil && p.NeedsReview == nil && p.Sport == nil
}

// String returns a pointer to s, for building patches.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for building patches.
func Bool(b bool) *bool { return &b }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }
