package extract

import (
	"github.com/guarzo/cardgap/internal/model"
	"github.com/guarzo/cardgap/internal/terms"
)

// Result holds everything a single extraction pass recovers from a title.
type Result struct {
	Year       string
	Brand      string
	CardSet    string
	CardType   string
	CardNumber string
	PrintRun   string
	PlayerName string

	IsRookie    bool
	IsAutograph bool
	NeedsReview bool

	SummaryTitle string
}

// All runs the full pipeline on one title: the independent field extractors
// first, then the player pass (which needs their claimed tokens), then the
// summary assembler. Pure; re-running with the same dictionaries always
// returns the same result.
func All(title string, d *terms.Dictionaries) Result {
	var r Result
	var claimed []span

	var yearSp, prSp, numSp span
	r.Year, yearSp = yearSpan(title)
	if r.Year != "" {
		claimed = append(claimed, yearSp)
	}
	r.PrintRun, prSp = printRunSpan(title)
	if r.PrintRun != "" {
		claimed = append(claimed, prSp)
	}
	r.CardNumber, numSp = cardNumberSpan(title, claimed)
	if r.CardNumber != "" {
		claimed = append(claimed, numSp)
	}

	var typeMatches []terms.Match
	r.CardType, typeMatches = cardTypeMatches(title, d, claimed)

	setMatch, hasSet := d.MatchSet(title)
	if hasSet {
		r.CardSet = setMatch.Name
		r.Brand = d.Brand(setMatch.Name)
	}

	r.IsRookie = IsRookie(title)
	r.IsAutograph = IsAutograph(title)

	removals := make([]string, 0, len(typeMatches)+6)
	if r.Year != "" {
		removals = append(removals, r.Year)
	}
	if r.PrintRun != "" {
		removals = append(removals, r.PrintRun)
	}
	if r.CardNumber != "" {
		removals = append(removals, title[numSp.start:numSp.end])
	}
	for _, m := range typeMatches {
		removals = append(removals, m.Text)
	}
	if hasSet {
		removals = append(removals, setMatch.Text, setMatch.Name)
	}

	if player, ok := extractPlayer(title, d, removals); ok {
		r.PlayerName = player.Name
		r.NeedsReview = player.NeedsReview
	}

	r.SummaryTitle = Summary(title, Fields{
		Year:        r.Year,
		CardSet:     r.CardSet,
		PlayerName:  r.PlayerName,
		CardType:    r.CardType,
		IsAutograph: r.IsAutograph,
		CardNumber:  r.CardNumber,
		PrintRun:    r.PrintRun,
	}, d)

	return r
}

// Patch converts a result into a full re-extraction patch.
func (r Result) Patch() model.Patch {
	return model.Patch{
		SummaryTitle: model.String(r.SummaryTitle),
		PlayerName:   model.String(r.PlayerName),
		Year:         model.String(r.Year),
		Brand:        model.String(r.Brand),
		CardSet:      model.String(r.CardSet),
		CardType:     model.String(r.CardType),
		CardNumber:   model.String(r.CardNumber),
		PrintRun:     model.String(r.PrintRun),
		IsRookie:     model.Bool(r.IsRookie),
		IsAutograph:  model.Bool(r.IsAutograph),
		NeedsReview:  model.Bool(r.NeedsReview),
	}
}

// Diff returns a patch containing only the fields whose extracted value
// differs from what the card currently stores. An empty patch means the
// record is already up to date.
func (r Result) Diff(card model.Card) model.Patch {
	var p model.Patch
	if r.SummaryTitle != card.SummaryTitle {
		p.SummaryTitle = model.String(r.SummaryTitle)
	}
	if r.PlayerName != card.PlayerName {
		p.PlayerName = model.String(r.PlayerName)
	}
	if r.Year != card.Year {
		p.Year = model.String(r.Year)
	}
	if r.Brand != card.Brand {
		p.Brand = model.String(r.Brand)
	}
	if r.CardSet != card.CardSet {
		p.CardSet = model.String(r.CardSet)
	}
	if r.CardType != card.CardType {
		p.CardType = model.String(r.CardType)
	}
	if r.CardNumber != card.CardNumber {
		p.CardNumber = model.String(r.CardNumber)
	}
	if r.PrintRun != card.PrintRun {
		p.PrintRun = model.String(r.PrintRun)
	}
	if r.IsRookie != card.IsRookie {
		p.IsRookie = model.Bool(r.IsRookie)
	}
	if r.IsAutograph != card.IsAutograph {
		p.IsAutograph = model.Bool(r.IsAutograph)
	}
	if r.NeedsReview != card.NeedsReview {
		p.NeedsReview = model.Bool(r.NeedsReview)
	}
	return p
}
