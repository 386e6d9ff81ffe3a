// Package report writes the tracked table out as CSV for spreadsheet
// review. Cells are escaped against formula injection before writing.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/guarzo/cardgap/internal/model"
)

var headers = []string{
	"id", "title", "summary_title", "player_name", "year", "brand",
	"card_set", "card_type", "card_number", "print_run", "rookie", "auto",
	"needs_review", "sport", "psa10_price", "psa9_average_price",
	"raw_average_price", "multiplier",
}

// WriteCSV writes all cards to w.
func WriteCSV(w io.Writer, cards []model.Card) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(escapeRow(headers)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, c := range cards {
		row := []string{
			strconv.FormatInt(c.ID, 10), c.Title, c.SummaryTitle,
			c.PlayerName, c.Year, c.Brand, c.CardSet, c.CardType,
			c.CardNumber, c.PrintRun, boolCell(c.IsRookie),
			boolCell(c.IsAutograph), boolCell(c.NeedsReview), c.Sport,
			priceCell(c.PSA10Price), priceCell(c.PSA9Average),
			priceCell(c.RawAverage), priceCell(c.Multiplier),
		}
		if err := cw.Write(escapeRow(row)); err != nil {
			return fmt.Errorf("write row for card %d: %w", c.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func boolCell(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

func priceCell(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', 2, 64)
}

// EscapeCell protects against CSV formula injection by quoting cells that
// start with a character spreadsheets treat as a formula indicator.
func EscapeCell(value string) string {
	if value == "" {
		return value
	}
	switch value[0] {
	case '=', '+', '-', '@', '|', '%', '\t', '\r', '\n':
		return "'" + value
	}
	return value
}

func escapeRow(row []string) []string {
	escaped := make([]string, len(row))
	for i, cell := range row {
		escaped[i] = EscapeCell(cell)
	}
	return escaped
}
