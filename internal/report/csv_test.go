package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/guarzo/cardgap/internal/model"
)

func TestWriteCSV(t *testing.T) {
	cards := []model.Card{
		{
			ID:           1,
			Title:        "2024 Topps Chrome Paul Skenes #100 PSA 10",
			SummaryTitle: "2024 Topps Chrome Paul Skenes #100",
			PlayerName:   "Paul Skenes",
			Year:         "2024",
			CardNumber:   "#100",
			IsRookie:     true,
			Sport:        "Baseball",
			PSA10Price:   model.Float(500),
			RawAverage:   model.Float(50),
			Multiplier:   model.Float(10),
		},
		{ID: 2, Title: "Mystery Box Item #4", Sport: model.SportUnknown},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, cards); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2 cards", len(rows))
	}
	if rows[0][0] != "id" || len(rows[0]) != len(headers) {
		t.Errorf("bad header row: %v", rows[0])
	}

	first := rows[1]
	if first[1] != "2024 Topps Chrome Paul Skenes #100 PSA 10" {
		t.Errorf("title cell = %q", first[1])
	}
	if first[10] != "yes" { // rookie column
		t.Errorf("rookie cell = %q, want yes", first[10])
	}
	if first[14] != "500.00" || first[17] != "10.00" {
		t.Errorf("price cells = %q, %q", first[14], first[17])
	}

	second := rows[2]
	if second[14] != "" {
		t.Errorf("unset price should be an empty cell, got %q", second[14])
	}
}

func TestEscapeCell(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1", "'+1"},
		{"-5", "'-5"},
		{"@cmd", "'@cmd"},
		{"|pipe", "'|pipe"},
		{"%env", "'%env"},
		{"plain title", "plain title"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EscapeCell(tt.in); got != tt.want {
			t.Errorf("EscapeCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteCSVEscapesFormulaCells(t *testing.T) {
	cards := []model.Card{{ID: 1, Title: "=HYPERLINK(evil)"}}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, cards); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if rows[1][1] != "'=HYPERLINK(evil)" {
		t.Errorf("title cell = %q, want the escaped form", rows[1][1])
	}
}
