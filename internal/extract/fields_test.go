package extract

import (
	"testing"

	"github.com/guarzo/cardgap/internal/terms"
)

func TestYear(t *testing.T) {
	tests := []struct {
		title string
		want  string
		ok    bool
	}{
		{"2024 Bowman Chrome Draft", "2024", true},
		{"Topps Heritage 1989 design 2023 release", "1989", true},
		{"card #2024", "2024", true},
		{"no year at all", "", false},
		{"card 12024 serial", "", false},
		{"1899 too old", "", false},
	}
	for _, tt := range tests {
		got, ok := Year(tt.title)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Year(%q) = %q, %v; want %q, %v", tt.title, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPrintRun(t *testing.T) {
	tests := []struct {
		title string
		want  string
		ok    bool
	}{
		{"Gold Refractor /50 auto", "/50", true},
		{"/150 sapphire", "/150", true},
		{"numbered 23/150", "", false}, // card numbering, not a print run
		{"no run here", "", false},
	}
	for _, tt := range tests {
		got, ok := PrintRun(tt.title)
		if got != tt.want || ok != tt.ok {
			t.Errorf("PrintRun(%q) = %q, %v; want %q, %v", tt.title, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCardNumber(t *testing.T) {
	tests := []struct {
		title string
		want  string
		ok    bool
	}{
		{"2023 Bowman Chrome Prospects Junior Caminero #BCP-61", "#BCP-61", true},
		{"2024 Topps Update Paul Skenes #US100", "#US100", true},
		{"2024 Bowman Draft BDC168 refractor", "#BDC168", true},
		{"2024 Bowman Draft BDP-26", "#BDP26", true},
		{"2021 Topps Stadium Club Chrome 32 Babe Ruth PSA 10", "#32", true},
		{"Mystery Box Item #4", "#4", true},
		{"2024 Topps Chrome PSA 10", "", false},   // grade, not a number
		{"2023 Prizm POP 5 gem", "", false},       // population count
		{"2024 Bowman Sapphire /150", "", false},  // print run digits
		{"no numbering", "", false},
	}
	for _, tt := range tests {
		got, ok := CardNumber(tt.title)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CardNumber(%q) = %q, %v; want %q, %v", tt.title, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCardNumberNeverOverlapsPrintRun(t *testing.T) {
	title := "2024 Bowman Chrome Sapphire Red /5"
	if n, ok := CardNumber(title); ok {
		t.Errorf("CardNumber(%q) = %q, want none: the only digits belong to the print run", title, n)
	}
}

func TestCardTypes(t *testing.T) {
	d := terms.New()
	tests := []struct {
		title string
		want  string
		ok    bool
	}{
		{"2024 Topps Chrome Gold Refractor #100", "Gold Refractor", true},
		{"2024 Bowman Sapphire Red /5", "Red", true},
		{"2023 Panini Silver Wave Prizm rookie", "Silver Wave Prizm", true},
		{"2023 Bowman Chrome base card", "", false}, // Base is not a parallel
		{"plain title", "", false},
	}
	for _, tt := range tests {
		got, ok := CardTypes(tt.title, d)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CardTypes(%q) = %q, %v; want %q, %v", tt.title, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsAutograph(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"2024 Bowman Chrome Auto /50", true},
		{"on-card autograph", true},
		{"rookie signature patch", true},
		{"automatic transmission", false},
		{"2024 Topps Chrome", false},
	}
	for _, tt := range tests {
		if got := IsAutograph(tt.title); got != tt.want {
			t.Errorf("IsAutograph(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}

func TestIsRookie(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"Paul Skenes Rookie PSA 10", true},
		{"Konnor Griffin (RC)", true},
		{"Bowman Chrome Draft 1st", true},
		{"Connor Bedard Young Guns", true},
		{"Connor Bedard Young-Guns", true},
		{"veteran base card", false},
	}
	for _, tt := range tests {
		if got := IsRookie(tt.title); got != tt.want {
			t.Errorf("IsRookie(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}
