package terms

import "testing"

func TestLearnCardTypeCompound(t *testing.T) {
	d := New()
	titles := []string{"2023 Topps Chrome Gold Wave Refractor #44"}

	// Before learning the three words match separately.
	if got := d.MatchCardTypes(titles[0]); len(got) != 3 {
		t.Fatalf("seed dictionaries matched %d types, want 3 separate words", len(got))
	}

	learned := d.Learn(titles)
	if learned == d {
		t.Fatal("Learn returned the receiver despite new vocabulary")
	}

	got := learned.MatchCardTypes(titles[0])
	if len(got) != 1 || got[0].Name != "Gold Wave Refractor" {
		t.Fatalf("after learning: matches = %v, want single Gold Wave Refractor", got)
	}
}

func TestLearnSetSurface(t *testing.T) {
	d := New()
	titles := []string{"2023 Bowman - Chrome Prospects Junior Caminero"}

	learned := d.Learn(titles)
	if !learned.IsTerm("bowman - chrome prospects") {
		t.Error("observed hyphenated surface was not recorded")
	}
	m, ok := learned.MatchSet(titles[0])
	if !ok || m.Name != "Bowman Chrome Prospects" {
		t.Errorf("MatchSet after learning = %q, %v; want canonical unchanged", m.Name, ok)
	}
}

func TestLearnIdempotent(t *testing.T) {
	d := New()
	titles := []string{"2023 Topps Chrome Gold Wave Refractor #44"}

	once := d.Learn(titles)
	twice := once.Learn(titles)
	if twice != once {
		t.Error("second Learn over the same corpus rebuilt the dictionaries")
	}
}

func TestLearnEmptyCorpus(t *testing.T) {
	d := New()
	if d.Learn(nil) != d {
		t.Error("empty corpus should return the seed dictionaries unchanged")
	}
	if d.Learn([]string{"nothing recognizable here"}) != d {
		t.Error("corpus with no vocabulary should return the receiver")
	}
}

func TestLearnDoesNotMutateReceiver(t *testing.T) {
	d := New()
	before := len(d.MatchCardTypes("Gold Wave Refractor"))

	d.Learn([]string{"2023 Topps Chrome Gold Wave Refractor"})

	if after := len(d.MatchCardTypes("Gold Wave Refractor")); after != before {
		t.Errorf("receiver mutated: %d matches before, %d after", before, after)
	}
}
