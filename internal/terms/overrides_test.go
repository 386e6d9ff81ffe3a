package terms

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.json")
	content := `{"Panini Level Devin": "Devin Booker", "CHROME JUDGE": "Aaron Judge"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if got["panini level devin"] != "Devin Booker" {
		t.Errorf("keys should be lowercased: %v", got)
	}
	if got["chrome judge"] != "Aaron Judge" {
		t.Errorf("missing entry: %v", got)
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	got, err := LoadOverrides(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if got != nil {
		t.Errorf("missing file should yield nil, got %v", got)
	}
}

func TestLoadOverridesMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOverrides(path); err == nil {
		t.Error("malformed JSON should error")
	}
}

func TestLoadOverridesCap(t *testing.T) {
	raw := make(map[string]string, maxOverrides+50)
	for i := 0; i < maxOverrides+50; i++ {
		raw[fmt.Sprintf("bad name %04d", i)] = fmt.Sprintf("Good Name %04d", i)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "overrides.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if len(got) != maxOverrides {
		t.Fatalf("len = %d, want cap %d", len(got), maxOverrides)
	}
	// Keys are taken in sorted order, so the cap is deterministic.
	if _, ok := got["bad name 0000"]; !ok {
		t.Error("lowest sorted key should survive the cap")
	}
	if _, ok := got[fmt.Sprintf("bad name %04d", maxOverrides)]; ok {
		t.Error("key past the cap should have been dropped")
	}
}
