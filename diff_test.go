package gol10n

import (
	"reflect"
	"testing"

	"github.com/ZaguanLabs/gol10n/dictionary"
)

func TestDiffDictionaries(t *testing.T) {
	old := &dictionary.Dictionary{
		ID: "en_US",
		Entries: map[string]any{
			"title":   "Welcome",
			"removed": "Gone",
			"nested": map[string]any{
				"same":    "Same",
				"changed": "Before",
			},
		},
	}
	new := &dictionary.Dictionary{
		ID: "en_US",
		Entries: map[string]any{
			"title": "Welcome",
			"added": "Fresh",
			"nested": map[string]any{
				"same":    "Same",
				"changed": "After",
			},
		},
	}

	diff := DiffDictionaries(old, new)

	if !reflect.DeepEqual(diff.Added, []string{"added"}) {
		t.Errorf("Expected added [added], got %v", diff.Added)
	}
	if !reflect.DeepEqual(diff.Removed, []string{"removed"}) {
		t.Errorf("Expected removed [removed], got %v", diff.Removed)
	}
	if !reflect.DeepEqual(diff.Unchanged, []string{"nested.same", "title"}) {
		t.Errorf("Expected unchanged [nested.same title], got %v", diff.Unchanged)
	}

	if len(diff.Modified) != 1 {
		t.Fatalf("Expected 1 modified key, got %d", len(diff.Modified))
	}
	m := diff.Modified[0]
	if m.Path != "nested.changed" || m.Old != "Before" || m.New != "After" {
		t.Errorf("Unexpected modified entry: %+v", m)
	}
}

func TestDiffDictionaries_NoChanges(t *testing.T) {
	d := &dictionary.Dictionary{
		ID:      "de_DE",
		Entries: map[string]any{"a": "1", "b": "2"},
	}

	diff := DiffDictionaries(d, d)

	if diff.HasChanges() {
		t.Error("Expected no changes")
	}
	stats := diff.Stats()
	if stats.Unchanged != 2 || stats.Added != 0 || stats.Removed != 0 || stats.Modified != 0 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestDiffResult_NeedsTranslation(t *testing.T) {
	diff := &DiffResult{
		Added:    []string{"z.new"},
		Modified: []ModifiedKey{{Path: "a.changed", Old: "x", New: "y"}},
	}

	got := diff.NeedsTranslation()
	want := []string{"a.changed", "z.new"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
