package gol10n

import (
	"sort"

	"github.com/ZaguanLabs/gol10n/dictionary"
)

// DiffResult describes how one dictionary differs from another, key by key.
// Useful for incremental localization: only new or changed keys need fresh
// translations.
type DiffResult struct {
	// Added contains key paths present only in the new dictionary.
	Added []string

	// Removed contains key paths present only in the old dictionary.
	Removed []string

	// Modified contains key paths whose value changed.
	Modified []ModifiedKey

	// Unchanged contains key paths with identical values in both.
	Unchanged []string
}

// ModifiedKey is a key whose translated value changed between versions.
type ModifiedKey struct {
	Path string
	Old  string
	New  string
}

// DiffStats contains summary statistics for a diff.
type DiffStats struct {
	Added     int
	Removed   int
	Modified  int
	Unchanged int
}

// Stats returns summary statistics for the diff.
func (d *DiffResult) Stats() DiffStats {
	return DiffStats{
		Added:     len(d.Added),
		Removed:   len(d.Removed),
		Modified:  len(d.Modified),
		Unchanged: len(d.Unchanged),
	}
}

// HasChanges returns true if there are any differences.
func (d *DiffResult) HasChanges() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0 || len(d.Modified) > 0
}

// NeedsTranslation returns the key paths that need fresh translations:
// added keys plus modified keys.
func (d *DiffResult) NeedsTranslation() []string {
	result := make([]string, 0, len(d.Added)+len(d.Modified))
	result = append(result, d.Added...)
	for _, m := range d.Modified {
		result = append(result, m.Path)
	}
	sort.Strings(result)
	return result
}

// DiffDictionaries compares two dictionaries and classifies every key path
// as added, removed, modified or unchanged. Key lists come back in
// ascending order.
func DiffDictionaries(old, new *dictionary.Dictionary) *DiffResult {
	oldFlat := old.Flatten()
	newFlat := new.Flatten()

	result := &DiffResult{}

	for path, oldValue := range oldFlat {
		newValue, ok := newFlat[path]
		switch {
		case !ok:
			result.Removed = append(result.Removed, path)
		case newValue != oldValue:
			result.Modified = append(result.Modified, ModifiedKey{Path: path, Old: oldValue, New: newValue})
		default:
			result.Unchanged = append(result.Unchanged, path)
		}
	}

	for path := range newFlat {
		if _, ok := oldFlat[path]; !ok {
			result.Added = append(result.Added, path)
		}
	}

	sort.Strings(result.Added)
	sort.Strings(result.Removed)
	sort.Strings(result.Unchanged)
	sort.Slice(result.Modified, func(i, j int) bool {
		return result.Modified[i].Path < result.Modified[j].Path
	})

	return result
}
