package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// LoadOption is a functional option for Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	whitelist []string
	blacklist []string
}

// WithWhitelist keeps only the listed locale ids. When both a whitelist and
// a blacklist are given, the whitelist wins and the blacklist is ignored.
func WithWhitelist(ids ...string) LoadOption {
	return func(cfg *loadConfig) {
		cfg.whitelist = append(cfg.whitelist, ids...)
	}
}

// WithBlacklist removes the listed locale ids.
func WithBlacklist(ids ...string) LoadOption {
	return func(cfg *loadConfig) {
		cfg.blacklist = append(cfg.blacklist, ids...)
	}
}

// Load reads every parsable dictionary file directly inside dir
// (non-recursive) and returns the filtered set, sorted ascending by locale
// id. Each file's base name minus extension becomes the locale id; the
// format parser is selected by extension (see FormatFor). Files with an
// unrecognized extension are skipped.
//
// Load fails with *NotFoundError when the directory is missing or the set
// is empty after filtering, and with *ParseError when any recognized file
// is malformed.
func Load(dir string, opts ...LoadOption) (Set, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	fileEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &NotFoundError{Dir: dir, Cause: err}
	}

	// Sort by file name so that when two files map to the same locale id,
	// the later one wins per key deterministically.
	names := make([]string, 0, len(fileEntries))
	for _, entry := range fileEntries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	slices.Sort(names)

	byID := make(map[string]*Dictionary)
	for _, name := range names {
		ext := strings.ToLower(filepath.Ext(name))
		format := FormatFor(ext)
		if format == nil {
			continue
		}

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path) // #nosec G304 - locale dir is caller-configured
		if err != nil {
			return nil, fmt.Errorf("reading dictionary %q: %w", path, err)
		}

		entries, err := format.Parse(data)
		if err != nil {
			return nil, &ParseError{File: path, Format: format.Name(), Cause: err}
		}

		id := strings.TrimSuffix(name, filepath.Ext(name))
		if existing, ok := byID[id]; ok {
			merge(existing.Entries, entries)
			continue
		}
		byID[id] = &Dictionary{ID: id, Entries: entries}
	}

	set := make(Set, 0, len(byID))
	for _, d := range byID {
		if !keep(d.ID, cfg) {
			continue
		}
		set = append(set, d)
	}

	if len(set) == 0 {
		return nil, &NotFoundError{Dir: dir}
	}

	slices.SortFunc(set, func(a, b *Dictionary) int {
		return strings.Compare(a.ID, b.ID)
	})

	return set, nil
}

// LoadFile parses a single dictionary file. The locale id is the file's
// base name minus extension, same as Load.
func LoadFile(path string) (*Dictionary, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format := FormatFor(ext)
	if format == nil {
		return nil, &ParseError{File: path, Format: ext, Cause: errUnknownFormat}
	}

	data, err := os.ReadFile(path) // #nosec G304 - dictionary path is caller-provided
	if err != nil {
		return nil, err
	}

	entries, err := format.Parse(data)
	if err != nil {
		return nil, &ParseError{File: path, Format: format.Name(), Cause: err}
	}

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Dictionary{ID: id, Entries: entries}, nil
}

// keep applies whitelist/blacklist filtering. Whitelist takes precedence.
func keep(id string, cfg loadConfig) bool {
	if len(cfg.whitelist) > 0 {
		return slices.Contains(cfg.whitelist, id)
	}
	if len(cfg.blacklist) > 0 {
		return !slices.Contains(cfg.blacklist, id)
	}
	return true
}

// merge copies src into dst recursively; src wins on key conflicts.
func merge(dst, src map[string]any) {
	for key, value := range src {
		srcNested, srcIsMap := value.(map[string]any)
		dstNested, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			merge(dstNested, srcNested)
			continue
		}
		dst[key] = value
	}
}
