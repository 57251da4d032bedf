package dictionary

import "fmt"

// Format parses one on-disk dictionary file format into the normalized
// nested string map. Two families exist: section/key=value formats (INI,
// TOML) and nested document formats (YAML, JSON), plus the flat two-column
// tabular format (CSV/TSV). All of them produce the same nested shape, so
// the rest of the engine never inspects where a dictionary came from.
type Format interface {
	// Name identifies the format in error messages.
	Name() string

	// Parse converts file content into a nested map with string leaves.
	Parse(data []byte) (map[string]any, error)
}

// formats maps a lowercased file extension (including the dot) to its parser.
var formats = map[string]Format{
	".ini":  iniFormat{},
	".toml": tomlFormat{},
	".yaml": yamlFormat{},
	".yml":  yamlFormat{},
	".json": jsonFormat{},
	".csv":  tabularFormat{comma: ','},
	".tsv":  tabularFormat{comma: '\t'},
}

// FormatFor returns the parser for the given extension, or nil when the
// extension is not a recognized dictionary format.
func FormatFor(ext string) Format {
	return formats[ext]
}

// Extensions returns all recognized dictionary file extensions.
func Extensions() []string {
	exts := make([]string, 0, len(formats))
	for ext := range formats {
		exts = append(exts, ext)
	}
	return exts
}

// normalize converts a freshly unmarshalled tree into the canonical
// map[string]any shape with string leaves. Scalar leaves of other types
// (numbers, booleans) are stringified; lists are rejected because a dotted
// key path cannot address into them. Keys containing literal dots compose
// into nesting levels, so `section1.token2: x` and `section1: {token2: x}`
// produce the same shape.
func normalize(raw map[string]any) (map[string]any, error) {
	flat := make(map[string]string)
	if err := flattenRaw("", raw, flat); err != nil {
		return nil, err
	}
	return FromFlat("", flat).Entries, nil
}

// flattenRaw joins nested map keys with dots into flat paths.
func flattenRaw(prefix string, raw map[string]any, out map[string]string) error {
	for key, value := range raw {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[path] = v
		case map[string]any:
			if err := flattenRaw(path, v, out); err != nil {
				return err
			}
		case []any:
			return fmt.Errorf("key %q: list values are not supported", key)
		case nil:
			return fmt.Errorf("key %q: null value", key)
		default:
			out[path] = fmt.Sprint(v)
		}
	}
	return nil
}
