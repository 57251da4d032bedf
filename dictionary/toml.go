package dictionary

import (
	"github.com/pelletier/go-toml/v2"
)

// tomlFormat parses TOML dictionaries. Tables become nesting levels, so
// both [section] headers and dotted keys compose into dotted paths.
type tomlFormat struct{}

func (tomlFormat) Name() string { return "toml" }

func (tomlFormat) Parse(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return normalize(raw)
}
