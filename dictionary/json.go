package dictionary

import (
	"encoding/json"
)

// jsonFormat parses JSON dictionaries. Nested objects become nesting
// levels directly.
type jsonFormat struct{}

func (jsonFormat) Name() string { return "json" }

func (jsonFormat) Parse(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return normalize(raw)
}
