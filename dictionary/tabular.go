package dictionary

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// tabularFormat parses flat two-column key/value files (CSV or TSV, no
// header row). Dotted keys compose into nested paths, so the tabular
// format can express the same trees as the section formats.
type tabularFormat struct {
	comma rune
}

func (f tabularFormat) Name() string {
	if f.comma == '\t' {
		return "tsv"
	}
	return "csv"
}

func (f tabularFormat) Parse(data []byte) (map[string]any, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = f.comma
	reader.Comment = '#'
	reader.FieldsPerRecord = 2

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	flat := make(map[string]string, len(records))
	for _, record := range records {
		if record[0] == "" {
			return nil, fmt.Errorf("empty key for value %q", record[1])
		}
		flat[record[0]] = record[1]
	}

	return FromFlat("", flat).Entries, nil
}
