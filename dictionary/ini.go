package dictionary

import (
	"gopkg.in/ini.v1"
)

// iniFormat parses classic section/key=value files. Keys in the unnamed
// top section map to top-level paths; a section name contributes the
// leading segments, so
//
//	[section1.subsection2]
//	token3 = content
//
// produces the path section1.subsection2.token3.
type iniFormat struct{}

func (iniFormat) Name() string { return "ini" }

func (iniFormat) Parse(data []byte) (map[string]any, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, err
	}

	flat := make(map[string]string)
	for _, section := range file.Sections() {
		prefix := ""
		if section.Name() != ini.DefaultSection {
			prefix = section.Name() + "."
		}
		for _, key := range section.Keys() {
			flat[prefix+key.Name()] = key.Value()
		}
	}

	return FromFlat("", flat).Entries, nil
}
