package dictionary

import (
	"reflect"
	"slices"
	"testing"
)

// Every format must produce the same nested shape for equivalent input.
func TestFormats_SameShape(t *testing.T) {
	want := map[string]any{
		"token1": "content1",
		"section1": map[string]any{
			"token2": "content2",
		},
	}

	tests := []struct {
		ext  string
		data string
	}{
		{".json", `{"token1": "content1", "section1": {"token2": "content2"}}`},
		{".yaml", "token1: content1\nsection1:\n  token2: content2\n"},
		{".toml", "token1 = \"content1\"\n\n[section1]\ntoken2 = \"content2\"\n"},
		{".ini", "token1 = content1\n\n[section1]\ntoken2 = content2\n"},
		{".csv", "token1,content1\nsection1.token2,content2\n"},
		{".tsv", "token1\tcontent1\nsection1.token2\tcontent2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			format := FormatFor(tt.ext)
			if format == nil {
				t.Fatalf("No format registered for %s", tt.ext)
			}

			entries, err := format.Parse([]byte(tt.data))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if !reflect.DeepEqual(entries, want) {
				t.Errorf("Expected %v, got %v", want, entries)
			}
		})
	}
}

func TestFormatFor_Unknown(t *testing.T) {
	if FormatFor(".exe") != nil {
		t.Error("Expected nil for unknown extension")
	}
}

func TestExtensions(t *testing.T) {
	exts := Extensions()
	for _, want := range []string{".ini", ".toml", ".yaml", ".yml", ".json", ".csv", ".tsv"} {
		if !slices.Contains(exts, want) {
			t.Errorf("Expected %s in recognized extensions", want)
		}
	}
}

func TestJSON_ScalarLeavesStringified(t *testing.T) {
	entries, err := FormatFor(".json").Parse([]byte(`{"count": 42, "flag": true}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if entries["count"] != "42" {
		t.Errorf("Expected '42', got %v", entries["count"])
	}
	if entries["flag"] != "true" {
		t.Errorf("Expected 'true', got %v", entries["flag"])
	}
}

func TestJSON_ListRejected(t *testing.T) {
	if _, err := FormatFor(".json").Parse([]byte(`{"items": ["a", "b"]}`)); err == nil {
		t.Error("Expected list values to be rejected")
	}
}

func TestYAML_NullRejected(t *testing.T) {
	if _, err := FormatFor(".yaml").Parse([]byte("key:\n")); err == nil {
		t.Error("Expected null values to be rejected")
	}
}

// Literal dots inside a key compose into nesting levels, same as nested
// mappings and dotted section names.
func TestFormats_DottedKeysCompose(t *testing.T) {
	tests := []struct {
		ext  string
		data string
	}{
		{".yaml", "section1.token2: content2\n"},
		{".json", `{"section1.token2": "content2"}`},
		{".yaml", "section1:\n  token2: content2\n"},
		{".json", `{"section1": {"token2": "content2"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.ext+"/"+tt.data, func(t *testing.T) {
			entries, err := FormatFor(tt.ext).Parse([]byte(tt.data))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			d := &Dictionary{Entries: entries}
			if val, ok := d.Resolve("section1.token2"); !ok || val != "content2" {
				t.Errorf("Expected 'content2', got %q (ok=%v)", val, ok)
			}
		})
	}
}

func TestYAML_DottedKeyUnderNestedMap(t *testing.T) {
	data := "section1:\n  subsection2.token3: content3\n"

	entries, err := FormatFor(".yaml").Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	d := &Dictionary{Entries: entries}
	if val, ok := d.Resolve("section1.subsection2.token3"); !ok || val != "content3" {
		t.Errorf("Expected 'content3', got %q (ok=%v)", val, ok)
	}
}

func TestINI_DottedSectionName(t *testing.T) {
	data := "[section1.subsection2]\ntoken3 = content3\n"

	entries, err := FormatFor(".ini").Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	d := &Dictionary{Entries: entries}
	if val, ok := d.Resolve("section1.subsection2.token3"); !ok || val != "content3" {
		t.Errorf("Expected 'content3', got %q (ok=%v)", val, ok)
	}
}

func TestCSV_CommentsSkipped(t *testing.T) {
	data := "# locale file\ntoken1,content1\n"

	entries, err := FormatFor(".csv").Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if entries["token1"] != "content1" {
		t.Errorf("Expected 'content1', got %v", entries["token1"])
	}
}

func TestCSV_EmptyKeyRejected(t *testing.T) {
	if _, err := FormatFor(".csv").Parse([]byte(",orphan value\n")); err == nil {
		t.Error("Expected empty key to be rejected")
	}
}

func TestCSV_WrongColumnCountRejected(t *testing.T) {
	if _, err := FormatFor(".csv").Parse([]byte("a,b,c\n")); err == nil {
		t.Error("Expected three-column row to be rejected")
	}
}

func TestTSV_ValueWithCommas(t *testing.T) {
	entries, err := FormatFor(".tsv").Parse([]byte("greeting\tHello, world, again\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if entries["greeting"] != "Hello, world, again" {
		t.Errorf("Expected commas preserved, got %v", entries["greeting"])
	}
}
