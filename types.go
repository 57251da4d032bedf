package gol10n

import (
	"io"
	"unicode"
)

// Document is one unit of content moving through the pipeline. The engine
// itself never reads from or writes to the filesystem; the host supplies
// input documents and collects the expanded outputs.
type Document struct {
	Path     string    // Pipeline-relative path (e.g. "test/helloworld.html")
	Base     string    // Base directory, copied unchanged to every output
	Cwd      string    // Working directory, copied unchanged to every output
	Contents []byte    // Buffered content; nil means the document has no content
	Stream   io.Reader // Non-nil when content is not buffered
}

// IsNull reports whether the document carries no content at all.
func (d Document) IsNull() bool {
	return d.Contents == nil && d.Stream == nil
}

// IsStream reports whether the document's content is unbuffered.
func (d Document) IsStream() bool {
	return d.Stream != nil
}

// Delimiter defines how a token's textual extent is recognized.
//
// A token starts at Prefix. If Suffix is non-empty the token runs to the
// next occurrence of Suffix; otherwise it runs until the first rune for
// which Stop returns true (exclusive).
type Delimiter struct {
	Prefix string
	Suffix string
	Stop   func(r rune) bool
}

// DefaultDelimiter returns the default delimiter: tokens look like
// "R.section.key" and end at the first rune that cannot be part of a
// dotted key path.
func DefaultDelimiter() Delimiter {
	return Delimiter{
		Prefix: "R.",
		Stop:   DefaultStop,
	}
}

// DefaultStop is the default token stop condition: any rune outside
// [A-Za-z0-9._-] terminates the token. This covers whitespace and all
// markup-delimiting punctuation.
func DefaultStop(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return false
	}
	switch r {
	case '.', '_', '-':
		return false
	}
	return true
}

// Token is a transient match against document content. StartOffset and
// EndOffset bound the full extent, delimiters included.
type Token struct {
	Path        string // Dotted key path, without the delimiters
	StartOffset int
	EndOffset   int
}

// RTLLanguages contains base language codes written right to left.
var RTLLanguages = map[string]bool{
	"ar": true, // Arabic
	"he": true, // Hebrew
	"fa": true, // Persian/Farsi
	"ur": true, // Urdu
	"ps": true, // Pashto
	"sd": true, // Sindhi
	"ug": true, // Uyghur
}
