package gol10n

import (
	"strings"
	"unicode/utf8"

	"github.com/ZaguanLabs/gol10n/dictionary"
)

// Substitute performs one left-to-right pass over content, replacing every
// delimiter-bounded token whose dotted path resolves in the dictionary.
// Unresolved tokens are left verbatim, delimiters included; everything
// outside token extents is copied unchanged. Matches are non-overlapping.
// The second return value is the number of tokens replaced.
func Substitute(content string, d *dictionary.Dictionary, delim Delimiter) (string, int) {
	if delim.Prefix == "" || !strings.Contains(content, delim.Prefix) {
		return content, 0
	}

	var out strings.Builder
	out.Grow(len(content))

	replaced := 0
	pos := 0

	for {
		idx := strings.Index(content[pos:], delim.Prefix)
		if idx < 0 {
			out.WriteString(content[pos:])
			break
		}
		idx += pos
		out.WriteString(content[pos:idx])

		path, end, ok := tokenExtent(content, idx, delim)
		if !ok {
			// Suffix mode with no closing suffix: the prefix is not a token.
			out.WriteString(delim.Prefix)
			pos = idx + len(delim.Prefix)
			continue
		}

		if value, found := d.Resolve(path); found {
			out.WriteString(value)
			replaced++
		} else {
			out.WriteString(content[idx:end])
		}
		pos = end
	}

	return out.String(), replaced
}

// Scan returns every token extent in content without resolving any of
// them. Useful for dry runs and coverage reports.
func Scan(content string, delim Delimiter) []Token {
	if delim.Prefix == "" {
		return nil
	}

	var tokens []Token
	pos := 0

	for {
		idx := strings.Index(content[pos:], delim.Prefix)
		if idx < 0 {
			return tokens
		}
		idx += pos

		path, end, ok := tokenExtent(content, idx, delim)
		if !ok {
			pos = idx + len(delim.Prefix)
			continue
		}
		if path != "" {
			tokens = append(tokens, Token{Path: path, StartOffset: idx, EndOffset: end})
		}
		pos = end
	}
}

// tokenExtent captures the token whose prefix starts at idx. It returns
// the dotted path and the end of the full extent (exclusive, delimiters
// included). ok is false only in suffix mode when no closing suffix exists.
func tokenExtent(content string, idx int, delim Delimiter) (path string, end int, ok bool) {
	start := idx + len(delim.Prefix)

	if delim.Suffix != "" {
		rel := strings.Index(content[start:], delim.Suffix)
		if rel < 0 {
			return "", 0, false
		}
		return content[start : start+rel], start + rel + len(delim.Suffix), true
	}

	stop := delim.Stop
	if stop == nil {
		stop = DefaultStop
	}

	end = start
	for end < len(content) {
		r, size := utf8.DecodeRuneInString(content[end:])
		if stop(r) {
			break
		}
		end += size
	}

	path = content[start:end]

	// Sentence-ending dots are punctuation, not path segments.
	for strings.HasSuffix(path, ".") {
		path = path[:len(path)-1]
		end--
	}

	return path, end, true
}
