package gol10n

import (
	"github.com/ZaguanLabs/gol10n/dictionary"
)

// Expander multiplies one input document into one output document per
// active locale. The dictionary set is loaded once per pipeline run and
// passed in explicitly; the Expander holds no other state, so any number
// of documents may be expanded concurrently through the same instance.
type Expander struct {
	set       dictionary.Set
	delim     Delimiter
	template  PathTemplate
	cache     SubstitutionCache
	htmlAttrs bool
}

// SubstitutionCache caches substituted content keyed by content hash and
// locale, so identical documents skip re-scanning across build runs.
type SubstitutionCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// ExpanderOption is a functional option for configuring the Expander.
type ExpanderOption func(*Expander)

// WithDelimiter sets the token delimiter.
func WithDelimiter(delim Delimiter) ExpanderOption {
	return func(e *Expander) {
		e.delim = delim
	}
}

// WithPathTemplate sets the output filename template.
func WithPathTemplate(template PathTemplate) ExpanderOption {
	return func(e *Expander) {
		e.template = template
	}
}

// WithCache sets the substitution cache.
func WithCache(cache SubstitutionCache) ExpanderOption {
	return func(e *Expander) {
		e.cache = cache
	}
}

// WithHTMLLangAttributes stamps lang and dir attributes on the <html>
// element of full-document HTML outputs.
func WithHTMLLangAttributes() ExpanderOption {
	return func(e *Expander) {
		e.htmlAttrs = true
	}
}

// NewExpander creates an Expander over the given dictionary set.
func NewExpander(set dictionary.Set, opts ...ExpanderOption) *Expander {
	e := &Expander{
		set:      set,
		delim:    DefaultDelimiter(),
		template: DefaultPathTemplate,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ExpandResult is the outcome of expanding one document.
type ExpandResult struct {
	Documents []Document // One per dictionary, in set order
	Replaced  int        // Tokens replaced across all outputs
	Cached    int        // Outputs served from the substitution cache
}

// Expand produces one output document per dictionary in the set, in set
// order. Each output gets a locale-specific path from the filename
// template and substituted content; Base and Cwd are copied unchanged.
//
// Expand fails with *NullContentError when the document has no content and
// with *StreamingError when its content is not buffered. A failure aborts
// before any output is produced.
func (e *Expander) Expand(doc Document) (*ExpandResult, error) {
	if doc.IsStream() {
		return nil, &StreamingError{Path: doc.Path}
	}
	if doc.IsNull() {
		return nil, &NullContentError{Path: doc.Path}
	}

	content := string(doc.Contents)
	contentHash := ""
	if e.cache != nil {
		contentHash = HashContent(doc.Contents)
	}

	result := &ExpandResult{
		Documents: make([]Document, 0, len(e.set)),
	}

	for _, dict := range e.set {
		output, replaced, cached := e.localize(content, contentHash, dict)

		result.Replaced += replaced
		if cached {
			result.Cached++
		}

		result.Documents = append(result.Documents, Document{
			Path:     e.template.Render(doc.Path, dict.ID),
			Base:     doc.Base,
			Cwd:      doc.Cwd,
			Contents: []byte(output),
		})
	}

	return result, nil
}

// localize computes one locale's content, consulting the cache first.
func (e *Expander) localize(content, contentHash string, dict *dictionary.Dictionary) (output string, replaced int, cached bool) {
	var cacheKey string
	if e.cache != nil {
		cacheKey = CacheKey(contentHash, dict.ID)
		if hit, ok := e.cache.Get(cacheKey); ok {
			return hit, 0, true
		}
	}

	output, replaced = Substitute(content, dict, e.delim)

	if e.htmlAttrs {
		output = setHTMLAttributes(output, dict.ID)
	}

	if e.cache != nil {
		_ = e.cache.Set(cacheKey, output) // Ignore cache set errors
	}

	return output, replaced, false
}

// Set returns the dictionary set the expander operates on.
func (e *Expander) Set() dictionary.Set {
	return e.set
}

// Delimiter returns the configured token delimiter.
func (e *Expander) Delimiter() Delimiter {
	return e.delim
}

// PathTemplate returns the configured filename template.
func (e *Expander) PathTemplate() PathTemplate {
	return e.template
}
