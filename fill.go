package gol10n

import (
	"context"

	"github.com/ZaguanLabs/gol10n/dictionary"
)

// Provider is the interface for AI translation backends used to
// machine-fill dictionaries.
type Provider interface {
	Translate(ctx context.Context, req TranslateRequest) ([]string, error)
}

// TranslateRequest contains the parameters for one translation batch.
type TranslateRequest struct {
	Texts         []string          // Source strings, in order
	TargetLang    string            // Target locale id (e.g. "de_DE")
	SourceLang    string            // Source locale id (default: "en")
	ExcludedTerms []string          // Terms to never translate (e.g. ["API", "SDK"])
	Context       string            // Global context for all translations
	Glossary      map[string]string // Preferred translations for specific phrases
}

// Filler machine-translates a source dictionary into a candidate
// dictionary for another locale. The result is a starting point for human
// review, never a substitute for the build-time substitution path.
type Filler struct {
	provider      Provider
	sourceLang    string
	excludedTerms []string
	context       string
	glossary      map[string]string
	batchSize     int
}

// FillerOption is a functional option for configuring the Filler.
type FillerOption func(*Filler)

// WithFillSourceLang sets the source locale id (default "en").
func WithFillSourceLang(lang string) FillerOption {
	return func(f *Filler) {
		f.sourceLang = lang
	}
}

// WithFillExcludedTerms sets terms that should never be translated.
func WithFillExcludedTerms(terms []string) FillerOption {
	return func(f *Filler) {
		f.excludedTerms = terms
	}
}

// WithFillContext sets a global context hint for all translations.
func WithFillContext(ctx string) FillerOption {
	return func(f *Filler) {
		f.context = ctx
	}
}

// WithFillGlossary sets preferred translations for specific phrases.
func WithFillGlossary(glossary map[string]string) FillerOption {
	return func(f *Filler) {
		f.glossary = glossary
	}
}

// WithFillBatchSize caps how many strings go into one provider request.
func WithFillBatchSize(n int) FillerOption {
	return func(f *Filler) {
		if n > 0 {
			f.batchSize = n
		}
	}
}

// NewFiller creates a Filler backed by the given provider.
func NewFiller(provider Provider, opts ...FillerOption) *Filler {
	f := &Filler{
		provider:   provider,
		sourceLang: "en",
		batchSize:  50,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fill translates every value of src and returns a new dictionary for
// targetLang with the exact same key set. Keys are processed in ascending
// order so batches are deterministic.
func (f *Filler) Fill(ctx context.Context, src *dictionary.Dictionary, targetLang string) (*dictionary.Dictionary, error) {
	flat := src.Flatten()
	keys := src.Keys()

	translated := make(map[string]string, len(flat))

	for start := 0; start < len(keys); start += f.batchSize {
		end := min(start+f.batchSize, len(keys))
		batch := keys[start:end]

		texts := make([]string, len(batch))
		for i, key := range batch {
			texts[i] = flat[key]
		}

		results, err := f.provider.Translate(ctx, TranslateRequest{
			Texts:         texts,
			TargetLang:    targetLang,
			SourceLang:    f.sourceLang,
			ExcludedTerms: f.excludedTerms,
			Context:       f.context,
			Glossary:      f.glossary,
		})
		if err != nil {
			return nil, err
		}
		if len(results) != len(batch) {
			return nil, &CountMismatchError{Expected: len(batch), Got: len(results)}
		}

		for i, key := range batch {
			translated[key] = results[i]
		}
	}

	return dictionary.FromFlat(targetLang, translated), nil
}
