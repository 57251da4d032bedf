package gol10n

import (
	"context"
	"errors"
	"testing"

	"github.com/ZaguanLabs/gol10n/dictionary"
)

// stubProvider echoes each source text with a locale marker and records
// every request it sees.
type stubProvider struct {
	requests []TranslateRequest
	err      error
}

func (p *stubProvider) Translate(_ context.Context, req TranslateRequest) ([]string, error) {
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	out := make([]string, len(req.Texts))
	for i, text := range req.Texts {
		out[i] = "[" + req.TargetLang + "] " + text
	}
	return out, nil
}

func TestFiller_Fill(t *testing.T) {
	src := &dictionary.Dictionary{
		ID: "en_US",
		Entries: map[string]any{
			"greeting": "Hello",
			"nav": map[string]any{
				"home": "Home",
			},
		},
	}

	provider := &stubProvider{}
	filler := NewFiller(provider)

	result, err := filler.Fill(context.Background(), src, "de_DE")
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}

	if result.ID != "de_DE" {
		t.Errorf("Expected id 'de_DE', got %q", result.ID)
	}

	val, ok := result.Resolve("greeting")
	if !ok || val != "[de_DE] Hello" {
		t.Errorf("Expected '[de_DE] Hello', got %q (ok=%v)", val, ok)
	}
	val, ok = result.Resolve("nav.home")
	if !ok || val != "[de_DE] Home" {
		t.Errorf("Expected '[de_DE] Home', got %q (ok=%v)", val, ok)
	}

	if len(provider.requests) != 1 {
		t.Fatalf("Expected 1 batch, got %d", len(provider.requests))
	}
	req := provider.requests[0]
	if req.SourceLang != "en" {
		t.Errorf("Expected default source lang 'en', got %q", req.SourceLang)
	}
	// Keys are processed in ascending order.
	if req.Texts[0] != "Hello" || req.Texts[1] != "Home" {
		t.Errorf("Unexpected batch order: %v", req.Texts)
	}
}

func TestFiller_Batching(t *testing.T) {
	src := &dictionary.Dictionary{
		ID: "en_US",
		Entries: map[string]any{
			"a": "1", "b": "2", "c": "3", "d": "4", "e": "5",
		},
	}

	provider := &stubProvider{}
	filler := NewFiller(provider, WithFillBatchSize(2))

	result, err := filler.Fill(context.Background(), src, "fr_FR")
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}

	if len(provider.requests) != 3 {
		t.Errorf("Expected 3 batches, got %d", len(provider.requests))
	}
	if len(result.Keys()) != 5 {
		t.Errorf("Expected 5 keys, got %d", len(result.Keys()))
	}
}

func TestFiller_Options(t *testing.T) {
	src := &dictionary.Dictionary{ID: "en_US", Entries: map[string]any{"k": "v"}}

	provider := &stubProvider{}
	filler := NewFiller(provider,
		WithFillSourceLang("en_GB"),
		WithFillExcludedTerms([]string{"API"}),
		WithFillContext("marketing site"),
		WithFillGlossary(map[string]string{"Home": "Startseite"}),
	)

	if _, err := filler.Fill(context.Background(), src, "de_DE"); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}

	req := provider.requests[0]
	if req.SourceLang != "en_GB" {
		t.Errorf("Expected source lang 'en_GB', got %q", req.SourceLang)
	}
	if len(req.ExcludedTerms) != 1 || req.ExcludedTerms[0] != "API" {
		t.Errorf("Unexpected excluded terms: %v", req.ExcludedTerms)
	}
	if req.Context != "marketing site" {
		t.Errorf("Unexpected context: %q", req.Context)
	}
	if req.Glossary["Home"] != "Startseite" {
		t.Errorf("Unexpected glossary: %v", req.Glossary)
	}
}

func TestFiller_ProviderError(t *testing.T) {
	src := &dictionary.Dictionary{ID: "en_US", Entries: map[string]any{"k": "v"}}

	provider := &stubProvider{err: errors.New("API down")}
	filler := NewFiller(provider)

	if _, err := filler.Fill(context.Background(), src, "de_DE"); err == nil {
		t.Fatal("Expected error from provider")
	}
}

type shortProvider struct{}

func (shortProvider) Translate(_ context.Context, req TranslateRequest) ([]string, error) {
	return req.Texts[:len(req.Texts)-1], nil
}

func TestFiller_CountMismatch(t *testing.T) {
	src := &dictionary.Dictionary{ID: "en_US", Entries: map[string]any{"a": "1", "b": "2"}}

	filler := NewFiller(shortProvider{})

	_, err := filler.Fill(context.Background(), src, "de_DE")

	var mismatch *CountMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Expected CountMismatchError, got %v", err)
	}
	if mismatch.Expected != 2 || mismatch.Got != 1 {
		t.Errorf("Expected 2/1, got %d/%d", mismatch.Expected, mismatch.Got)
	}
}
