// Package provider defines the AI provider interface and implementations
// used to machine-fill locale dictionaries.
package provider

import "github.com/ZaguanLabs/gol10n"

// Provider is the interface for AI translation backends.
// This is an alias to the main package interface for convenience.
type Provider = gol10n.Provider

// TranslateRequest is an alias to the main package type.
type TranslateRequest = gol10n.TranslateRequest
