// Package gol10n is a build-time localization engine.
//
// Given one source document and a directory of per-locale translation
// dictionaries, gol10n produces one transformed copy of the document per
// active locale, with every recognized placeholder token replaced by the
// locale's translated string.
//
// Basic usage:
//
//	import (
//	    "github.com/ZaguanLabs/gol10n"
//	    "github.com/ZaguanLabs/gol10n/dictionary"
//	)
//
//	func main() {
//	    set, err := dictionary.Load("locales")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    expander := gol10n.NewExpander(set)
//
//	    result, err := expander.Expand(gol10n.Document{
//	        Path:     "test/helloworld.html",
//	        Contents: []byte("<h1>R.title</h1>"),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, doc := range result.Documents {
//	        fmt.Println(doc.Path) // test/helloworld-de_DE.html, ...
//	    }
//	}
//
// Dictionaries are loaded once per pipeline run and are read-only
// afterwards, so documents may be expanded concurrently (see ExpandAll).
package gol10n
