// Command gol10n localizes documents at build time: one input file becomes
// one output file per locale dictionary, with R.-style tokens replaced.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZaguanLabs/gol10n"
	"github.com/ZaguanLabs/gol10n/cache"
	"github.com/ZaguanLabs/gol10n/dictionary"
	"github.com/ZaguanLabs/gol10n/provider"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = gol10n.Version
	commit    = gol10n.GitCommit
	buildDate = gol10n.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gol10n", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	locales := fs.String("locales", "", "Directory containing locale dictionaries")
	whitelist := fs.String("whitelist", "", "Comma-separated locale ids to keep")
	blacklist := fs.String("blacklist", "", "Comma-separated locale ids to drop")
	prefix := fs.String("prefix", "R.", "Token prefix")
	suffix := fs.String("suffix", "", "Token suffix (default: stop-condition based tokens)")
	filename := fs.String("filename", string(gol10n.DefaultPathTemplate), "Output filename template")
	outDir := fs.String("out", "", "Output directory (default: alongside inputs)")
	htmlAttrs := fs.Bool("html-lang", false, "Stamp lang/dir attributes on <html> outputs")
	cacheImport := fs.String("cache-import", "", "Warm the substitution cache from a JSON export")
	cacheExport := fs.String("cache-export", "", "Export the substitution cache to a JSON file")
	dryRun := fs.Bool("dry-run", false, "List tokens found in the inputs without expanding")
	diffFile := fs.String("diff", "", "Compare a dictionary file against this previous version")
	fillLang := fs.String("fill", "", "Machine-translate a dictionary file into this locale")
	sourceLang := fs.String("source", "en", "Source language for -fill")
	apiKey := fs.String("api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	model := fs.String("model", "gpt-4o-mini", "OpenAI model for -fill")
	contextStr := fs.String("context", "", "Translation context for -fill (e.g. 'E-commerce website')")
	exclude := fs.String("exclude", "", "Comma-separated terms to never translate with -fill")
	output := fs.String("o", "", "Output file for -fill and -json (default: stdout)")
	jsonOutput := fs.Bool("json", false, "Output stats as JSON")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", gol10n.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	if *diffFile != "" {
		if fs.NArg() != 1 {
			return fmt.Errorf("-diff needs exactly one dictionary file argument")
		}
		return runDiff(fs.Arg(0), *diffFile, stdout, *jsonOutput)
	}

	if *fillLang != "" {
		if fs.NArg() != 1 {
			return fmt.Errorf("-fill needs exactly one dictionary file argument")
		}
		return runFill(fs.Arg(0), *fillLang, *sourceLang, *apiKey, *model, *contextStr, *exclude, *output, stdout, stderr, *quiet)
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("at least one input file is required")
	}

	delim := gol10n.DefaultDelimiter()
	delim.Prefix = *prefix
	delim.Suffix = *suffix

	if *dryRun {
		return runDryRun(fs.Args(), delim, stdout, *jsonOutput)
	}

	if *locales == "" {
		fs.Usage()
		return fmt.Errorf("-locales is required")
	}

	var loadOpts []dictionary.LoadOption
	if ids := splitList(*whitelist); len(ids) > 0 {
		loadOpts = append(loadOpts, dictionary.WithWhitelist(ids...))
	}
	if ids := splitList(*blacklist); len(ids) > 0 {
		loadOpts = append(loadOpts, dictionary.WithBlacklist(ids...))
	}

	set, err := dictionary.Load(*locales, loadOpts...)
	if err != nil {
		return err
	}

	opts := []gol10n.ExpanderOption{
		gol10n.WithDelimiter(delim),
		gol10n.WithPathTemplate(gol10n.PathTemplate(*filename)),
	}
	if *htmlAttrs {
		opts = append(opts, gol10n.WithHTMLLangAttributes())
	}

	var memCache *cache.InMemoryCache
	if *cacheImport != "" || *cacheExport != "" {
		memCache = cache.NewInMemoryCache(0)
		if *cacheImport != "" {
			imported, err := cache.NewImporter(memCache).ImportFromFile(*cacheImport)
			if err != nil {
				return fmt.Errorf("importing cache: %w", err)
			}
			if !*quiet {
				fmt.Fprintf(stderr, "Imported %d cache entries\n", imported.Imported)
			}
		}
		opts = append(opts, gol10n.WithCache(memCache))
	}

	expander := gol10n.NewExpander(set, opts...)

	if !*quiet {
		fmt.Fprintf(stderr, "Expanding %d file(s) into %d locale(s)...\n", fs.NArg(), len(set))
	}

	start := time.Now()

	docs := make([]gol10n.Document, 0, fs.NArg())
	for _, inputPath := range fs.Args() {
		data, err := os.ReadFile(inputPath) // #nosec G304 - CLI tool reads user-specified files
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		docs = append(docs, gol10n.Document{
			Path:     inputPath,
			Base:     filepath.Dir(inputPath),
			Cwd:      ".",
			Contents: data,
		})
	}

	results, err := gol10n.ExpandAll(context.Background(), expander, docs)
	if err != nil {
		return fmt.Errorf("expansion failed: %w", err)
	}

	written := 0
	replaced := 0
	cached := 0
	for _, result := range results {
		replaced += result.Replaced
		cached += result.Cached
		for _, doc := range result.Documents {
			target := doc.Path
			if *outDir != "" {
				target = filepath.Join(*outDir, target)
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			if err := os.WriteFile(target, doc.Contents, 0o600); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			written++
		}
	}
	elapsed := time.Since(start)

	if *cacheExport != "" {
		meta := map[string]string{"locales": strings.Join(set.IDs(), ",")}
		if err := cache.NewExporter(memCache).ExportToFile(*cacheExport, meta); err != nil {
			return fmt.Errorf("exporting cache: %w", err)
		}
	}

	if *jsonOutput {
		return writeJSON(stdout, *output, map[string]any{
			"inputs":     fs.NArg(),
			"locales":    set.IDs(),
			"written":    written,
			"replaced":   replaced,
			"cached":     cached,
			"elapsed_ms": elapsed.Milliseconds(),
		})
	}

	if !*quiet {
		fmt.Fprintf(stderr, "\nDone in %v\n", elapsed.Round(time.Millisecond))
		fmt.Fprintf(stderr, "  Outputs written:  %d\n", written)
		fmt.Fprintf(stderr, "  Tokens replaced:  %d\n", replaced)
		fmt.Fprintf(stderr, "  From cache:       %d\n", cached)
	}

	return nil
}

// runDryRun lists the tokens found in each input without expanding.
func runDryRun(inputs []string, delim gol10n.Delimiter, stdout io.Writer, jsonOut bool) error {
	type fileTokens struct {
		File   string   `json:"file"`
		Tokens []string `json:"tokens"`
	}

	var report []fileTokens
	for _, inputPath := range inputs {
		data, err := os.ReadFile(inputPath) // #nosec G304 - CLI tool reads user-specified files
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		tokens := gol10n.Scan(string(data), delim)
		paths := make([]string, len(tokens))
		for i, tok := range tokens {
			paths[i] = tok.Path
		}
		report = append(report, fileTokens{File: inputPath, Tokens: paths})
	}

	if jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	for _, ft := range report {
		fmt.Fprintf(stdout, "%s: %d token(s)\n", ft.File, len(ft.Tokens))
		for _, p := range ft.Tokens {
			fmt.Fprintf(stdout, "  %s\n", p)
		}
	}
	return nil
}

// runDiff compares a dictionary file against a previous version and reports
// which keys need fresh translations.
func runDiff(newPath, oldPath string, stdout io.Writer, jsonOut bool) error {
	oldDict, err := dictionary.LoadFile(oldPath)
	if err != nil {
		return fmt.Errorf("loading previous version: %w", err)
	}
	newDict, err := dictionary.LoadFile(newPath)
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}

	diff := gol10n.DiffDictionaries(oldDict, newDict)
	stats := diff.Stats()

	if jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"dictionary":        filepath.Base(newPath),
			"previous":          filepath.Base(oldPath),
			"stats":             stats,
			"needs_translation": diff.NeedsTranslation(),
		})
	}

	fmt.Fprintf(stdout, "Diff: %s vs %s\n\n", filepath.Base(newPath), filepath.Base(oldPath))
	fmt.Fprintf(stdout, "Summary:\n")
	fmt.Fprintf(stdout, "  Unchanged: %d\n", stats.Unchanged)
	fmt.Fprintf(stdout, "  Added:     %d\n", stats.Added)
	fmt.Fprintf(stdout, "  Removed:   %d\n", stats.Removed)
	fmt.Fprintf(stdout, "  Modified:  %d\n\n", stats.Modified)

	if !diff.HasChanges() {
		fmt.Fprintf(stdout, "No changes detected. All translations are up to date.\n")
		return nil
	}

	for _, key := range diff.Added {
		fmt.Fprintf(stdout, "  + %s\n", key)
	}
	for _, m := range diff.Modified {
		fmt.Fprintf(stdout, "  ~ %s: %q -> %q\n", m.Path, m.Old, m.New)
	}
	for _, key := range diff.Removed {
		fmt.Fprintf(stdout, "  - %s\n", key)
	}

	return nil
}

// runFill machine-translates a dictionary file into the target locale and
// writes the candidate dictionary as JSON.
func runFill(srcPath, targetLang, sourceLang, apiKey, model, contextStr, exclude, output string, stdout, stderr io.Writer, quiet bool) error {
	src, err := dictionary.LoadFile(srcPath)
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}

	key := apiKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		return fmt.Errorf("OpenAI API key required (-api-key or OPENAI_API_KEY env)")
	}

	p := provider.NewOpenAIProvider(provider.OpenAIConfig{
		APIKey: key,
		Model:  model,
	})

	// Wrap with rate limiting and retry
	limited := gol10n.NewRateLimitedProvider(p, gol10n.RateLimitConfig{RequestsPerMinute: 30})
	retryable := gol10n.NewRetryableProvider(limited, gol10n.DefaultRetryConfig())

	fillOpts := []gol10n.FillerOption{
		gol10n.WithFillSourceLang(sourceLang),
	}
	if contextStr != "" {
		fillOpts = append(fillOpts, gol10n.WithFillContext(contextStr))
	}
	if terms := splitList(exclude); len(terms) > 0 {
		fillOpts = append(fillOpts, gol10n.WithFillExcludedTerms(terms))
	}

	filler := gol10n.NewFiller(retryable, fillOpts...)

	if !quiet {
		fmt.Fprintf(stderr, "Translating %s (%d keys) to %s...\n", filepath.Base(srcPath), len(src.Keys()), targetLang)
	}

	start := time.Now()
	filled, err := filler.Fill(context.Background(), src, targetLang)
	if err != nil {
		return fmt.Errorf("fill failed: %w", err)
	}

	var out io.Writer = stdout
	if output != "" {
		f, err := os.Create(output) // #nosec G304 - output path is user-provided
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(filled.Entries); err != nil {
		return fmt.Errorf("encoding dictionary: %w", err)
	}

	if !quiet {
		fmt.Fprintf(stderr, "Done in %v\n", time.Since(start).Round(time.Millisecond))
	}

	return nil
}

// writeJSON encodes v to path, or to stdout when path is empty.
func writeJSON(stdout io.Writer, path string, v any) error {
	var out io.Writer = stdout
	if path != "" {
		f, err := os.Create(path) // #nosec G304 - output path is user-provided
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// splitList splits a comma-separated flag value, trimming whitespace.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
