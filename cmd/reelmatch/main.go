// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Command reelmatch queries a movie catalog from the command line.
//
//	reelmatch [flags] recommend <title>...
//	reelmatch [flags] suggest <query>
//	reelmatch [flags] export-js > movies.js
//
// recommend resolves each title concurrently and prints results in argument
// order. export-js writes the catalog as "window.MOVIES = [...];" for the
// static page.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Exit codes.
const (
	exitOK         = 0
	exitError      = 1
	exitUsage      = 2
	exitUnresolved = 3
)

// errUsage marks command-line mistakes.
var errUsage = errors.New("usage error")

type options struct {
	catalogPath string
	format      string
	topN        int
	limit       int
	similarity  string
	jsonOut     bool
	verbose     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one CLI invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("reelmatch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: reelmatch [flags] recommend <title>... | suggest <query> | export-js")
		fs.PrintDefaults()
	}

	defaults := recommend.DefaultConfig()
	var opts options
	fs.StringVar(&opts.catalogPath, "catalog", envOr("CATALOG_PATH", "data/movies.csv"), "catalog file (csv or json)")
	fs.StringVar(&opts.format, "format", "", "catalog format: csv or json (default: from extension)")
	fs.IntVar(&opts.topN, "n", defaults.TopN, "number of recommendations")
	fs.IntVar(&opts.limit, "limit", defaults.SuggestLimit, "number of suggestions")
	fs.StringVar(&opts.similarity, "similarity", defaults.Similarity, "similarity measure: jaccard or tfidf")
	fs.BoolVar(&opts.jsonOut, "json", false, "print JSON")
	fs.BoolVar(&opts.verbose, "v", false, "log catalog loading to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	logging.Init(logging.Config{Level: level, Format: "console", Output: stderr})

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return exitUsage
	}

	var err error
	unresolved := false
	switch cmd, cmdArgs := rest[0], rest[1:]; cmd {
	case "recommend":
		unresolved, err = runRecommend(ctx, &opts, cmdArgs, stdout)
	case "suggest":
		err = runSuggest(ctx, &opts, cmdArgs, stdout)
	case "export-js":
		err = runExport(ctx, &opts, stdout)
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	switch {
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return exitUsage
	case err != nil:
		fmt.Fprintln(stderr, "reelmatch:", err)
		return exitError
	case unresolved:
		return exitUnresolved
	}
	return exitOK
}

// loadEngine reads the catalog and builds an engine.
func loadEngine(ctx context.Context, opts *options) (*recommend.Engine, []catalog.Item, error) {
	format, err := catalog.ParseFormat(opts.format)
	if err != nil {
		return nil, nil, err
	}
	src, err := catalog.NewFileSource(opts.catalogPath, format, catalog.DefaultLoadOptions())
	if err != nil {
		return nil, nil, err
	}
	items, err := src.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	cfg := recommend.DefaultConfig()
	cfg.Similarity = opts.similarity
	if opts.topN > cfg.MaxTopN {
		cfg.MaxTopN = opts.topN
	}
	if opts.limit > cfg.MaxSuggestLimit {
		cfg.MaxSuggestLimit = opts.limit
	}

	idx := catalog.Build(items)
	engine, err := recommend.NewEngine(idx, cfg, logging.Logger())
	if err != nil {
		return nil, nil, err
	}
	logging.Debug().Int("rows", len(items)).Int("titles", idx.Len()).Str("catalog", opts.catalogPath).Msg("Catalog loaded")
	return engine, idx.Items(), nil
}

// recommendResult is one title's outcome.
type recommendResult struct {
	Query       string   `json:"query"`
	Title       string   `json:"title,omitempty"`
	OK          bool     `json:"ok"`
	Results     []string `json:"results"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func runRecommend(ctx context.Context, opts *options, titles []string, w io.Writer) (bool, error) {
	if len(titles) == 0 {
		return false, fmt.Errorf("%w: recommend needs at least one title", errUsage)
	}

	engine, _, err := loadEngine(ctx, opts)
	if err != nil {
		return false, err
	}

	results := make([]recommendResult, len(titles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, title := range titles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := engine.Resolve(title)
			r := recommendResult{Query: title, Results: []string{}}
			if res.Found {
				r.Title = res.Title
				r.OK = true
				r.Results, _ = engine.RecommendN(res.Title, opts.topN)
			} else {
				r.Suggestions = res.Suggestions
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	unresolved := false
	for _, r := range results {
		if !r.OK {
			unresolved = true
		}
	}

	if opts.jsonOut {
		return unresolved, writeJSON(w, results)
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if !r.OK {
			if len(r.Suggestions) > 0 {
				fmt.Fprintf(w, "%s: not found. Try: %s\n", r.Query, strings.Join(r.Suggestions, ", "))
			} else {
				fmt.Fprintf(w, "%s: not found\n", r.Query)
			}
			continue
		}
		if len(titles) > 1 {
			fmt.Fprintf(w, "%s:\n", r.Title)
		}
		for n, t := range r.Results {
			fmt.Fprintf(w, "%2d. %s\n", n+1, t)
		}
	}
	return unresolved, nil
}

func runSuggest(ctx context.Context, opts *options, args []string, w io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: suggest needs a query", errUsage)
	}
	query := strings.Join(args, " ")

	engine, _, err := loadEngine(ctx, opts)
	if err != nil {
		return err
	}

	suggestions := engine.SuggestN(query, opts.limit)
	if opts.jsonOut {
		return writeJSON(w, map[string]interface{}{"query": query, "suggestions": suggestions})
	}
	for _, s := range suggestions {
		fmt.Fprintln(w, s)
	}
	return nil
}

func runExport(ctx context.Context, opts *options, w io.Writer) error {
	_, items, err := loadEngine(ctx, opts)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	buf.WriteString("window.MOVIES = ")
	if err := catalog.EncodeJSON(&buf, items, catalog.DefaultSeparator); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // drop the encoder's trailing newline
	buf.WriteString(";\n")
	_, err = buf.WriteTo(w)
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
