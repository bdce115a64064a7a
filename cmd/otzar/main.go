// Package main wires the otzar adapters to the core services and
// hands control to the CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	configfile "github.com/otzar-labs/otzar-cli/internal/adapters/driven/config/file"
	"github.com/otzar-labs/otzar-cli/internal/adapters/driven/corpus"
	"github.com/otzar-labs/otzar-cli/internal/adapters/driven/search/bleveindex"
	"github.com/otzar-labs/otzar-cli/internal/adapters/driving/cli"
	"github.com/otzar-labs/otzar-cli/internal/concordance"
	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/core/services"
	"github.com/otzar-labs/otzar-cli/internal/hebrew"
	"github.com/otzar-labs/otzar-cli/internal/lexicon"
	"github.com/otzar-labs/otzar-cli/internal/logger"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := configfile.NewConfigStore(os.Getenv("OTZAR_CONFIG_DIR"))
	if err != nil {
		fatal("load configuration: %v", err)
	}
	dataDir := filepath.Dir(cfg.Path())

	lexiconPath := cfg.GetString(configfile.KeyLexiconPath)
	if lexiconPath == "" {
		lexiconPath = filepath.Join(dataDir, "lexicon.json")
	}
	modernPath := cfg.GetString(configfile.KeyModernPath)
	if modernPath == "" {
		modernPath = filepath.Join(dataDir, "modern.json")
	}
	outputDir := cfg.GetString(configfile.KeyOutputDir)
	if outputDir == "" {
		outputDir = filepath.Join(dataDir, "concordances")
	}
	indexPath := cfg.GetString(configfile.KeyGlossIndexPath)
	if indexPath == "" {
		indexPath = filepath.Join(dataDir, "glossindex.bleve")
	}

	lexiconStore := lexicon.NewFileStore(lexiconPath)
	modernStore := lexicon.NewModernFileStore(modernPath)
	writer := concordance.NewFileWriter(outputDir)

	var opts []hebrew.Option
	if cfg.GetBool(configfile.KeyKeepPointing) {
		opts = append(opts, hebrew.WithPointing())
	}
	normaliser := hebrew.New(opts...)

	workers := cfg.GetInt(configfile.KeyWorkers)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	builder := services.NewBuilder(lexiconStore, writer, normaliser, workers)

	// A lexicon change invalidates every concordance, so the lexicon
	// path maps to the empty corpus (rebuild all) in watch mode.
	watchPaths := map[string]domain.Corpus{lexiconPath: ""}
	for _, c := range domain.AllCorpora() {
		path := cfg.CorpusPath(c)
		if path == "" {
			continue
		}
		reader, err := corpus.NewReader(c, path)
		if err != nil {
			logger.Warn("Skipping corpus %s: %v", c, err)
			continue
		}
		builder.AddReader(reader)
		watchPaths[path] = c
	}

	lookup := services.NewLookup(lexiconStore, modernStore, writer, normaliser)
	importer := services.NewDatasetImporter(lexiconStore, modernStore)

	// The gloss index is optional: it is only opened when a previous
	// `search index` run left one on disk. The refresher creates it on
	// first use.
	var glossIndex *bleveindex.Index
	if _, err := os.Stat(indexPath); err == nil {
		glossIndex, err = bleveindex.Open(indexPath)
		if err != nil {
			fatal("open gloss index: %v", err)
		}
		defer glossIndex.Close()
	}

	svcs := cli.Services{
		Builder:  builder,
		Lookup:   lookup,
		Importer: importer,
		Config:   cfg,
	}
	if glossIndex != nil {
		svcs.GlossIndex = glossIndex
	}
	cli.SetServices(svcs)
	cli.SetWatchPaths(watchPaths)
	cli.SetIndexRefresher(func(cmd *cobra.Command) error {
		return refreshGlossIndex(cmd, glossIndex, indexPath, lexiconStore, modernStore)
	})
	cli.SetVersion(version)

	cli.Execute()
}

// refreshGlossIndex rebuilds the gloss index from the dataset files,
// creating the index on first use.
func refreshGlossIndex(
	cmd *cobra.Command,
	idx *bleveindex.Index,
	indexPath string,
	lexiconStore *lexicon.FileStore,
	modernStore *lexicon.ModernFileStore,
) error {
	ctx := cmd.Context()

	if idx == nil {
		var err error
		idx, err = bleveindex.Open(indexPath)
		if err != nil {
			return fmt.Errorf("open gloss index: %w", err)
		}
		defer idx.Close()
	}

	entries, err := lexiconStore.Load(ctx)
	if err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}
	if err := idx.IndexLexicon(ctx, entries); err != nil {
		return fmt.Errorf("index lexicon: %w", err)
	}
	logger.Info("Indexed %d lexical entries", len(entries))

	modern, err := modernStore.Load(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Debug("No modern dictionary dataset at %s", modernStore.Path())
		return nil
	}
	if err != nil {
		return fmt.Errorf("load modern dictionary: %w", err)
	}
	if err := idx.IndexModern(ctx, modern); err != nil {
		return fmt.Errorf("index modern dictionary: %w", err)
	}
	logger.Info("Indexed %d modern entries", len(modern))

	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
