package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/logger"
)

// watchPaths maps watched source files to the corpus they feed. The
// lexicon file maps to an empty corpus, meaning "rebuild everything".
var watchPaths map[string]domain.Corpus

// SetWatchPaths configures the file-to-corpus mapping for the watch
// command. Called from main during wiring.
func SetWatchPaths(paths map[string]domain.Corpus) {
	watchPaths = paths
}

var concordanceCmd = &cobra.Command{
	Use:   "concordance",
	Short: "Build concordance files from the configured corpora",
}

var concordanceBuildCmd = &cobra.Command{
	Use:   "build [corpus...]",
	Short: "Run the concordance pipeline",
	Long: `Tokenises and matches the named corpora against the lexicon and
emits one concordance JSON file per corpus. Without arguments, every
configured corpus is built. Valid corpus names: Tanakh, Targums,
Peshitta.`,
	RunE: runConcordanceBuild,
}

var concordanceWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild automatically when source files change",
	Long: `Watches the configured corpus files and the lexicon for changes
and rebuilds the affected concordances. A lexicon change rebuilds every
corpus. Stop with Ctrl-C.`,
	RunE: runConcordanceWatch,
}

func init() {
	concordanceCmd.AddCommand(concordanceBuildCmd)
	concordanceCmd.AddCommand(concordanceWatchCmd)
	rootCmd.AddCommand(concordanceCmd)
}

// corpusByName resolves a case-insensitive corpus name.
func corpusByName(name string) (domain.Corpus, error) {
	for _, corpus := range domain.AllCorpora() {
		if strings.EqualFold(string(corpus), name) {
			return corpus, nil
		}
	}
	return "", fmt.Errorf("%w: unknown corpus %q", domain.ErrInvalidInput, name)
}

func printReport(cmd *cobra.Command, report *domain.BuildReport) {
	cmd.Printf("%s: %d verses (%d skipped, %d empty), %d tokens, %d matches, %d records [%s]\n",
		report.Corpus, report.VersesProcessed, report.VersesSkipped, report.EmptyVerses,
		report.Tokens, report.Matches, report.Records, report.Duration.Round(time.Millisecond))
	for _, msg := range report.MalformedErrors {
		cmd.Printf("  skipped: %s\n", msg)
	}
}

func runConcordanceBuild(cmd *cobra.Command, args []string) error {
	if builderService == nil {
		return errors.New("builder service not configured")
	}

	if len(args) == 0 {
		reports, err := builderService.BuildAll(cmd.Context())
		for _, report := range reports {
			printReport(cmd, report)
		}
		return err
	}

	for _, name := range args {
		corpus, err := corpusByName(name)
		if err != nil {
			return err
		}
		report, err := builderService.Build(cmd.Context(), corpus)
		if err != nil {
			return err
		}
		printReport(cmd, report)
	}
	return nil
}

func runConcordanceWatch(cmd *cobra.Command, _ []string) error {
	if builderService == nil {
		return errors.New("builder service not configured")
	}
	if len(watchPaths) == 0 {
		return errors.New("no corpus files configured to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for path := range watchPaths {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		logger.Info("Watching %s", path)
	}
	cmd.Println("Watching for changes. Press Ctrl-C to stop.")

	// Editors fire several events per save; rebuilds are debounced and
	// pending corpora are collected until the timer fires.
	const debounce = 500 * time.Millisecond
	pending := make(map[domain.Corpus]bool)
	rebuildAll := false
	var timer <-chan time.Time

	for {
		select {
		case <-cmd.Context().Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			corpus, watched := watchPaths[event.Name]
			if !watched {
				continue
			}
			if corpus == "" {
				rebuildAll = true
			} else {
				pending[corpus] = true
			}
			timer = time.After(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-timer:
			timer = nil
			if rebuildAll {
				reports, err := builderService.BuildAll(cmd.Context())
				for _, report := range reports {
					printReport(cmd, report)
				}
				if err != nil {
					logger.Warn("rebuild failed: %v", err)
				}
			} else {
				for corpus := range pending {
					report, err := builderService.Build(cmd.Context(), corpus)
					if err != nil {
						logger.Warn("rebuild of %s failed: %v", corpus, err)
						continue
					}
					printReport(cmd, report)
				}
			}
			pending = make(map[domain.Corpus]bool)
			rebuildAll = false
		}
	}
}
