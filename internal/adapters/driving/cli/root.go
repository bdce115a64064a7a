// Package cli implements the otzar command line interface using cobra.
// Commands hold no business logic; they parse flags, call the driving
// ports and print results. Services are injected from main via
// SetServices before Execute runs.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/otzar-labs/otzar-cli/internal/core/ports/driven"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driving"
	"github.com/otzar-labs/otzar-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Injected service implementations.
var (
	builderService driving.ConcordanceBuilder
	lookupService  driving.LookupService
	importerSvc    driving.Importer
	configStore    driven.ConfigStore
	glossIndex     driven.GlossIndex
)

// Services bundles everything the commands need.
type Services struct {
	Builder    driving.ConcordanceBuilder
	Lookup     driving.LookupService
	Importer   driving.Importer
	Config     driven.ConfigStore
	GlossIndex driven.GlossIndex
}

// SetServices injects the service implementations used by the commands.
func SetServices(s Services) {
	builderService = s.Builder
	lookupService = s.Lookup
	importerSvc = s.Importer
	configStore = s.Config
	glossIndex = s.GlossIndex
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "otzar",
	Short: "Concordance builder for Hebrew and Aramaic texts",
	Long: `Otzar builds concordances of Biblical Hebrew and Aramaic corpora
against a lexicon dataset, and imports lexicon and dictionary material
from extracted sources.

The pipeline reads corpus files (USFM or OSIS), normalises and
tokenises each verse, matches tokens against the lexicon's surface
forms and emits one concordance JSON file per corpus.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
}

// Execute runs the root command. The command context is cancelled on
// SIGINT/SIGTERM so long-running commands (watch, mcp serve) shut down
// cleanly.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
