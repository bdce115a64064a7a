package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/otzar-labs/otzar-cli/internal/adapters/driven/config/file"
	"github.com/otzar-labs/otzar-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage otzar configuration",
	Long: `View and change configuration values stored in config.toml.

Well-known keys:
  data.lexicon       lexicon dataset file
  data.modern        modern dictionary dataset file
  output.dir         concordance output directory
  search.index       gloss search index directory
  build.workers      matcher worker count
  build.keep_pointing  keep niqqud during normalisation
  corpus.<name>      source file per corpus (tanakh, targums, peshitta)`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Printf("Configuration (%s)\n\n", configStore.Path())

	keys := []string{
		file.KeyLexiconPath,
		file.KeyModernPath,
		file.KeyOutputDir,
		file.KeyGlossIndexPath,
		file.KeyWorkers,
		file.KeyKeepPointing,
	}
	for _, corpus := range domain.AllCorpora() {
		keys = append(keys, "corpus."+strings.ToLower(string(corpus)))
	}

	for _, key := range keys {
		value, ok := configStore.Get(key)
		if !ok {
			cmd.Printf("  %-22s (unset)\n", key)
			continue
		}
		cmd.Printf("  %-22s %v\n", key, value)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	value, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("%w: key %q is not set", domain.ErrNotFound, args[0])
	}
	cmd.Printf("%v\n", value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	// TOML distinguishes value types, so coerce obvious ints and bools
	// instead of storing everything as strings.
	var value any = raw
	if n, err := strconv.Atoi(raw); err == nil {
		value = n
	} else if b, err := strconv.ParseBool(raw); err == nil {
		value = b
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	cmd.Printf("%s = %v\n", key, value)
	return nil
}
