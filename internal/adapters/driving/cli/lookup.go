package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driving"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <surface-form|id>",
	Short: "Look up a word in the lexicon",
	Long: `Resolves a surface form or a lexical-entry identifier against the
lexicon and prints matching entries with their concordance occurrences.
Surface forms are normalised exactly like corpus tokens, so pointed and
consonantal spellings behave the same. Homograph forms list every
candidate entry.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

var modernCmd = &cobra.Command{
	Use:   "modern <word|id>",
	Short: "Look up a modern dictionary entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runModern,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(modernCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	key := args[0]

	// An identifier argument resolves directly.
	if _, err := domain.ParseEntryID(key); err == nil {
		result, err := lookupService.ByID(cmd.Context(), key)
		if err != nil {
			return err
		}
		printLookupResult(cmd, result)
		return nil
	}

	results, err := lookupService.BySurface(cmd.Context(), key)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		cmd.Printf("No lexicon entry matches %q.\n", key)
		return nil
	}
	for i := range results {
		printLookupResult(cmd, &results[i])
	}
	return nil
}

func printLookupResult(cmd *cobra.Command, result *driving.LookupResult) {
	entry := result.Entry
	cmd.Printf("%s  %s (%s)\n", entry.ID, entry.Lemma, entry.Language)
	for _, def := range entry.Definitions {
		if def.Source != "" {
			cmd.Printf("  %s [%s]\n", def.Gloss, def.Source)
			continue
		}
		cmd.Printf("  %s\n", def.Gloss)
	}
	for _, occ := range result.Occurrences {
		cmd.Printf("  %s %s positions %v\n", occ.Source, occ.Reference.String(), occ.OccurrenceIndices)
	}
}

func runModern(cmd *cobra.Command, args []string) error {
	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	entry, err := lookupService.Modern(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	cmd.Printf("%s  %s\n", entry.ID, entry.Word)
	for _, def := range entry.Definitions {
		cmd.Printf("  %s\n", def.Gloss)
		if def.Example != "" {
			cmd.Printf("    e.g. %s\n", def.Example)
		}
	}
	if len(entry.BiblicalLemmaIDs) > 0 {
		cmd.Printf("  biblical lemmas: %v\n", entry.BiblicalLemmaIDs)
	}
	return nil
}
