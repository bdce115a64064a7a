package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Full-text search over lexicon and dictionary glosses",
}

var searchIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the gloss search index from the dataset files",
	RunE:  runSearchIndex,
}

var searchQueryCmd = &cobra.Command{
	Use:   "query <terms...>",
	Short: "Query the gloss search index",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearchQuery,
}

// indexRefresher rebuilds the gloss index from the dataset files.
// Injected from main because the index feeds from the stores directly.
var indexRefresher func(cmd *cobra.Command) error

// SetIndexRefresher injects the gloss-index rebuild function.
func SetIndexRefresher(fn func(cmd *cobra.Command) error) {
	indexRefresher = fn
}

func init() {
	searchQueryCmd.Flags().IntP("limit", "n", 10, "Maximum number of results")
	searchCmd.AddCommand(searchIndexCmd)
	searchCmd.AddCommand(searchQueryCmd)
	rootCmd.AddCommand(searchCmd)
}

func runSearchIndex(cmd *cobra.Command, _ []string) error {
	if indexRefresher == nil {
		return errors.New("search index not configured")
	}
	if err := indexRefresher(cmd); err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}
	cmd.Println("Gloss index rebuilt.")
	return nil
}

func runSearchQuery(cmd *cobra.Command, args []string) error {
	if glossIndex == nil {
		return errors.New("search index not configured")
	}

	limit, _ := cmd.Flags().GetInt("limit")
	hits, err := glossIndex.Search(cmd.Context(), strings.Join(args, " "), limit)
	if err != nil {
		return err
	}

	if len(hits) == 0 {
		cmd.Println("No results.")
		return nil
	}
	for _, hit := range hits {
		cmd.Printf("%-8s %s  (%.3f)\n", hit.ID, hit.Headword, hit.Score)
		for _, fragment := range hit.Fragments {
			cmd.Printf("         %s\n", fragment)
		}
	}
	return nil
}
