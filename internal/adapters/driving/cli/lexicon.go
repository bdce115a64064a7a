package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/otzar-labs/otzar-cli/internal/adapters/driven/pdftext"
	"github.com/otzar-labs/otzar-cli/internal/core/domain"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Manage the biblical lexicon dataset",
}

var lexiconImportCmd = &cobra.Command{
	Use:   "import <extracted-text-file>",
	Short: "Import lexical entries from extracted lexicon text",
	Long: `Imports lexical entries from a plain-text dump of a lexicon PDF
(produced with pdftotext or similar). Each line opening with a Hebrew
word followed by a definition becomes one entry. Identifier collisions
with the existing lexicon abort the import.`,
	Args: cobra.ExactArgs(1),
	RunE: runLexiconImport,
}

var lexiconValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Cross-validate the dataset files",
	Long: `Checks the lexicon and the modern dictionary for consistency:
identifiers must be unique and every biblical_lemma_ids reference must
resolve. All problems found are listed in one run.`,
	RunE: runLexiconValidate,
}

var lexiconShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a lexical entry and its occurrences",
	Args:  cobra.ExactArgs(1),
	RunE:  runLexiconShow,
}

func init() {
	lexiconImportCmd.Flags().String("language", "Hebrew", "Entry language: Hebrew or Aramaic")
	lexiconImportCmd.Flags().String("source", "PDF Lexicon", "Source attribution for the glosses")

	lexiconCmd.AddCommand(lexiconImportCmd)
	lexiconCmd.AddCommand(lexiconValidateCmd)
	lexiconCmd.AddCommand(lexiconShowCmd)
	rootCmd.AddCommand(lexiconCmd)
}

func runLexiconImport(cmd *cobra.Command, args []string) error {
	if importerSvc == nil {
		return errors.New("importer service not configured")
	}

	language, _ := cmd.Flags().GetString("language")
	source, _ := cmd.Flags().GetString("source")

	lang := domain.Language(language)
	if !lang.IsValid() {
		return fmt.Errorf("%w: language must be Hebrew or Aramaic", domain.ErrInvalidInput)
	}

	extractor := pdftext.New(lang, pdftext.WithSource(source))
	entries, err := extractor.Extract(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("extracting %s: %w", args[0], err)
	}

	n, err := importerSvc.ImportLexicon(cmd.Context(), entries)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	cmd.Printf("Imported %d lexical entries.\n", n)
	return nil
}

func runLexiconValidate(cmd *cobra.Command, _ []string) error {
	if importerSvc == nil {
		return errors.New("importer service not configured")
	}

	report, err := importerSvc.ValidateDataset(cmd.Context())
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if report.OK() {
		cmd.Println("Dataset is consistent.")
		return nil
	}

	for _, issue := range report.Issues {
		cmd.Printf("%s: %v\n", issue.Record, issue.Err)
	}
	return fmt.Errorf("%d dataset inconsistencies found", len(report.Issues))
}

func runLexiconShow(cmd *cobra.Command, args []string) error {
	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	result, err := lookupService.ByID(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	entry := result.Entry
	cmd.Printf("%s  %s (%s)\n", entry.ID, entry.Lemma, entry.Language)
	if entry.POS != "" {
		cmd.Printf("  pos: %s\n", entry.POS)
	}
	for _, def := range entry.Definitions {
		cmd.Printf("  %s", def.Gloss)
		if def.Source != "" {
			cmd.Printf(" [%s]", def.Source)
		}
		cmd.Println()
	}
	if len(entry.RelatedForms) > 0 {
		cmd.Printf("  related forms: %s\n", strings.Join(entry.RelatedForms, ", "))
	}
	if entry.Etymology != "" {
		cmd.Printf("  etymology: %s\n", entry.Etymology)
	}

	if len(result.Occurrences) == 0 {
		cmd.Println("  no occurrences (corpus not built?)")
		return nil
	}
	cmd.Printf("  occurrences:\n")
	for _, occ := range result.Occurrences {
		cmd.Printf("    %s %s positions %v\n", occ.Source, occ.Reference.String(), occ.OccurrenceIndices)
	}
	return nil
}
