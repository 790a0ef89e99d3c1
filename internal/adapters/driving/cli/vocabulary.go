package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/vocabulary"
)

var vocabularyFormat string

var vocabularyCmd = &cobra.Command{
	Use:   "vocabulary",
	Short: "Inspect the wording tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc := narrativeService()
		if svc == nil {
			return errors.New("narrative service not configured")
		}
		v := svc.Vocabulary()
		cmd.Printf("Version: %s\n", v.Version)
		cmd.Printf("Categories: %d\n", len(v.Categories))
		for _, c := range v.Categories {
			cmd.Printf("  %-22s %d verbs, %d objects\n", c.Label, len(c.Verbs), len(c.Objects))
		}
		return nil
	},
}

var vocabularyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the wording tables in use",
	Long: `Print the wording tables in use as TOML or YAML. Save the output as
vocabulary.toml or vocabulary.yaml in the config directory to customise it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc := narrativeService()
		if svc == nil {
			return errors.New("narrative service not configured")
		}
		data, err := vocabulary.Encode(svc.Vocabulary(), vocabularyFormat)
		if err != nil {
			return fmt.Errorf("export vocabulary: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	vocabularyExportCmd.Flags().StringVarP(&vocabularyFormat, "format", "f", "toml", "output format: toml or yaml")
	vocabularyCmd.AddCommand(vocabularyExportCmd)
	rootCmd.AddCommand(vocabularyCmd)
}
