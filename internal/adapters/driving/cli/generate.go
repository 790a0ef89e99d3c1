package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driving"
)

var (
	generateFlags requestFlags
	generateJSON  bool
	generateWidth int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a fee narrative from time entries",
	Long: `Generate a fee narrative from a request file of time entries.

The request is JSON or YAML with a matter and a list of entries:

  matter:
    title: Smith v Jones
    client_name: Smith Holdings
  entries:
    - date: 2024-03-01
      duration_minutes: 90
      description: Researched case law on contributory negligence

Without --input the request is read from stdin when it is piped.
Options default to the values in config.toml and can be overridden by flags.

Examples:
  lexonarrative generate --input entries.yaml
  lexonarrative generate --input entries.json --compliant --type litigation
  cat entries.yaml | lexonarrative generate --seed 42 --json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateFlags.bind(generateCmd.Flags())
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "output the result as JSON")
	generateCmd.Flags().IntVarP(&generateWidth, "width", "w", 80, "wrap text at this width (0 = no wrapping)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	svc := narrativeService()
	if svc == nil {
		return errors.New("narrative service not configured")
	}

	req, err := generateFlags.build(cmd)
	if err != nil {
		return err
	}

	out, err := generateNarrative(cmd, svc, req, generateFlags.compliant)
	if err != nil {
		return err
	}

	if generateJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	printNarrative(cmd.OutOrStdout(), out, generateWidth)
	return nil
}

func generateNarrative(cmd *cobra.Command, svc driving.NarrativeService, req domain.NarrativeRequest, compliant bool) (*domain.GeneratedNarrative, error) {
	var (
		out *domain.GeneratedNarrative
		err error
	)
	if compliant {
		out, err = svc.GenerateCompliant(cmd.Context(), req)
	} else {
		out, err = svc.Generate(cmd.Context(), req)
	}
	if err != nil {
		return nil, fmt.Errorf("generate failed: %w", err)
	}
	return out, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// wrap word-wraps s at width; width <= 0 leaves it unchanged.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

// wrapIndented wraps s and indents every line by n spaces.
func wrapIndented(s string, width int, n uint) string {
	if width > int(n) {
		width -= int(n)
	}
	return indent.String(wrap(s, width), n)
}

func printNarrative(w io.Writer, out *domain.GeneratedNarrative, width int) {
	fmt.Fprintln(w, wrap(out.Narrative, width))
	fmt.Fprintln(w)

	meta := []string{
		fmt.Sprintf("Words: %d", out.WordCount),
		fmt.Sprintf("Confidence: %.2f", out.Confidence),
	}
	if out.NarrativeType != "" {
		meta = append([]string{"Type: " + out.NarrativeType.String()}, meta...)
	}
	fmt.Fprintln(w, strings.Join(meta, "  "))

	if c := out.Compliance; c != nil {
		printCompliance(w, *c, width)
	}

	if len(out.Suggestions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Suggestions:")
		for _, s := range out.Suggestions {
			fmt.Fprintln(w, wrapIndented("- "+s, width, 2))
		}
	}

	if len(out.AlternativeVersions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Alternatives:")
		for i, alt := range out.AlternativeVersions {
			fmt.Fprintf(w, "  [%d]\n", i+1)
			fmt.Fprintln(w, wrapIndented(alt, width, 4))
		}
	}

	fmt.Fprintln(w)
	footer := fmt.Sprintf("Seed: %d  Vocabulary: %s", out.Seed, out.VocabularyVersion)
	if out.RecordID != "" {
		footer += "  Record: " + out.RecordID
	}
	fmt.Fprintln(w, footer)
}

func printCompliance(w io.Writer, c domain.ComplianceCheck, width int) {
	status := "compliant"
	if !c.IsCompliant {
		status = "not compliant"
	}
	fmt.Fprintf(w, "Compliance: %d/100 (%s)\n", c.ComplianceScore, status)
	for i, issue := range c.Issues {
		fmt.Fprintln(w, wrapIndented("! "+issue, width, 2))
		if i < len(c.Recommendations) {
			fmt.Fprintln(w, wrapIndented(c.Recommendations[i], width, 4))
		}
	}
}
