package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	validateJSON   bool
	validateStrict bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [text]",
	Short: "Check a narrative against the compliance rules",
	Long: `Check any narrative text against the fee-justification and professionalism
rules. The text is taken from the arguments or, when none are given, from stdin.

A failed check is reported, not treated as an error, unless --strict is set.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output the check as JSON")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "exit with an error when the narrative is not compliant")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	svc := narrativeService()
	if svc == nil {
		return errors.New("narrative service not configured")
	}

	text := strings.Join(args, " ")
	if text == "" {
		if isTerminal(cmd.InOrStdin()) {
			return errors.New("no text: pass the narrative as an argument or on stdin")
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}

	check := svc.Validate(text)

	if validateJSON {
		if err := writeJSON(cmd.OutOrStdout(), check); err != nil {
			return err
		}
	} else {
		printCompliance(cmd.OutOrStdout(), check, 80)
	}

	if validateStrict && !check.IsCompliant {
		return fmt.Errorf("narrative is not compliant: %d issue(s)", len(check.Issues))
	}
	return nil
}
