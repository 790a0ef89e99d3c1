package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var classifyJSON bool

var classifyCmd = &cobra.Command{
	Use:   "classify [description...]",
	Short: "Show the work category for entry descriptions",
	Long: `Classify each description into a work category such as Research or
Drafting. With no arguments, one description per line is read from stdin.`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "output classifications as JSON")
	rootCmd.AddCommand(classifyCmd)
}

type classification struct {
	Description string `json:"description"`
	Category    string `json:"category"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	svc := narrativeService()
	if svc == nil {
		return errors.New("narrative service not configured")
	}

	descriptions := args
	if len(descriptions) == 0 {
		if isTerminal(cmd.InOrStdin()) {
			return errors.New("no descriptions: pass them as arguments or on stdin")
		}
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				descriptions = append(descriptions, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	results := make([]classification, 0, len(descriptions))
	for _, d := range descriptions {
		results = append(results, classification{Description: d, Category: svc.Classify(d).String()})
	}

	if classifyJSON {
		return writeJSON(cmd.OutOrStdout(), results)
	}
	for _, r := range results {
		cmd.Printf("%-22s %s\n", r.Category, r.Description)
	}
	return nil
}
