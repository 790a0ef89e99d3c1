package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/adapters/driving/tui"
)

var reviewFlags requestFlags

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review a narrative in the interactive terminal UI",
	Long: `Generate a narrative and review it interactively.

Controls:
  tab      - Next version (primary, then alternatives)
  r        - Regenerate with the next seed
  c        - Toggle Bar-compliant mode
  ?        - Toggle help
  q        - Quit

The request file is read the same way as by generate.`,
	Args: cobra.NoArgs,
	RunE: runReview,
}

func init() {
	reviewFlags.bind(reviewCmd.Flags())
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	svc := narrativeService()
	if svc == nil {
		return errors.New("narrative service not configured")
	}

	// The TUI owns the terminal, so the request cannot come from piped stdin.
	if reviewFlags.input == "" || reviewFlags.input == "-" {
		return errors.New("review needs --input FILE")
	}

	req, err := reviewFlags.build(cmd)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(&tui.Ports{Narrative: svc}, req, reviewFlags.compliant)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	stop := startWatch(cmd.Context())
	defer stop()

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
