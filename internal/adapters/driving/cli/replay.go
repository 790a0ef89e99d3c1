package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var replayFlags requestFlags

var replayCmd = &cobra.Command{
	Use:   "replay <record-id>",
	Short: "Regenerate a recorded narrative and compare it",
	Long: `Regenerate a recorded narrative from its seed using the same request file,
and check that the text is byte-identical to the audit record.

The seed, mode and options come from the record. The option flags are only
used for records saved without options. The command fails when the texts differ.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayFlags.bindInput(replayCmd.Flags())
	replayFlags.bindOptions(replayCmd.Flags())
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	svc := narrativeService()
	if svc == nil {
		return errors.New("narrative service not configured")
	}

	req, err := replayFlags.build(cmd)
	if err != nil {
		return err
	}

	result, err := svc.Replay(cmd.Context(), args[0], req)
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	cmd.Printf("Record:     %s\n", result.Record.ID)
	cmd.Printf("Seed:       %d\n", result.Record.Seed)
	cmd.Printf("Vocabulary: %s (now %s)\n", result.Record.VocabularyVersion, result.Regenerated.VocabularyVersion)

	if result.Identical {
		cmd.Println("Result:     identical")
		return nil
	}

	cmd.Println("Result:     differs")
	cmd.Println()
	cmd.Println("Recorded:")
	cmd.Println(wrapIndented(result.Record.Narrative, 80, 2))
	cmd.Println("Regenerated:")
	cmd.Println(wrapIndented(result.Regenerated.Narrative, 80, 2))
	return errors.New("replayed narrative differs from the record")
}
