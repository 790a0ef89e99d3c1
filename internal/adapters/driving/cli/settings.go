package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

var (
	settingsFlags requestFlags
	settingsType  string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change narrative defaults",
	Long: `Show the narrative defaults read from config.toml.

Use "settings save" with option flags to change them.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save option flags as the new defaults",
	Long: `Save option flags as the new narrative defaults. Options not given keep
their current value.

Example:
  lexonarrative settings save --no-outcomes --type advisory`,
	Args: cobra.NoArgs,
	RunE: runSettingsSave,
}

func init() {
	settingsFlags.bindOptions(settingsSaveCmd.Flags())
	settingsSaveCmd.Flags().StringVar(&settingsType, "type", "", "default narrative type (\"detect\" clears it)")
	settingsCmd.AddCommand(settingsSaveCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	s := settingsService()
	if s == nil {
		return errors.New("settings service not configured")
	}
	printOptions(cmd, s.Defaults())
	cmd.Printf("%-34s %v\n", "rewriters", s.Rewriters())
	cmd.Printf("%-34s %s\n", "storage backend", s.StorageBackend())
	cmd.Printf("%-34s %d\n", "history limit", s.HistoryLimit())
	return nil
}

func runSettingsSave(cmd *cobra.Command, _ []string) error {
	s := settingsService()
	if s == nil {
		return errors.New("settings service not configured")
	}

	opts, err := settingsFlags.options(cmd.Flags())
	if err != nil {
		return err
	}
	opts.Seed = 0

	if cmd.Flags().Changed("type") {
		if settingsType == "detect" {
			opts.NarrativeType = ""
		} else {
			t, err := domain.ParseNarrativeType(settingsType)
			if err != nil {
				return err
			}
			opts.NarrativeType = t
		}
	}

	if err := s.Save(opts); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Println("Settings saved.")
	printOptions(cmd, opts)
	return nil
}

func printOptions(cmd *cobra.Command, o domain.NarrativeOptions) {
	narrType := "detect"
	if o.NarrativeType != "" {
		narrType = o.NarrativeType.String()
	}
	rows := []struct {
		name  string
		value any
	}{
		{"formal tone", o.FormalTone},
		{"include outcomes", o.IncludeOutcomes},
		{"include time breakdown", o.IncludeTimeBreakdown},
		{"include work type details", o.IncludeWorkTypeDetails},
		{"group by work type", o.GroupByWorkType},
		{"include complexity justification", o.IncludeComplexityJustification},
		{"include value delivered", o.IncludeValueDelivered},
		{"narrative type", narrType},
	}
	for _, r := range rows {
		cmd.Printf("%-34s %v\n", r.name, r.value)
	}
}
