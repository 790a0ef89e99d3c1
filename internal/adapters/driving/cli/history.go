package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded narratives",
	Long: `List the audit records of generated narratives, newest first.
Each record keeps the seed and vocabulary version, so it can be replayed.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records (default from config)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output records as JSON")
	rootCmd.AddCommand(historyCmd)
}

// historyRecord is the JSON shape of a record. The seed is a string so it
// survives JSON consumers that read numbers as float64.
type historyRecord struct {
	ID                string `json:"id"`
	CreatedAt         string `json:"created_at"`
	MatterTitle       string `json:"matter_title"`
	ClientName        string `json:"client_name"`
	Seed              string `json:"seed"`
	NarrativeType     string `json:"narrative_type,omitempty"`
	BarMode           bool   `json:"bar_mode"`
	ComplianceScore   int    `json:"compliance_score,omitempty"`
	WordCount         int    `json:"word_count"`
	TotalMinutes      int    `json:"total_minutes"`
	VocabularyVersion string `json:"vocabulary_version"`
	Narrative         string `json:"narrative"`
}

func runHistory(cmd *cobra.Command, _ []string) error {
	svc := narrativeService()
	if svc == nil {
		return errors.New("narrative service not configured")
	}

	limit := historyLimit
	if s := settingsService(); s != nil && !cmd.Flags().Changed("limit") {
		limit = s.HistoryLimit()
	}

	records, err := svc.History(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("history failed: %w", err)
	}

	if historyJSON {
		out := make([]historyRecord, 0, len(records))
		for i := range records {
			out = append(out, toHistoryRecord(records[i]))
		}
		return writeJSON(cmd.OutOrStdout(), out)
	}

	if len(records) == 0 {
		cmd.Println("No narratives recorded.")
		return nil
	}

	for i := range records {
		r := records[i]
		mode := "flowing"
		if r.BarMode {
			mode = fmt.Sprintf("compliant %d/100", r.ComplianceScore)
		}
		cmd.Printf("%s  %s  %s  seed %d  %s\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), titleOf(r), r.Seed, mode)
	}
	return nil
}

func toHistoryRecord(r domain.NarrativeRecord) historyRecord {
	return historyRecord{
		ID:                r.ID,
		CreatedAt:         r.CreatedAt.UTC().Format(time.RFC3339),
		MatterTitle:       r.MatterTitle,
		ClientName:        r.ClientName,
		Seed:              fmt.Sprintf("%d", r.Seed),
		NarrativeType:     r.NarrativeType.String(),
		BarMode:           r.BarMode,
		ComplianceScore:   r.ComplianceScore,
		WordCount:         r.WordCount,
		TotalMinutes:      r.TotalMinutes,
		VocabularyVersion: r.VocabularyVersion,
		Narrative:         r.Narrative,
	}
}

func titleOf(r domain.NarrativeRecord) string {
	if r.MatterTitle != "" {
		return r.MatterTitle
	}
	return "(untitled)"
}
