package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/adapters/driven/storage/memory"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/engine"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/services"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/vocabulary"
)

const smithRequestYAML = `matter:
  title: Smith v Jones
  client_name: Smith Holdings
entries:
  - id: e1
    date: 2024-03-01
    duration_minutes: 90
    description: Researched case law on breach of contract
  - id: e2
    date: 2024-03-02
    duration_minutes: 60
    description: Drafted heads of argument
`

const smithRequestJSON = `{
  "matter": {"title": "Smith v Jones", "client_name": "Smith Holdings"},
  "entries": [
    {"id": "e1", "date": "2024-03-01", "duration_minutes": 90, "description": "Researched case law on breach of contract"},
    {"id": "e2", "date": "2024-03-02T09:00:00Z", "duration_minutes": 60, "description": "Drafted heads of argument"}
  ]
}`

// setupTestServices installs a real engine and service backed by memory
// stores, restoring the previous services when the test ends.
func setupTestServices(t *testing.T) (*memory.RecordStore, *services.SettingsService) {
	t.Helper()

	eng, err := engine.New(vocabulary.MustDefault(), vocabulary.DefaultTemplates())
	require.NoError(t, err)

	records := memory.NewRecordStore()
	settings := services.NewSettingsService(memory.NewConfigStore())
	svc := services.NewNarrativeService(eng, services.WithRecordStore(records))

	old := current
	SetServices(&Services{Narrative: svc, Settings: settings})
	t.Cleanup(func() { SetServices(old) })
	return records, settings
}

// writeRequest writes content to a file in a temp dir and returns its path.
func writeRequest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// execute runs the root command with args and stdin, returning combined output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { resetFlags(rootCmd) })

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	var in io.Reader = strings.NewReader(stdin)
	rootCmd.SetIn(in)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

const (
	timeout = 2 * time.Second
	tick    = 10 * time.Millisecond
)
