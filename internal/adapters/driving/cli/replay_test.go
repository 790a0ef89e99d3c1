package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

func TestReplayCmd_RequiresRecordID(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "replay")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestReplayCmd_HasNoSeedFlag(t *testing.T) {
	assert.Nil(t, replayCmd.Flags().Lookup("seed"))
	assert.NotNil(t, replayCmd.Flags().Lookup("input"))
	assert.NotNil(t, replayCmd.Flags().Lookup("no-outcomes"))
}

func TestReplayCmd_Identical(t *testing.T) {
	records, _ := setupTestServices(t)
	path := writeRequest(t, "request.yaml", smithRequestYAML)
	_, err := execute(t, "", "generate", "-i", path, "--seed", "99", "--compliant")
	require.NoError(t, err)
	list, err := records.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 1)

	out, err := execute(t, "", "replay", list[0].ID, "-i", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Seed:       99")
	assert.Contains(t, out, "Result:     identical")
	assert.Equal(t, 1, records.Len(), "replay does not record again")
}

func TestReplayCmd_RecordedOptionsWin(t *testing.T) {
	records, settings := setupTestServices(t)
	path := writeRequest(t, "request.yaml", smithRequestYAML)
	_, err := execute(t, "", "generate", "-i", path, "--seed", "5", "--no-breakdown")
	require.NoError(t, err)
	list, err := records.List(context.Background(), 1)
	require.NoError(t, err)

	// Saved defaults and flags differ from the recorded run.
	defaults := domain.DefaultNarrativeOptions()
	defaults.IncludeOutcomes = false
	require.NoError(t, settings.Save(defaults))

	out, err := execute(t, "", "replay", list[0].ID, "-i", path, "--by-date")

	require.NoError(t, err)
	assert.Contains(t, out, "Result:     identical")
}

func TestReplayCmd_ChangedRequestDiffers(t *testing.T) {
	records, _ := setupTestServices(t)
	path := writeRequest(t, "request.yaml", smithRequestYAML)
	_, err := execute(t, "", "generate", "-i", path, "--seed", "5")
	require.NoError(t, err)
	list, err := records.List(context.Background(), 1)
	require.NoError(t, err)

	changed := writeRequest(t, "changed.yaml", strings.Replace(smithRequestYAML, "duration_minutes: 90", "duration_minutes: 120", 1))
	out, err := execute(t, "", "replay", list[0].ID, "-i", changed)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "differs from the record")
	assert.Contains(t, out, "Result:     differs")
}

func TestReplayCmd_UnknownRecord(t *testing.T) {
	setupTestServices(t)
	path := writeRequest(t, "request.yaml", smithRequestYAML)

	_, err := execute(t, "", "replay", "missing", "-i", path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
