package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/adapters/driving/tui/components/status"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/adapters/driving/tui/messages"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

func testRequest(seed uint64) domain.NarrativeRequest {
	opts := domain.DefaultNarrativeOptions()
	opts.Seed = seed
	return domain.NarrativeRequest{
		Entries: []domain.TimeEntry{{Description: "Drafted heads of argument", DurationMinutes: 90}},
		Matter:  &domain.Matter{Title: "Smith v Jones", ClientName: "Smith Holdings"},
		Options: opts,
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newReadyApp builds an app, sizes it and feeds it its first narrative.
func newReadyApp(t *testing.T, svc *mockNarrativeService, seed uint64, compliant bool) *App {
	t.Helper()
	app, err := NewApp(&Ports{Narrative: svc}, testRequest(seed), compliant)
	require.NoError(t, err)
	app.SetDimensions(100, 40)

	msg := app.generate(seed)()
	app.Update(msg)
	require.NotNil(t, app.Result())
	return app
}

// press sends a key and runs any command it returns back through Update.
func press(app *App, msg tea.KeyMsg) tea.Cmd {
	_, cmd := app.Update(msg)
	if cmd == nil {
		return nil
	}
	if out, ok := cmd().(messages.NarrativeGenerated); ok {
		app.Update(out)
		return nil
	}
	return cmd
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(&Ports{Narrative: &mockNarrativeService{}}, testRequest(1), false)

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.False(t, app.Compliant())
	assert.Equal(t, uint64(1), app.Seed())
	assert.Nil(t, app.Result())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{}, testRequest(1), false)

	assert.ErrorIs(t, err, ErrMissingNarrativeService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(&Ports{Narrative: &mockNarrativeService{}}, testRequest(1), false)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Same(t, app, app.WithContext(ctx))
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init_StartsGenerating(t *testing.T) {
	app, _ := NewApp(&Ports{Narrative: &mockNarrativeService{}}, testRequest(1), false)

	cmd := app.Init()

	assert.NotNil(t, cmd)
	assert.Equal(t, status.StateGenerating, app.statusBar.State())
}

func TestApp_ViewBeforeReady(t *testing.T) {
	app, _ := NewApp(&Ports{Narrative: &mockNarrativeService{}}, testRequest(1), false)

	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_WindowSize(t *testing.T) {
	app, _ := NewApp(&Ports{Narrative: &mockNarrativeService{}}, testRequest(1), false)

	app.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	assert.True(t, app.Ready())
	assert.Equal(t, 120, app.statusBar.Width())
}

func TestApp_ShowsNarrative(t *testing.T) {
	app := newReadyApp(t, &mockNarrativeService{}, 42, false)

	view := app.View()

	assert.Contains(t, view, "Smith v Jones")
	assert.Contains(t, view, "Narrative for seed 42.")
	assert.Contains(t, view, "Add the outcome achieved")
	assert.Contains(t, view, "seed 42")
	assert.NotContains(t, view, "Compliance")
}

func TestApp_CompliantShowsScore(t *testing.T) {
	app := newReadyApp(t, &mockNarrativeService{}, 42, true)

	view := app.View()

	assert.Contains(t, view, "Compliance 80/100")
	assert.Contains(t, view, "Narrative is short")
	assert.Contains(t, view, "Describe the work in more detail")
	assert.Contains(t, view, "litigation")
}

func TestApp_CycleVariants(t *testing.T) {
	app := newReadyApp(t, &mockNarrativeService{}, 3, false)
	require.Len(t, app.Variants(), 3)

	press(app, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, app.Variant())
	assert.Contains(t, app.View(), "First alternative.")
	assert.Contains(t, app.View(), "alternative 1/2")

	press(app, tea.KeyMsg{Type: tea.KeyTab})
	press(app, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, app.Variant())

	press(app, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, app.Variant())
}

func TestApp_RegenerateAdvancesSeed(t *testing.T) {
	svc := &mockNarrativeService{}
	app := newReadyApp(t, svc, 10, false)
	press(app, tea.KeyMsg{Type: tea.KeyTab})

	press(app, runes("r"))

	assert.Equal(t, uint64(11), app.Seed())
	assert.Equal(t, 0, app.Variant())
	assert.Equal(t, uint64(11), svc.requests[len(svc.requests)-1].Options.Seed)
}

func TestApp_RegenerateFromRandomSeed(t *testing.T) {
	svc := &mockNarrativeService{}
	app := newReadyApp(t, svc, 0, false)
	// The mock draws seed 7 when asked for a fresh one.
	require.Equal(t, uint64(7), app.Seed())

	press(app, runes("r"))

	assert.Equal(t, uint64(8), app.Seed())
}

func TestApp_ToggleCompliantKeepsSeed(t *testing.T) {
	svc := &mockNarrativeService{}
	app := newReadyApp(t, svc, 5, false)

	press(app, runes("c"))

	assert.True(t, app.Compliant())
	assert.Equal(t, uint64(5), app.Seed())
	assert.Equal(t, []bool{false, true}, svc.compliant)
	require.NotNil(t, app.Result().Compliance)

	press(app, runes("c"))
	assert.False(t, app.Compliant())
}

func TestApp_KeysIgnoredWhileGenerating(t *testing.T) {
	svc := &mockNarrativeService{}
	app := newReadyApp(t, svc, 5, false)

	_, cmd := app.Update(runes("r"))
	require.NotNil(t, cmd)

	_, again := app.Update(runes("r"))
	assert.Nil(t, again)
	_, tab := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, tab)
	assert.Equal(t, 0, app.Variant())
}

func TestApp_GenerationError(t *testing.T) {
	svc := &mockNarrativeService{err: domain.NewInvalidInputError("entries", "at least one entry is required")}
	app, err := NewApp(&Ports{Narrative: svc}, testRequest(1), false)
	require.NoError(t, err)
	app.SetDimensions(100, 40)

	app.Update(app.generate(1)())

	require.Error(t, app.Err())
	assert.True(t, errors.Is(app.Err(), domain.ErrInvalidInput))
	assert.Equal(t, status.StateError, app.statusBar.State())
	assert.Contains(t, app.View(), "at least one entry is required")
}

func TestApp_HelpToggle(t *testing.T) {
	app := newReadyApp(t, &mockNarrativeService{}, 1, false)

	press(app, runes("?"))
	assert.True(t, app.ShowingHelp())
	assert.Contains(t, app.View(), "toggle compliant")
	assert.Equal(t, status.StateHelp, app.statusBar.State())

	press(app, runes("?"))
	assert.False(t, app.ShowingHelp())
	assert.Contains(t, app.View(), "Narrative for seed 1.")
}

func TestApp_Quit(t *testing.T) {
	app := newReadyApp(t, &mockNarrativeService{}, 1, false)

	_, cmd := app.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
