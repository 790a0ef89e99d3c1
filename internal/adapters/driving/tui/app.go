package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/adapters/driving/tui/components/status"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/adapters/driving/tui/keymap"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/adapters/driving/tui/messages"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/adapters/driving/tui/styles"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

const defaultWidth = 80

// App is the review screen following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports     *Ports
	ctx       context.Context
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusBar *status.Bar

	// request is regenerated with a new seed on every "r".
	request   domain.NarrativeRequest
	compliant bool

	result     *domain.GeneratedNarrative
	variant    int
	generating bool
	showHelp   bool
	err        error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a review screen for the given request. When compliant is
// set the Bar-compliant entry point is used.
func NewApp(ports *Ports, req domain.NarrativeRequest, compliant bool) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	bar := status.NewBar(s, km)
	bar.SetCompliant(compliant)

	return &App{
		ports:     ports,
		ctx:       context.Background(),
		styles:    s,
		keymap:    km,
		statusBar: bar,
		request:   req,
		compliant: compliant,
	}, nil
}

// WithContext sets the context used for generation calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model. It generates the first narrative with the
// request's seed.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("lexonarrative review"),
		a.generate(a.request.Options.Seed),
	)
}

// generate returns a command that runs the service off the update loop.
func (a *App) generate(seed uint64) tea.Cmd {
	a.generating = true
	a.statusBar.SetState(status.StateGenerating)

	req := a.request
	req.Options.Seed = seed
	compliant := a.compliant
	svc := a.ports.Narrative
	ctx := a.ctx

	return func() tea.Msg {
		var (
			out *domain.GeneratedNarrative
			err error
		)
		if compliant {
			out, err = svc.GenerateCompliant(ctx, req)
		} else {
			out, err = svc.Generate(ctx, req)
		}
		return messages.NarrativeGenerated{Narrative: out, Compliant: compliant, Err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg.String())

	case messages.NarrativeGenerated:
		a.generating = false
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.err = nil
		a.result = msg.Narrative
		a.variant = 0
		a.statusBar.Clear()
		a.statusBar.SetSeed(msg.Narrative.Seed)
		a.statusBar.SetVariant(a.variantLabel())
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(k string) (tea.Model, tea.Cmd) {
	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(k, a.keymap.Help):
		a.showHelp = !a.showHelp
		if a.showHelp {
			a.statusBar.SetState(status.StateHelp)
		} else {
			a.statusBar.SetState(status.StateReady)
		}
		return a, nil
	}

	// Everything below needs a finished narrative.
	if a.generating {
		return a, nil
	}

	switch {
	case keymap.Matches(k, a.keymap.NextVariant):
		a.cycleVariant(1)
	case keymap.Matches(k, a.keymap.PrevVariant):
		a.cycleVariant(-1)
	case keymap.Matches(k, a.keymap.Regenerate):
		return a, a.generate(a.nextSeed())
	case keymap.Matches(k, a.keymap.Compliant):
		a.compliant = !a.compliant
		a.statusBar.SetCompliant(a.compliant)
		return a, a.generate(a.Seed())
	}
	return a, nil
}

// nextSeed advances past the current seed. Zero wraps to one because zero
// asks the service for a fresh random seed.
func (a *App) nextSeed() uint64 {
	next := a.Seed() + 1
	if next == 0 {
		next = 1
	}
	return next
}

func (a *App) cycleVariant(step int) {
	n := len(a.Variants())
	if n == 0 {
		return
	}
	a.variant = ((a.variant+step)%n + n) % n
	a.statusBar.SetVariant(a.variantLabel())
}

func (a *App) variantLabel() string {
	if a.variant == 0 {
		return "primary"
	}
	return fmt.Sprintf("alternative %d/%d", a.variant, len(a.Variants())-1)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	wrap := a.width - 4
	if wrap < 20 {
		wrap = 20
	}

	var b strings.Builder
	b.WriteString(a.viewHeader())
	b.WriteString("\n\n")

	switch {
	case a.showHelp:
		b.WriteString(a.viewHelp())
	case a.result == nil && a.err != nil:
		b.WriteString(a.styles.Error.Render(wordwrap.String(a.err.Error(), wrap)))
	case a.result == nil:
		b.WriteString(a.styles.Muted.Render("Generating narrative..."))
	default:
		b.WriteString(a.viewNarrative(wrap))
	}

	b.WriteString("\n\n")
	b.WriteString(a.statusBar.View())
	return b.String()
}

func (a *App) viewHeader() string {
	title := a.styles.Title.Render("Fee narrative")
	if m := a.request.Matter; m != nil {
		title += "  " + a.styles.Subtitle.Render(m.Title)
		if m.ClientName != "" {
			title += a.styles.Muted.Render(" for " + m.ClientName)
		}
	}
	return title
}

func (a *App) viewNarrative(wrap int) string {
	r := a.result
	var b strings.Builder

	meta := []string{
		fmt.Sprintf("%d words", r.WordCount),
		fmt.Sprintf("confidence %.2f", r.Confidence),
	}
	if r.NarrativeType != "" {
		meta = append([]string{string(r.NarrativeType)}, meta...)
	}
	if r.VocabularyVersion != "" {
		meta = append(meta, "vocabulary "+r.VocabularyVersion)
	}
	b.WriteString(a.styles.Muted.Render(strings.Join(meta, " · ")))
	b.WriteString("\n")

	text := a.Variants()[a.variant]
	b.WriteString(a.styles.Panel.Render(a.styles.Normal.Render(wordwrap.String(text, wrap-4))))

	if c := r.Compliance; c != nil {
		b.WriteString("\n\n")
		score := fmt.Sprintf("Compliance %d/100", c.ComplianceScore)
		b.WriteString(a.styles.Score(c.ComplianceScore).Render(score))
		for i, issue := range c.Issues {
			b.WriteString("\n")
			b.WriteString(a.styles.Warning.Render(wordwrap.String("! "+issue, wrap)))
			if i < len(c.Recommendations) {
				b.WriteString("\n")
				b.WriteString(a.styles.Muted.Render(wordwrap.String("  "+c.Recommendations[i], wrap)))
			}
		}
	}

	if len(r.Suggestions) > 0 {
		b.WriteString("\n\n")
		b.WriteString(a.styles.Subtitle.Render("Suggestions"))
		for _, s := range r.Suggestions {
			b.WriteString("\n")
			b.WriteString(a.styles.Normal.Render(wordwrap.String("- "+s, wrap)))
		}
	}
	return b.String()
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Subtitle.Render("Keys"))
	for _, group := range a.keymap.FullHelp() {
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("\n  %-10s %s", h.Key, a.styles.Help.Render(h.Desc)))
		}
	}
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Variants returns the primary narrative followed by its alternatives.
func (a *App) Variants() []string {
	if a.result == nil {
		return nil
	}
	return append([]string{a.result.Narrative}, a.result.AlternativeVersions...)
}

// Variant returns the index of the version on screen; zero is the primary.
func (a *App) Variant() int {
	return a.variant
}

// Result returns the narrative on screen.
func (a *App) Result() *domain.GeneratedNarrative {
	return a.result
}

// Seed returns the seed of the narrative on screen, or the request seed
// before the first result.
func (a *App) Seed() uint64 {
	if a.result != nil {
		return a.result.Seed
	}
	return a.request.Options.Seed
}

// Compliant reports whether Bar-compliant mode is active.
func (a *App) Compliant() bool {
	return a.compliant
}

// ShowingHelp reports whether the help panel is open.
func (a *App) ShowingHelp() bool {
	return a.showHelp
}

// Err returns the last generation error.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its first window size.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	if width <= 0 {
		width = defaultWidth
	}
	a.width = width
	a.height = height
	a.ready = true
	a.statusBar.SetWidth(width)
}
