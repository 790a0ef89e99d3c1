package engine

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/vocabulary"
)

type upperRewriter struct{}

func (upperRewriter) Name() string               { return "upper" }
func (upperRewriter) Rewrite(text string) string { return strings.ToUpper(text) }

func TestNew_InvalidVocabulary(t *testing.T) {
	vocab := vocabulary.MustDefault()
	vocab.Version = ""

	_, err := New(vocab, vocabulary.DefaultTemplates())
	assert.ErrorIs(t, err, domain.ErrInvalidVocabulary)

	_, err = New(nil, vocabulary.DefaultTemplates())
	assert.ErrorIs(t, err, domain.ErrInvalidVocabulary)
}

func TestEngine_Generate_SmithScenario(t *testing.T) {
	e := newTestEngine(t)

	got, err := e.Generate(smithEntries(), smithMatter(), domain.DefaultNarrativeOptions(), NewSeededSelector(42))
	require.NoError(t, err)

	assert.Contains(t, got.Narrative, "1 hour and 30 minutes")
	assert.Contains(t, got.Narrative, "over 1 hour")
	assert.Contains(t, got.Narrative, "Smith")
	assert.GreaterOrEqual(t, got.Confidence, 0.8)
	assert.True(t, strings.HasSuffix(got.Narrative, "."))
	assert.Equal(t, len(strings.Fields(got.Narrative)), got.WordCount)
	assert.Equal(t, vocabulary.MustDefault().Version, got.VocabularyVersion)
	assert.Nil(t, got.Compliance)
	assert.Empty(t, got.NarrativeType)
}

func TestEngine_Generate_SameSeedSameText(t *testing.T) {
	e := newTestEngine(t)
	opts := domain.DefaultNarrativeOptions()

	for seed := uint64(1); seed <= 20; seed++ {
		a, err := e.Generate(smithEntries(), smithMatter(), opts, NewSeededSelector(seed))
		require.NoError(t, err)
		b, err := e.Generate(smithEntries(), smithMatter(), opts, NewSeededSelector(seed))
		require.NoError(t, err)

		assert.Equal(t, a.Narrative, b.Narrative, "seed %d", seed)
		assert.Equal(t, a.AlternativeVersions, b.AlternativeVersions, "seed %d", seed)
	}
}

func TestEngine_Generate_Properties(t *testing.T) {
	e := newTestEngine(t)
	entries := []domain.TimeEntry{
		{Date: day(2), DurationMinutes: 30, Description: "Email"},
		{Date: day(2), DurationMinutes: 45, Description: "2h research on prescription"},
		{Date: day(3), DurationMinutes: 120, Description: "Appeared in court"},
		{Date: day(4), DurationMinutes: 15, Description: "Perused bundle"},
		{Date: day(4), DurationMinutes: 20, Description: "Consultation with client"},
		{Date: day(5), DurationMinutes: 60, Description: "Drafted affidavit"},
	}

	variants := []domain.NarrativeOptions{
		domain.DefaultNarrativeOptions(),
		{},
		{GroupByWorkType: true, IncludeWorkTypeDetails: true},
		{IncludeTimeBreakdown: true, FormalTone: true},
	}

	for i, opts := range variants {
		for seed := uint64(0); seed < 10; seed++ {
			got, err := e.Generate(entries, &domain.Matter{}, opts, NewSeededSelector(seed))
			require.NoError(t, err)

			assert.NotEmpty(t, got.Narrative, "options %d", i)
			assert.True(t, strings.HasSuffix(got.Narrative, "."), got.Narrative)
			assert.Equal(t, len(strings.Fields(got.Narrative)), got.WordCount)
			assert.GreaterOrEqual(t, got.Confidence, MinConfidence)
			assert.LessOrEqual(t, got.Confidence, MaxConfidence)
			assert.NotContains(t, got.AlternativeVersions, got.Narrative)
		}
	}
}

func TestEngine_Generate_ByDate(t *testing.T) {
	e := newTestEngine(t)
	opts := domain.DefaultNarrativeOptions()
	opts.GroupByWorkType = false
	opts.IncludeOutcomes = false

	got, err := e.Generate(smithEntries(), smithMatter(), opts, NewCursorSelector(0, 0))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got.Narrative, "On 2 January 2026, researched"), got.Narrative)
	assert.Contains(t, got.Narrative, "on 3 January 2026, ")
}

func TestEngine_Generate_InvalidInput(t *testing.T) {
	e := newTestEngine(t)
	sel := NewSeededSelector(1)
	opts := domain.DefaultNarrativeOptions()

	tests := []struct {
		name    string
		entries []domain.TimeEntry
		matter  *domain.Matter
		field   string
	}{
		{"no entries", nil, smithMatter(), "entries"},
		{"nil matter", smithEntries(), nil, "matter"},
		{"zero duration", []domain.TimeEntry{{Description: "Drafted", DurationMinutes: 0}}, smithMatter(), "entries[0].duration_minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Generate(tt.entries, tt.matter, opts, sel)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			var inputErr *domain.InvalidInputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.field, inputErr.Field)

			_, err = e.GenerateCompliant(tt.entries, tt.matter, opts, sel)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestEngine_GenerateCompliant(t *testing.T) {
	e := newTestEngine(t)
	entries := []domain.TimeEntry{
		{Date: day(2), DurationMinutes: 120, Description: "Attended court hearing"},
		{Date: day(2), DurationMinutes: 60, Description: "Appeared in motion court"},
	}

	got, err := e.GenerateCompliant(entries, smithMatter(), domain.DefaultNarrativeOptions(), NewSeededSelector(7))
	require.NoError(t, err)

	assert.Equal(t, domain.NarrativeLitigation, got.NarrativeType)
	require.NotNil(t, got.Compliance)
	assert.True(t, got.Compliance.IsCompliant, got.Compliance.Issues)
	assert.Equal(t, 100, got.Compliance.ComplianceScore)
	assert.Contains(t, got.Narrative, "Smith")
	assert.Contains(t, got.Narrative, "3 hours")
}

func TestEngine_GenerateCompliant_NonASCIITitle(t *testing.T) {
	e := newTestEngine(t)
	matter := &domain.Matter{Title: "ȺȺȺȺ v Bøe", ClientName: "Ⱥ Holdings"}

	var got *domain.GeneratedNarrative
	require.NotPanics(t, func() {
		var err error
		got, err = e.GenerateCompliant(smithEntries(), matter, domain.DefaultNarrativeOptions(), NewSeededSelector(7))
		require.NoError(t, err)
	})
	assert.True(t, utf8.ValidString(got.Narrative))
}

func TestEngine_GenerateCompliant_TypeOverride(t *testing.T) {
	e := newTestEngine(t)
	opts := domain.DefaultNarrativeOptions()
	opts.NarrativeType = domain.NarrativeAdvisory

	got, err := e.GenerateCompliant(smithEntries(), smithMatter(), opts, NewSeededSelector(7))
	require.NoError(t, err)
	assert.Equal(t, domain.NarrativeAdvisory, got.NarrativeType)
	assert.True(t, strings.HasPrefix(got.Narrative, "Professional advisory services"), got.Narrative)

	opts.NarrativeType = "criminal"
	_, err = e.GenerateCompliant(smithEntries(), smithMatter(), opts, NewSeededSelector(7))
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestEngine_Detect(t *testing.T) {
	e := newTestEngine(t)
	entries := []domain.TimeEntry{
		{DurationMinutes: 60, Description: "court hearing"},
		{DurationMinutes: 60, Description: "appeared in"},
	}
	assert.Equal(t, domain.NarrativeLitigation, e.Detect(entries, &domain.Matter{}))
}

func TestEngine_Suggestions(t *testing.T) {
	e := newTestEngine(t)

	got := e.Suggestions("Drafted.", []domain.TimeEntry{{Description: "Draft"}})
	assert.Equal(t, []string{SuggestMoreDetail, SuggestOutcomes, SuggestDescriptions}, got)

	entries := []domain.TimeEntry{
		{Description: "Researched precedent on liability"},
		{Description: "Drafted the founding affidavit"},
		{Description: "Consultation with client on strategy"},
		{Description: "Perused the discovery bundle"},
	}
	got = e.Suggestions("Professional services resulting in clear instructions and a considered work product.", entries)
	assert.Equal(t, []string{SuggestGrouping}, got)
}

func TestEngine_WithVariants(t *testing.T) {
	vocab := vocabulary.MustDefault()
	e, err := New(vocab, vocabulary.DefaultTemplates(), WithVariants(upperRewriter{}, upperRewriter{}))
	require.NoError(t, err)

	got, err := e.Generate(smithEntries(), smithMatter(), domain.DefaultNarrativeOptions(), NewSeededSelector(3))
	require.NoError(t, err)
	require.Len(t, got.AlternativeVersions, 1)
	assert.Equal(t, strings.ToUpper(got.Narrative), got.AlternativeVersions[0])
}

func TestEngine_ConcurrentGenerate(t *testing.T) {
	e := newTestEngine(t)
	want, err := e.Generate(smithEntries(), smithMatter(), domain.DefaultNarrativeOptions(), NewSeededSelector(9))
	require.NoError(t, err)

	results := make(chan string, 8)
	for i := 0; i < 8; i++ {
		go func() {
			got, err := e.Generate(smithEntries(), smithMatter(), domain.DefaultNarrativeOptions(), NewSeededSelector(9))
			if err != nil {
				results <- err.Error()
				return
			}
			results <- got.Narrative
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want.Narrative, <-results)
	}
}
