package rewriters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
)

func testVocabulary() *domain.Vocabulary {
	return &domain.Vocabulary{
		SectionConnectives: []string{"Additionally,", "Furthermore,"},
		DetailedSubstitutions: []domain.Substitution{
			{From: "reviewed", To: "conducted a comprehensive review of"},
		},
		FormalSubstitutions: []domain.Substitution{
			{From: "got", To: "obtained"},
			{From: "phoned", To: "telephoned"},
		},
	}
}

func TestRegistry_RegisterAndBuild(t *testing.T) {
	r := NewRegistry()
	r.Register("mock", func(_ *domain.Vocabulary, cfg map[string]any) (driven.Rewriter, error) {
		return &mockRewriter{name: "mock", suffix: cfg["suffix"].(string)}, nil
	})

	assert.True(t, r.Has("mock"))
	assert.False(t, r.Has("other"))

	rw, err := r.Build("mock", testVocabulary(), map[string]any{"suffix": "!"})
	require.NoError(t, err)
	assert.Equal(t, "hi!", rw.Rewrite("hi"))
}

func TestRegistry_BuildUnknown(t *testing.T) {
	_, err := NewRegistry().Build("missing", testVocabulary(), nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestRegistry_Names(t *testing.T) {
	assert.Equal(t, []string{NameConcise, NameDetailed, NameFormal}, DefaultRegistry().Names())
}

func TestRegistry_BuildAll(t *testing.T) {
	rws, err := DefaultRegistry().BuildAll([]string{NameDetailed, NameConcise}, testVocabulary(), nil)
	require.NoError(t, err)
	require.Len(t, rws, 2)
	assert.Equal(t, NameDetailed, rws[0].Name())
	assert.Equal(t, NameConcise, rws[1].Name())

	_, err = DefaultRegistry().BuildAll([]string{NameConcise, "shouty"}, testVocabulary(), nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestRegistry_BuildAll_Chains(t *testing.T) {
	var asked []string
	config := func(name string) map[string]any {
		asked = append(asked, name)
		if name == NameFormal {
			return map[string]any{"substitutions": []any{map[string]any{"from": "phoned", "to": "telephoned"}}}
		}
		return nil
	}

	rws, err := DefaultRegistry().BuildAll([]string{"formal + concise", NameDetailed}, testVocabulary(), config)
	require.NoError(t, err)
	require.Len(t, rws, 2)

	assert.IsType(t, &Pipeline{}, rws[0])
	assert.Equal(t, "formal+concise", rws[0].Name())
	assert.Equal(t, "Obtained instructions. Telephoned counsel.", rws[0].Rewrite("Got instructions. Additionally, phoned counsel."))
	assert.Equal(t, NameDetailed, rws[1].Name())
	assert.Equal(t, []string{NameFormal, NameConcise, NameDetailed}, asked)

	_, err = DefaultRegistry().BuildAll([]string{"formal+"}, testVocabulary(), nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestDefaultVariants(t *testing.T) {
	rws, err := DefaultVariants(testVocabulary())
	require.NoError(t, err)
	require.Len(t, rws, 2)

	text := "Reviewed the record. Additionally, got instructions."
	assert.Equal(t, "Reviewed the record. Got instructions.", rws[0].Rewrite(text))
	assert.Equal(t, "Conducted a comprehensive review of the record. Additionally, got instructions.", rws[1].Rewrite(text))
}

func TestBuildConcise_ConfigConnectives(t *testing.T) {
	rw, err := DefaultRegistry().Build(NameConcise, testVocabulary(), map[string]any{
		"connectives": []any{"Then,"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Drafted. Filed. Additionally, served.", rw.Rewrite("Drafted. Then, filed. Additionally, served."))
}

func TestBuildDetailed_ConfigSubstitutions(t *testing.T) {
	rw, err := DefaultRegistry().Build(NameDetailed, testVocabulary(), map[string]any{
		"substitutions": map[string]any{"filed": "duly filed", "ignored": 42},
	})
	require.NoError(t, err)
	assert.Equal(t, "Duly filed and conducted a comprehensive review of the notice.", rw.Rewrite("Filed and reviewed the notice."))
}

func TestBuildFormal_ConfigSubstitutionTables(t *testing.T) {
	rw, err := DefaultRegistry().Build(NameFormal, testVocabulary(), map[string]any{
		"substitutions": []any{
			map[string]any{"from": "sorted out", "to": "resolved"},
			map[string]any{"to": "no source"},
			"not a table",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Resolved the dispute and obtained consent.", rw.Rewrite("Sorted out the dispute and got consent."))
}
