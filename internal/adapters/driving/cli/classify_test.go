package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCmd_Args(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "classify", "Drafted heads of argument", "Perused discovery bundle")

	require.NoError(t, err)
	assert.Contains(t, out, "Drafting")
	assert.Contains(t, out, "Document Review")
	assert.Contains(t, out, "Perused discovery bundle")
}

func TestClassifyCmd_StdinJSON(t *testing.T) {
	setupTestServices(t)
	stdin := "Researched case law on breach of contract\n\nLetter to opposing attorneys\n"

	out, err := execute(t, stdin, "classify", "--json")

	require.NoError(t, err)
	var got []classification
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Research", got[0].Category)
	assert.Equal(t, "Correspondence", got[1].Category)
}
