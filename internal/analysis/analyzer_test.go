package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSpelling_SingleIssue(t *testing.T) {
	issues := CheckSpelling("Teh cat sat.")
	require.Len(t, issues, 1)
	assert.Equal(t, "teh", issues[0].Word)
	assert.Equal(t, 0, issues[0].Position)
	assert.Equal(t, []string{"the"}, issues[0].Suggestions)
}

func TestCheckSpelling_Deduplicated(t *testing.T) {
	issues := CheckSpelling("teh dog, teh cat, and teh bird")
	require.Len(t, issues, 1)
	assert.Equal(t, "teh", issues[0].Word)
	assert.Equal(t, 0, issues[0].Position)
}

func TestCheckSpelling_FirstOccurrencePosition(t *testing.T) {
	text := "We will recieve the parcel."
	issues := CheckSpelling(text)
	require.Len(t, issues, 1)
	assert.Equal(t, strings.Index(text, "recieve"), issues[0].Position)
}

func TestCheckSpelling_CaseInsensitive(t *testing.T) {
	issues := CheckSpelling("RECIEVE the goods")
	require.Len(t, issues, 1)
	assert.Equal(t, "recieve", issues[0].Word)
}

func TestCheckSpelling_CleanText(t *testing.T) {
	assert.Empty(t, CheckSpelling("The quick brown fox jumps over the lazy dog."))
	assert.Empty(t, CheckSpelling(""))
}

func TestCheckTone_SingleIssue(t *testing.T) {
	issues := CheckTone("I wanna send this.")
	require.Len(t, issues, 1)
	assert.Equal(t, "wanna", issues[0].Word)
	assert.Contains(t, issues[0].Suggestions, "want to")
}

func TestCheckTone_Deduplicated(t *testing.T) {
	issues := CheckTone("wanna this and wanna that, gonna do both")
	require.Len(t, issues, 2)
	assert.Equal(t, "wanna", issues[0].Word)
	assert.Equal(t, "gonna", issues[1].Word)
}

func TestCheckTone_FormalText(t *testing.T) {
	assert.Empty(t, CheckTone("I am writing to confirm our appointment."))
}

func TestAnalyze_CombinesPasses(t *testing.T) {
	result := Analyze("Teh report is awesome.")
	require.Len(t, result.Spelling, 1)
	require.Len(t, result.Tone, 1)
	assert.Equal(t, "teh", result.Spelling[0].Word)
	assert.Equal(t, "awesome", result.Tone[0].Word)
	assert.Equal(t, 2, result.IssueCount())
	assert.Greater(t, result.Readability.Score, 0.0)
}

func TestAnalyze_EmptyText(t *testing.T) {
	result := Analyze("")
	assert.Empty(t, result.Spelling)
	assert.Empty(t, result.Tone)
	assert.Equal(t, 0.0, result.Readability.Score)
}
