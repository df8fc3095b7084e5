package analysis

import (
	"strings"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
)

// Flesch Reading Ease coefficients.
const (
	fleschBase          = 206.835
	fleschSentenceCoeff = 1.015
	fleschSyllableCoeff = 84.6
)

// CalculateReadability computes a Flesch Reading Ease estimate for
// text. Empty or whitespace-only input yields score 0 with a "no text"
// label; otherwise the score is clamped to [0,100] and mapped to a
// grade level and difficulty description via fixed breakpoints.
func CalculateReadability(text string) domain.Readability {
	if strings.TrimSpace(text) == "" {
		return domain.Readability{
			Score:       0,
			GradeLabel:  "N/A",
			Description: "No text to analyse",
		}
	}

	sentences := countSentences(text)
	words := wordPattern.FindAllString(text, -1)
	wordCount := len(words)
	if wordCount == 0 {
		wordCount = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	score := fleschBase -
		fleschSentenceCoeff*(float64(wordCount)/float64(sentences)) -
		fleschSyllableCoeff*(float64(syllables)/float64(wordCount))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	grade, desc := gradeForScore(score)
	return domain.Readability{
		Score:       score,
		GradeLabel:  grade,
		Description: desc,
		Words:       wordCount,
		Sentences:   sentences,
	}
}

// countSentences splits on sentence terminators, discarding empty
// fragments. Returns at least 1 to avoid division by zero.
func countSentences(text string) int {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	count := 0
	for _, f := range fragments {
		if strings.TrimSpace(f) != "" {
			count++
		}
	}
	if count == 0 {
		count = 1
	}
	return count
}

// countSyllables estimates syllables in one word: strip a trailing
// silent e/ed/es, then count vowel-group clusters. Every word counts
// as at least one syllable.
func countSyllables(word string) int {
	w := strings.ToLower(word)

	switch {
	case strings.HasSuffix(w, "ed"), strings.HasSuffix(w, "es"):
		w = w[:len(w)-2]
	case strings.HasSuffix(w, "e"):
		w = w[:len(w)-1]
	}

	count := 0
	inGroup := false
	for _, r := range w {
		if isVowel(r) {
			if !inGroup {
				count++
				inGroup = true
			}
		} else {
			inGroup = false
		}
	}
	if count == 0 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	default:
		return false
	}
}

// gradeForScore maps a clamped Flesch score to the fixed grade and
// difficulty breakpoints.
func gradeForScore(score float64) (grade, description string) {
	switch {
	case score >= 90:
		return "5th grade", "Very easy to read"
	case score >= 80:
		return "6th grade", "Easy to read"
	case score >= 70:
		return "7th grade", "Fairly easy to read"
	case score >= 60:
		return "8th-9th grade", "Plain English"
	case score >= 50:
		return "10th-12th grade", "Fairly difficult to read"
	case score >= 30:
		return "College", "Difficult to read"
	default:
		return "Graduate", "Very difficult to read"
	}
}
