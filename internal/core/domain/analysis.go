package domain

// SpellingIssue is one misspelled word found in the draft body.
// Each distinct word is reported once at its first occurrence.
type SpellingIssue struct {
	// Word is the misspelled word, lower-cased.
	Word string

	// Position is the byte offset of the word's first occurrence.
	Position int

	// Suggestions lists replacement candidates, best first.
	Suggestions []string
}

// ToneIssue is one informal word or phrase found in the draft body.
type ToneIssue struct {
	// Word is the informal word, lower-cased.
	Word string

	// Suggestions lists formal alternatives.
	Suggestions []string
}

// Readability is a Flesch Reading Ease estimate of the draft body.
type Readability struct {
	// Score is the clamped Flesch Reading Ease value, 0-100.
	Score float64

	// GradeLabel is the approximate school grade level.
	GradeLabel string

	// Description is a human-readable difficulty label.
	Description string

	// Words is the word count used in the estimate.
	Words int

	// Sentences is the sentence count used in the estimate.
	Sentences int
}

// AnalysisResult bundles the three analysis passes over one text
// snapshot. It is derived state and never persisted: every pass
// recomputes from the full current text.
type AnalysisResult struct {
	// Spelling lists misspelled words, first occurrence only.
	Spelling []SpellingIssue

	// Tone lists informal words with formal alternatives.
	Tone []ToneIssue

	// Readability is the Flesch Reading Ease estimate.
	Readability Readability
}

// IssueCount returns the total number of spelling and tone issues.
func (r AnalysisResult) IssueCount() int {
	return len(r.Spelling) + len(r.Tone)
}
