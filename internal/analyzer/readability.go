package analyzer

import "math"

// Readability is a Flesch Reading Ease style score and its category.
type Readability struct {
	Score int
	Label string
}

// LabelNotAvailable is reported for text without words or sentences.
const LabelNotAvailable = "N/A"

var readabilityBands = []struct {
	min   int
	label string
}{
	{90, "Very Easy"},
	{80, "Easy"},
	{70, "Fairly Easy"},
	{60, "Standard"},
	{50, "Fairly Difficult"},
	{30, "Difficult"},
}

// Score computes the readability of text. The score is never negative but
// may exceed 100 for very simple text.
func Score(text string, wordCount, sentenceCount int) Readability {
	if wordCount == 0 || sentenceCount == 0 {
		return Readability{Score: 0, Label: LabelNotAvailable}
	}
	wordsPerSentence := float64(wordCount) / float64(sentenceCount)
	syllablesPerWord := float64(EstimateSyllables(text)) / float64(wordCount)
	score := roundHalfUp(206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord)
	if score < 0 {
		score = 0
	}
	return Readability{Score: score, Label: Label(score)}
}

// Label maps a readability score to its category.
func Label(score int) string {
	for _, band := range readabilityBands {
		if score >= band.min {
			return band.label
		}
	}
	return "Very Difficult"
}

// roundHalfUp rounds x to the nearest integer, halves toward +Inf.
// math.Round rounds halves away from zero, which differs for negatives.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
