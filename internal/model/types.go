// Package model defines shared data structures.
package model

import "time"

// Keyword is a ranked keyword with its occurrence count.
type Keyword struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// AnalysisResult holds every metric derived from one input text.
type AnalysisResult struct {
	WordCount         int       `json:"wordCount" yaml:"wordCount"`
	CharCount         int       `json:"charCount" yaml:"charCount"`
	CharCountNoSpaces int       `json:"charCountNoSpaces" yaml:"charCountNoSpaces"`
	SentenceCount     int       `json:"sentenceCount" yaml:"sentenceCount"`
	ParagraphCount    int       `json:"paragraphCount" yaml:"paragraphCount"`
	ReadingTime       string    `json:"readingTime" yaml:"readingTime"`
	SpeakingTime      string    `json:"speakingTime" yaml:"speakingTime"`
	ReadabilityScore  int       `json:"readabilityScore" yaml:"readabilityScore"`
	ReadabilityLabel  string    `json:"readabilityLabel" yaml:"readabilityLabel"`
	Keywords          []Keyword `json:"keywords" yaml:"keywords"`
}

// Theme is the persisted editor colour scheme.
type Theme string

// Supported themes.
const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Draft is the persisted editor text.
type Draft struct {
	Text      string
	UpdatedAt time.Time
}

// Snapshot records the headline metrics of an explicitly saved draft.
type Snapshot struct {
	ID               int64
	SavedAt          time.Time
	WordCount        int
	CharCount        int
	SentenceCount    int
	ReadabilityScore int
}

// GoalProgress describes how far a text is from a word-count goal.
type GoalProgress struct {
	Words   int
	Goal    int
	Percent float64
	Level   GoalLevel
}

// GoalLevel buckets goal progress for display.
type GoalLevel int

// Goal levels.
const (
	GoalStarted GoalLevel = iota
	GoalNear
	GoalDone
)

// EditorConfig defines editor settings after config and flags are merged.
type EditorConfig struct {
	Goal            int
	AutosaveSeconds int
	Theme           Theme
	ExportWidth     int
	ExportPath      string
}

// HistoryConfig defines filters for the snapshot history output.
type HistoryConfig struct {
	Last   int
	Window int
}
