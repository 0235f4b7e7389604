package analyzer

import (
	"math"
	"strconv"
)

// Average words per minute for silent reading and for speech.
const (
	ReadingWPM  = 200.0
	SpeakingWPM = 150.0
)

// CountChars returns the length of text in UTF-16 code units, the unit a
// browser text field reports.
func CountChars(text string) int {
	n := 0
	for _, r := range text {
		n += utf16Len(r)
	}
	return n
}

// CountCharsNoSpaces is CountChars with every whitespace character removed.
func CountCharsNoSpaces(text string) int {
	n := 0
	for _, r := range text {
		if IsSpace(r) {
			continue
		}
		n += utf16Len(r)
	}
	return n
}

func utf16Len(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}

// ReadingTime formats the time needed to read wordCount words.
func ReadingTime(wordCount int) string {
	return FormatDuration(float64(wordCount) / ReadingWPM)
}

// SpeakingTime formats the time needed to say wordCount words aloud.
func SpeakingTime(wordCount int) string {
	return FormatDuration(float64(wordCount) / SpeakingWPM)
}

// FormatDuration renders a duration given in minutes as "<n>s", "<n>m" or
// "<h>h <m>m". Partial units always round up so non-empty text never shows
// as zero minutes.
func FormatDuration(minutes float64) string {
	switch {
	case minutes < 1:
		return strconv.Itoa(int(math.Ceil(minutes*60))) + "s"
	case minutes < 60:
		return strconv.Itoa(int(math.Ceil(minutes))) + "m"
	default:
		hours := int(math.Floor(minutes / 60))
		rest := int(math.Ceil(math.Mod(minutes, 60)))
		return strconv.Itoa(hours) + "h " + strconv.Itoa(rest) + "m"
	}
}
