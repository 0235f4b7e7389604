package analyzer

import "regexp"

var (
	wordPattern      = regexp.MustCompile(`\w+`)
	sentencePattern  = regexp.MustCompile(`[.!?]+`)
	paragraphPattern = regexp.MustCompile(`\n` + SpaceClass + `*\n`)
)

// Tokens is the tokenizer output for one text.
type Tokens struct {
	// Words are maximal runs of ASCII letters, digits and underscores.
	Words []string
	// Sentences are the sentence terminator runs, one per sentence.
	Sentences []string
	// Paragraphs are the non-blank blocks between blank lines.
	Paragraphs []string
}

// ParagraphCount returns the number of paragraphs.
func (t Tokens) ParagraphCount() int {
	return len(t.Paragraphs)
}

// Tokenize splits text into words, sentence terminators and paragraphs.
//
// Sentences are counted by terminator runs, so "Wait... what?!" holds two
// sentences and a text without terminators holds none.
func Tokenize(text string) Tokens {
	if trimSpace(text) == "" {
		return Tokens{}
	}
	return Tokens{
		Words:      wordPattern.FindAllString(text, -1),
		Sentences:  sentencePattern.FindAllString(text, -1),
		Paragraphs: splitParagraphs(text),
	}
}

func splitParagraphs(text string) []string {
	parts := paragraphPattern.Split(text, -1)
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimSpace(p) == "" {
			continue
		}
		paragraphs = append(paragraphs, p)
	}
	// Any text with content has at least one paragraph.
	if len(paragraphs) == 0 {
		paragraphs = append(paragraphs, text)
	}
	return paragraphs
}
