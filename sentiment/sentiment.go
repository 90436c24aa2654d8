// Package sentiment scores free text against a fixed polarity lexicon and
// classifies the result into one of three labels. Scoring is deterministic
// and side-effect free: the same text always produces the same score.
package sentiment

import (
	"strings"
	"unicode"

	"github.com/narenkarthik370h/smart-feedback-analysis/schema"
)

// Analyze tokenizes text and sums the lexicon weight of every token.
// Unknown tokens contribute 0, so text without any lexicon word scores 0.
// The result is unbounded in either direction.
func Analyze(text string) int {
	score := 0
	for _, token := range tokenize(text) {
		score += wordScores[token]
	}
	return score
}

// Classify maps a raw score to its label by sign. Total over all integers.
func Classify(score int) schema.Sentiment {
	switch {
	case score > 0:
		return schema.SentimentPositive
	case score < 0:
		return schema.SentimentNegative
	}
	return schema.SentimentNeutral
}

// AnalyzeMessage scores a message and returns both the label and the raw
// score that produced it.
func AnalyzeMessage(text string) (schema.Sentiment, int) {
	score := Analyze(text)
	return Classify(score), score
}

// tokenize lowercases the text and splits it into word tokens. Apostrophes
// inside a word are kept ("don't"), everything else non-alphanumeric is a
// separator.
func tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.Trim(w, "'")
		if w != "" {
			tokens = append(tokens, w)
		}
	}
	return tokens
}
