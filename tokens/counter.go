package tokens

import (
	"unicode"
	"unicode/utf8"
)

// DefaultCharsPerToken is the default character-to-token ratio.
// Approximately 4 characters equals 1 token for English text.
const DefaultCharsPerToken = 4.0

// Counter estimates token counts for text.
// Implementations must be deterministic and free of side effects.
type Counter interface {
	// Count estimates the number of tokens in the given text.
	Count(text string) int
}

// Tokenizer is a Counter that can also cut text into token-bounded pieces.
type Tokenizer interface {
	Counter

	// Split cuts text into ordered pieces that concatenate back to text.
	// Every piece counts strictly fewer than size tokens, except a piece
	// made of a single indivisible unit, which is emitted even if it does
	// not fit. Empty text yields no pieces.
	Split(text string, size int) ([]string, error)
}

// EstimatingCounter uses a character-to-token ratio for estimation.
// Default ratio is ~4 chars per token.
type EstimatingCounter struct {
	// CharsPerToken is the average characters per token.
	// Default is 4, which works well for English text.
	CharsPerToken float64
}

// NewEstimatingCounter creates a token counter with default settings.
func NewEstimatingCounter() *EstimatingCounter {
	return &EstimatingCounter{
		CharsPerToken: DefaultCharsPerToken,
	}
}

// NewEstimatingCounterWithRatio creates a token counter with a custom ratio.
// If charsPerToken is <= 0, the default ratio (4.0) is used.
func NewEstimatingCounterWithRatio(charsPerToken float64) *EstimatingCounter {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return &EstimatingCounter{
		CharsPerToken: charsPerToken,
	}
}

// Count estimates the number of tokens in the given text, rounding
// runes/CharsPerToken to the nearest integer.
func (c *EstimatingCounter) Count(text string) int {
	// Count runes (Unicode code points) rather than bytes for better accuracy
	runeCount := utf8.RuneCountInString(text)
	tokens := float64(runeCount) / c.CharsPerToken

	return int(tokens + 0.5)
}

// Split cuts text at word boundaries into pieces below size tokens.
func (c *EstimatingCounter) Split(text string, size int) ([]string, error) {
	return SplitWords(c, text, size)
}

// WordCounter counts whitespace-separated words as tokens.
// It is approximate but fast, and it makes chunk boundaries easy to
// reason about in tests and logs.
type WordCounter struct{}

// NewWordCounter creates a word-based counter.
func NewWordCounter() *WordCounter {
	return &WordCounter{}
}

// Count returns the number of whitespace-separated words in text.
func (WordCounter) Count(text string) int {
	count := 0
	inWord := false

	for _, r := range text {
		if unicode.IsSpace(r) {
			if inWord {
				count++
				inWord = false
			}
		} else {
			inWord = true
		}
	}
	if inWord {
		count++
	}

	return count
}

// Split cuts text at word boundaries into pieces of fewer than size words.
func (w WordCounter) Split(text string, size int) ([]string, error) {
	return SplitWords(w, text, size)
}

// EstimateTokens estimates the token count of text with the default
// estimating counter.
func EstimateTokens(text string) int {
	return NewEstimatingCounter().Count(text)
}
