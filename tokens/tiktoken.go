package tokens

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

// BPE encodings served by TiktokenCounter.
const (
	EncodingCL100K = "cl100k_base" // GPT-4, GPT-3.5, text-embedding-3
	EncodingO200K  = "o200k_base"  // GPT-4o, o-series
	EncodingP50K   = "p50k_base"   // Codex, text-davinci-002/003
	EncodingR50K   = "r50k_base"   // GPT-3
)

// TiktokenCounter counts and splits text with an OpenAI BPE encoding.
// It is safe for concurrent use once constructed.
type TiktokenCounter struct {
	name string
	enc  *tiktoken.Tiktoken
}

// NewTiktokenCounter loads the named BPE encoding.
// The first load of an encoding may fetch its ranks file; set
// TIKTOKEN_CACHE_DIR to keep them on local disk.
func NewTiktokenCounter(encoding string) (*TiktokenCounter, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("load encoding %s: %w", encoding, err)
	}
	return &TiktokenCounter{name: encoding, enc: enc}, nil
}

// NewTiktokenCounterForModel loads the encoding used by an OpenAI model,
// falling back to cl100k_base for models tiktoken does not know.
func NewTiktokenCounterForModel(model string) (*TiktokenCounter, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err == nil {
		return &TiktokenCounter{name: model, enc: enc}, nil
	}
	return NewTiktokenCounter(EncodingCL100K)
}

// Encoding returns the encoding or model name the counter was built from.
func (t *TiktokenCounter) Encoding() string {
	return t.name
}

// Count returns the exact number of BPE tokens in text.
func (t *TiktokenCounter) Count(text string) int {
	return len(t.enc.Encode(text, nil, nil))
}

// Split cuts the token stream into windows of fewer than size tokens.
// Windows are shrunk so they do not end inside a multi-byte rune and so the
// decoded piece still counts below size when encoded on its own. A window
// is never shrunk below one token.
func (t *TiktokenCounter) Split(text string, size int) ([]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if text == "" {
		return nil, nil
	}

	ids := t.enc.Encode(text, nil, nil)
	window := max(size-1, 1)

	pieces := make([]string, 0, len(ids)/window+1)
	for start := 0; start < len(ids); {
		end := min(start+window, len(ids))
		piece := t.enc.Decode(ids[start:end])
		for end-start > 1 && (splitsRune(piece) || t.Count(piece) >= size) {
			end--
			piece = t.enc.Decode(ids[start:end])
		}
		pieces = append(pieces, piece)
		start = end
	}
	return pieces, nil
}

// splitsRune reports whether s ends partway through a UTF-8 sequence.
func splitsRune(s string) bool {
	for i := len(s) - 1; i >= 0 && i >= len(s)-utf8.UTFMax; i-- {
		if utf8.RuneStart(s[i]) {
			return !utf8.FullRuneInString(s[i:])
		}
	}
	return false
}
