package tokens

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// SplitWords cuts text into pieces whose count under c is strictly below
// size. Cuts fall just before whitespace that follows a word, so leading
// whitespace stays attached to the word after it. A word too large to fit
// on its own is cut between runes. The pieces concatenate back to text.
//
// Counts of growing prefixes are assumed to be non-decreasing, which holds
// for every Counter in this package.
func SplitWords(c Counter, text string, size int) ([]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if text == "" {
		return nil, nil
	}

	ends := wordEnds(text)

	var pieces []string
	start := 0 // byte offset of the current piece
	next := 0  // index of the first word end after start
	for start < len(text) {
		// Binary search for the furthest word end that still fits.
		low, high := next-1, len(ends)-1
		for low < high {
			mid := (low + high + 1) / 2
			if c.Count(text[start:ends[mid]]) < size {
				low = mid
			} else {
				high = mid - 1
			}
		}

		if low >= next {
			pieces = append(pieces, text[start:ends[low]])
			start = ends[low]
			next = low + 1
			continue
		}

		// The next word alone does not fit; cut it between runes.
		n := fittingPrefix(c, text[start:ends[next]], size)
		pieces = append(pieces, text[start:start+n])
		start += n
		if start == ends[next] {
			next++
		}
	}

	return pieces, nil
}

// wordEnds returns the byte offsets where each word unit ends. A unit is a
// run of whitespace followed by a run of non-whitespace; the last offset is
// always len(text).
func wordEnds(text string) []int {
	var ends []int
	prevSpace := true
	for i, r := range text {
		space := unicode.IsSpace(r)
		if space && !prevSpace {
			ends = append(ends, i)
		}
		prevSpace = space
	}
	return append(ends, len(text))
}

// fittingPrefix returns the byte length of the longest rune prefix of s
// that counts below size. At least one rune is always kept so callers make
// progress on text that cannot fit at all.
func fittingPrefix(c Counter, s string, size int) int {
	// bounds[k] is the byte offset just past rune k.
	bounds := make([]int, 0, utf8.RuneCountInString(s))
	for i := range s {
		if i > 0 {
			bounds = append(bounds, i)
		}
	}
	bounds = append(bounds, len(s))

	low, high := 1, len(bounds)
	for low < high {
		mid := (low + high + 1) / 2
		if c.Count(s[:bounds[mid-1]]) < size {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return bounds[low-1]
}
