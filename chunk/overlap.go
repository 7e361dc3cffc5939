package chunk

import "strings"

// overlap accumulates fine pieces of about 2*overlapWords tokens into
// chunks below size. When the next piece would reach size, the buffer is
// flushed and the new chunk starts with the previous fine piece, so
// consecutive chunks share that piece.
//
// The bound is soft: a flushed chunk never reached size, but a restarted
// buffer begins with two fine pieces and the final chunk is flushed
// unconditionally. A chunk can therefore exceed size by up to one fine
// piece; callers size their budgets with a buffer to absorb this.
func (c *Chunker) overlap(text string, size, overlapWords int) ([]Piece, error) {
	if overlapWords > size {
		return nil, &Error{Op: "chunk", Param: "overlap_words", Err: ErrOverlapTooLarge}
	}

	fine, err := c.tokenizer.Split(text, 2*overlapWords)
	if err != nil {
		return nil, err
	}

	var (
		out        []Piece
		buf        strings.Builder
		bufTokens  int
		last       string
		lastTokens int
	)
	flush := func() {
		// Empty only when the very first piece overflows.
		if buf.Len() == 0 {
			return
		}
		out = append(out, Piece{Index: len(out), Text: buf.String(), Tokens: bufTokens})
	}

	for i, p := range fine {
		t := c.tokenizer.Count(p)

		if bufTokens+t < size {
			buf.WriteString(p)
			bufTokens += t
		} else {
			flush()
			buf.Reset()
			buf.WriteString(last)
			buf.WriteString(p)
			bufTokens = lastTokens + t
		}

		if i == len(fine)-1 {
			flush()
		}

		last, lastTokens = p, t
	}

	return out, nil
}
