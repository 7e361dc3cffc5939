package chunk

import (
	"fmt"
	"log/slog"

	"github.com/randalmurphal/chunkkit/tokens"
)

// Request describes one chunking call.
type Request struct {
	// Text is the input to segment.
	Text string

	// ChunkSize is the requested chunk size in tokens. Zero uses the
	// profile's effective default budget; larger values are clamped to it.
	ChunkSize int

	// OverlapWords enables overlapping chunks. Zero disables overlap.
	// Fine pieces of about 2*OverlapWords tokens carry context from one
	// chunk into the next.
	OverlapWords int
}

// Piece is one chunk with its position and tracked token estimate.
type Piece struct {
	Index  int
	Text   string
	Tokens int
}

// Chunker segments text into token-budgeted chunks.
// It holds no mutable state and is safe for concurrent use.
type Chunker struct {
	tokenizer tokens.Tokenizer
	profile   tokens.Profile
	logger    *slog.Logger
}

// Option configures a Chunker.
type Option func(*Chunker)

// WithLogger sets the logger used for per-call debug records.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chunker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Chunker. The profile is validated here, once, so callers
// find misconfigured budgets at startup rather than mid-request.
func New(tokenizer tokens.Tokenizer, profile tokens.Profile, opts ...Option) (*Chunker, error) {
	if tokenizer == nil {
		return nil, &Error{Op: "new", Param: "tokenizer", Err: fmt.Errorf("%w: tokenizer is required", ErrInvalidParameter)}
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	c := &Chunker{
		tokenizer: tokenizer,
		profile:   profile,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Profile returns a copy of the chunker's budget profile.
func (c *Chunker) Profile() tokens.Profile {
	return c.profile
}

// Fits reports whether text fits strictly below the effective budget of kind.
func (c *Chunker) Fits(text string, kind tokens.BudgetKind) bool {
	return c.profile.Fits(kind, c.tokenizer.Count(text))
}

// FitsInDefaultChunk reports whether text fits the default chat budget.
func (c *Chunker) FitsInDefaultChunk(text string) bool {
	return c.Fits(text, tokens.BudgetDefault)
}

// FitsInMaximumChunk reports whether text fits the maximum budget.
func (c *Chunker) FitsInMaximumChunk(text string) bool {
	return c.Fits(text, tokens.BudgetMaximum)
}

// FitsInEmbeddingChunk reports whether text fits the embedding budget.
func (c *Chunker) FitsInEmbeddingChunk(text string) bool {
	return c.Fits(text, tokens.BudgetEmbedding)
}

// EffectiveChunkSize resolves a requested chunk size against the profile.
// Zero or negative requests mean "not given".
func (c *Chunker) EffectiveChunkSize(requested int) int {
	ceiling := c.profile.Effective(tokens.BudgetDefault)
	if requested > 0 && requested < ceiling {
		return requested
	}
	return ceiling
}

// Chunk segments req.Text and returns the chunks in source order.
// Every non-empty input yields at least one chunk. Errors from the
// tokenizer are returned unchanged and no partial result is returned.
func (c *Chunker) Chunk(req Request) ([]string, error) {
	pieces, err := c.Pieces(req)
	if err != nil {
		return nil, err
	}

	chunks := make([]string, len(pieces))
	for i, p := range pieces {
		chunks[i] = p.Text
	}
	return chunks, nil
}

// Pieces is like Chunk but also reports each chunk's index and token
// estimate.
func (c *Chunker) Pieces(req Request) ([]Piece, error) {
	if req.ChunkSize < 0 {
		return nil, &Error{Op: "chunk", Param: "chunk_size",
			Err: fmt.Errorf("%w: must be >= 0, got %d", ErrInvalidParameter, req.ChunkSize)}
	}
	if req.OverlapWords < 0 {
		return nil, &Error{Op: "chunk", Param: "overlap_words",
			Err: fmt.Errorf("%w: must be >= 0, got %d", ErrInvalidParameter, req.OverlapWords)}
	}

	size := c.EffectiveChunkSize(req.ChunkSize)

	var (
		pieces []Piece
		err    error
		mode   = "split"
	)
	if req.OverlapWords == 0 {
		pieces, err = c.split(req.Text, size)
	} else {
		mode = "overlap"
		pieces, err = c.overlap(req.Text, size, req.OverlapWords)
	}
	if err != nil {
		return nil, err
	}

	c.logger.Debug("chunked text",
		slog.String("mode", mode),
		slog.String("profile", c.profile.Name),
		slog.Int("chunk_size", size),
		slog.Int("overlap_words", req.OverlapWords),
		slog.Int("chunks", len(pieces)))

	return pieces, nil
}

// split returns the tokenizer's own token-bounded pieces verbatim.
func (c *Chunker) split(text string, size int) ([]Piece, error) {
	parts, err := c.tokenizer.Split(text, size)
	if err != nil {
		return nil, err
	}

	pieces := make([]Piece, len(parts))
	for i, p := range parts {
		pieces[i] = Piece{Index: i, Text: p, Tokens: c.tokenizer.Count(p)}
	}
	return pieces, nil
}
