// Package chunk segments text into chunks that fit a model's token budgets.
//
// A Chunker combines a tokens.Tokenizer with a tokens.Profile. The profile
// supplies the effective (buffered) default, maximum and embedding budgets;
// the tokenizer supplies token counts and token-bounded pieces.
//
// # Fit Predicates
//
//	c, err := chunk.New(tokens.NewWordCounter(), profile)
//	c.FitsInDefaultChunk(text)    // count < effective default budget
//	c.FitsInMaximumChunk(text)
//	c.FitsInEmbeddingChunk(text)
//
// A text whose count equals the effective budget does not fit.
//
// # Chunking
//
// Without overlap, the tokenizer's own pieces are returned as-is; every
// chunk counts strictly below the chunk size:
//
//	chunks, err := c.Chunk(chunk.Request{Text: doc})
//	chunks, err := c.Chunk(chunk.Request{Text: doc, ChunkSize: 512})
//
// With overlap, the text is cut into fine pieces of about 2*OverlapWords
// tokens that are accumulated into chunks. Each new chunk starts with the
// last fine piece of the previous one:
//
//	chunks, err := c.Chunk(chunk.Request{Text: doc, ChunkSize: 512, OverlapWords: 20})
//
// Overlap chunks may exceed the chunk size by up to one fine piece. The
// final chunk is always emitted. An overlap larger than the chunk size is
// rejected with ErrOverlapTooLarge before the tokenizer is called.
//
// ChunkSize never raises the ceiling: requests above the profile's
// effective default budget are clamped to it.
package chunk
