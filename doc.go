// Package chunkkit sizes and segments text for Large Language Models.
//
// chunkkit answers two questions for a chosen model: does this text fit
// its token budgets, and if not, how should it be cut. Each subpackage can
// be used independently:
//
//   - tokens: Token counting, token-bounded splitting and budget profiles
//   - model: Provider and tier names plus the capability catalog
//   - chunk: Fit predicates and (overlapping) chunking
//   - config: File and environment configuration wired into a chunker
//
// # Quick Start
//
// Token counting:
//
//	import "github.com/randalmurphal/chunkkit/tokens"
//	counter := tokens.NewEstimatingCounter()
//	count := counter.Count("Hello, World!")
//
// Chunking for a catalog entry:
//
//	import "github.com/randalmurphal/chunkkit/model"
//	import "github.com/randalmurphal/chunkkit/chunk"
//	capability := model.DefaultCatalog().Lookup(model.TierDefault, model.ProviderDeepSeek)
//	tok, _ := tokens.New(capability.Encoding)
//	c, _ := chunk.New(tok, capability.Profile)
//	chunks, _ := c.Chunk(chunk.Request{Text: doc, OverlapWords: 20})
//
// From a config file:
//
//	import "github.com/randalmurphal/chunkkit/config"
//	cfg, _ := config.Load("chunkkit.yaml")
//	c, _ := cfg.NewChunker()
//	chunks, _ := c.Chunk(cfg.Request(doc))
//
// # Design Philosophy
//
// chunkkit follows these principles:
//
//   - Chunks never lose text: without overlap they concatenate to the input
//   - Budgets carry a safety buffer below the model's raw limit
//   - Tokenizers are pluggable behind a small interface
//   - Chunkers are immutable and safe for concurrent use
package chunkkit
