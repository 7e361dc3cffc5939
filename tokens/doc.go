// Package tokens provides token counting, token-bounded splitting and
// budget profiles for LLM inputs.
//
// # Counters and Tokenizers
//
// A Counter estimates how many tokens a text costs. A Tokenizer also
// splits text into ordered pieces that each stay under a token size:
//
//	tok := tokens.NewEstimatingCounter()         // ~4 chars per token
//	n := tok.Count("Hello, world!")              // 3
//	pieces, err := tok.Split(longText, 512)      // each piece < 512 tokens
//
// Pieces always concatenate back to the input. Heuristic tokenizers cut at
// word boundaries; TiktokenCounter cuts the BPE token stream:
//
//	tok, err := tokens.NewTiktokenCounter(tokens.EncodingCL100K)
//
// Tokenizers are also available by name:
//
//	tok, err := tokens.New("o200k_base")
//	tokens.Available() // [cl100k_base estimate o200k_base p50k_base r50k_base words]
//
// # Profiles
//
// A Profile holds the default, maximum and embedding budgets of one model
// entry, each reduced by a safety buffer:
//
//	p, err := tokens.NewProfile("openai/large", 16000, 128000, 8191, tokens.DefaultBuffer)
//	p.Effective(tokens.BudgetEmbedding)          // 8091
//	p.Fits(tokens.BudgetEmbedding, 8091)         // false: fits means strictly below
package tokens
