// Package truncate cuts text down to a token budget when chunking is not
// wanted, for example a title or a single field that must fit an
// embedding request.
//
// # Strategies
//
// Three truncation strategies are available:
//
//   - FromEnd: Remove content from the end (default)
//   - FromMiddle: Remove content from the middle, keeping start and end
//   - FromStart: Remove content from the start
//
// # Basic Usage
//
//	tr, err := truncate.New(tokenizer, profile, truncate.WithStrategy(truncate.FromMiddle))
//	result, truncated := tr.Truncate(text, tokens.BudgetEmbedding)
//
// Results count strictly below the budget, marker included. If the
// marker alone does not fit it is dropped.
//
// # UTF-8 Support
//
// Cuts fall on rune boundaries, so multi-byte characters are never split.
package truncate
