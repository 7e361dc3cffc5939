// Package model selects token budgets and model pairs by tier and provider.
//
// A Catalog is a static table keyed by (Tier, Provider). Each entry is a
// Capability: the chat model, the embedding model, the tokenizer encoding
// and a tokens.Profile with the default, maximum and embedding budgets.
//
// # Lookup
//
//	catalog := model.DefaultCatalog()
//	c := catalog.Lookup(model.TierThinking, model.ProviderDeepSeek)
//	c.ChatModel                                  // "deepseek-reasoner"
//	c.Profile.Effective(tokens.BudgetDefault)    // 31900
//
// Unknown pairs fall back to the default-tier OpenAI entry instead of
// failing:
//
//	c := catalog.Lookup(model.TierFast, model.Provider("mystery"))
//	c.ChatModel                                  // "gpt-4o"
//
// # Overrides
//
// Catalogs are immutable. With returns a copy with entries replaced:
//
//	custom, err := catalog.With(model.Capability{
//	    Provider: model.ProviderOllama,
//	    Tier:     model.TierDefault,
//	    ...
//	})
//
// # Inference
//
// ProviderForModel and TierForModel map a concrete model id to its entry:
//
//	p, _ := model.ProviderForModel("deepseek-reasoner") // ProviderDeepSeek
//	t := model.TierForModel("deepseek-reasoner")        // TierThinking
package model
