package model

import (
	"errors"
	"sync"
	"testing"

	"github.com/randalmurphal/chunkkit/tokens"
)

func TestTierString(t *testing.T) {
	tests := []struct {
		tier     Tier
		expected string
	}{
		{TierFast, "fast"},
		{TierDefault, "default"},
		{TierThinking, "thinking"},
		{Tier(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.tier.String(); got != tt.expected {
				t.Errorf("Tier(%d).String() = %s, want %s", tt.tier, got, tt.expected)
			}
		})
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in      string
		want    Tier
		wantErr bool
	}{
		{in: "fast", want: TierFast},
		{in: "small", want: TierFast},
		{in: "large", want: TierDefault},
		{in: "Default", want: TierDefault},
		{in: "", want: TierDefault},
		{in: "reasoning", want: TierThinking},
		{in: " thinking ", want: TierThinking},
		{in: "gigantic", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTier(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTier(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTier(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseProvider(t *testing.T) {
	tests := []struct {
		in      string
		want    Provider
		wantErr bool
	}{
		{in: "openai", want: ProviderOpenAI},
		{in: "DeepSeek", want: ProviderDeepSeek},
		{in: "anthropic", want: ProviderAnthropic},
		{in: "claude", want: ProviderAnthropic},
		{in: "ollama", want: ProviderOllama},
		{in: "", want: ProviderOpenAI},
		{in: "watsonx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProvider(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseProvider(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseProvider(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestProviderForModel(t *testing.T) {
	tests := []struct {
		model  string
		want   Provider
		wantOK bool
	}{
		{"gpt-4o", ProviderOpenAI, true},
		{"gpt-4o-mini", ProviderOpenAI, true},
		{"o3-mini", ProviderOpenAI, true},
		{"text-embedding-3-large", ProviderOpenAI, true},
		{"deepseek-reasoner", ProviderDeepSeek, true},
		{"deepseek-r1:14b", ProviderDeepSeek, true},
		{"claude-sonnet-4-20250514", ProviderAnthropic, true},
		{"llama3.1:8b", ProviderOllama, true},
		{"qwen2.5-coder", ProviderOllama, true},
		{"mystery-model", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			got, ok := ProviderForModel(tt.model)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ProviderForModel(%q) = (%s, %v), want (%s, %v)", tt.model, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTierForModel(t *testing.T) {
	tests := []struct {
		model string
		want  Tier
	}{
		{"gpt-4o", TierDefault},
		{"gpt-4o-mini", TierFast},
		{"o3-mini", TierThinking},
		{"o1", TierThinking},
		{"deepseek-chat", TierDefault},
		{"deepseek-reasoner", TierThinking},
		{"deepseek-r1", TierThinking},
		{"claude-haiku-4-5", TierFast},
		{"claude-opus-4-1", TierThinking},
		{"ollama-unknown", TierDefault},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			if got := TierForModel(tt.model); got != tt.want {
				t.Errorf("TierForModel(%q) = %s, want %s", tt.model, got, tt.want)
			}
		})
	}
}

func TestDefaultCatalog_Complete(t *testing.T) {
	c := DefaultCatalog()

	for _, p := range Providers() {
		for _, tier := range []Tier{TierFast, TierDefault, TierThinking} {
			if !c.Has(tier, p) {
				t.Errorf("missing entry for %s/%s", p, tier)
				continue
			}
			e := c.Lookup(tier, p)
			if e.Provider != p || e.Tier != tier {
				t.Errorf("Lookup(%s, %s) returned %s/%s", tier, p, e.Provider, e.Tier)
			}
			if e.Profile.Buffer != tokens.DefaultBuffer {
				t.Errorf("%s/%s buffer = %d, want the canonical %d", p, tier, e.Profile.Buffer, tokens.DefaultBuffer)
			}
			if err := e.Profile.Validate(); err != nil {
				t.Errorf("%s/%s profile invalid: %v", p, tier, err)
			}
			if !tokens.IsRegistered(e.Encoding) {
				t.Errorf("%s/%s encoding %q is not a registered tokenizer", p, tier, e.Encoding)
			}
		}
	}
}

func TestCatalog_LookupFallback(t *testing.T) {
	c := DefaultCatalog()
	fallback := c.Lookup(TierDefault, ProviderOpenAI)

	tests := []struct {
		name     string
		tier     Tier
		provider Provider
	}{
		{name: "unknown provider", tier: TierFast, provider: Provider("mystery")},
		{name: "unknown tier", tier: Tier(42), provider: ProviderDeepSeek},
		{name: "both unknown", tier: Tier(-1), provider: Provider("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Lookup(tt.tier, tt.provider)
			if got != fallback {
				t.Errorf("Lookup(%s, %q) = %+v, want fallback %+v", tt.tier, tt.provider, got, fallback)
			}
		})
	}

	if fallback.ChatModel != "gpt-4o" {
		t.Errorf("fallback chat model = %q, want gpt-4o", fallback.ChatModel)
	}
}

func TestCatalog_Lookup_DeepSeekReasoning(t *testing.T) {
	e := DefaultCatalog().Lookup(TierThinking, ProviderDeepSeek)

	if e.ChatModel != "deepseek-reasoner" {
		t.Errorf("ChatModel = %q, want deepseek-reasoner", e.ChatModel)
	}
	if got := e.Profile.Effective(tokens.BudgetDefault); got != 31900 {
		t.Errorf("effective default budget = %d, want 31900", got)
	}
}

func TestNewCatalog_Validation(t *testing.T) {
	valid := Capability{
		Provider: ProviderOpenAI,
		Tier:     TierDefault,
		Profile:  tokens.Profile{Default: 100, Maximum: 200, Embedding: 50, Buffer: 10},
	}

	t.Run("invalid profile", func(t *testing.T) {
		broken := valid
		broken.Profile.Buffer = 100
		_, err := NewCatalog(broken)
		if !errors.Is(err, tokens.ErrInvalidProfile) {
			t.Errorf("expected ErrInvalidProfile, got %v", err)
		}
	})

	t.Run("missing fallback", func(t *testing.T) {
		other := valid
		other.Provider = ProviderOllama
		_, err := NewCatalog(other)
		if !errors.Is(err, ErrNoFallback) {
			t.Errorf("expected ErrNoFallback, got %v", err)
		}
	})

	t.Run("minimal catalog", func(t *testing.T) {
		c, err := NewCatalog(valid)
		if err != nil {
			t.Fatalf("NewCatalog() error = %v", err)
		}
		if got := c.Lookup(TierThinking, ProviderAnthropic); got != valid {
			t.Errorf("expected fallback to the only entry, got %+v", got)
		}
	})
}

func TestMustNewCatalog_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for catalog without fallback")
		}
	}()
	MustNewCatalog()
}

func TestCatalog_With(t *testing.T) {
	base := DefaultCatalog()
	override := Capability{
		Provider:       ProviderOllama,
		Tier:           TierDefault,
		ChatModel:      "mistral-nemo",
		EmbeddingModel: "mxbai-embed-large",
		Encoding:       tokens.EncodingWords,
		Profile:        tokens.Profile{Name: "local", Default: 4096, Maximum: 32768, Embedding: 512, Buffer: 64},
	}

	custom, err := base.With(override)
	if err != nil {
		t.Fatalf("With() error = %v", err)
	}

	if got := custom.Lookup(TierDefault, ProviderOllama); got != override {
		t.Errorf("override not applied: %+v", got)
	}
	if got := base.Lookup(TierDefault, ProviderOllama); got.ChatModel != "llama3.1" {
		t.Errorf("base catalog modified: %+v", got)
	}
	if len(custom.Entries()) != len(base.Entries()) {
		t.Errorf("replacing an entry changed the entry count: %d vs %d", len(custom.Entries()), len(base.Entries()))
	}
}

func TestCatalog_Entries_Sorted(t *testing.T) {
	entries := DefaultCatalog().Entries()
	if len(entries) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if prev.Provider > cur.Provider || (prev.Provider == cur.Provider && prev.Tier >= cur.Tier) {
			t.Errorf("entries out of order at %d: %s/%s before %s/%s", i, prev.Provider, prev.Tier, cur.Provider, cur.Tier)
		}
	}
}

func TestCatalog_ConcurrentLookup(t *testing.T) {
	c := DefaultCatalog()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, p := range Providers() {
				_ = c.Lookup(TierDefault, p)
			}
		}()
	}
	wg.Wait()
}
