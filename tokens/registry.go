package tokens

import (
	"fmt"
	"sort"
	"sync"
)

// Names of the built-in heuristic tokenizers.
const (
	EncodingEstimate = "estimate" // ~4 characters per token
	EncodingWords    = "words"    // one token per whitespace-separated word
)

// Factory creates a Tokenizer. Factories run on every New call.
type Factory func() (Tokenizer, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

func init() {
	Register(EncodingEstimate, func() (Tokenizer, error) {
		return NewEstimatingCounter(), nil
	})
	Register(EncodingWords, func() (Tokenizer, error) {
		return NewWordCounter(), nil
	})
	for _, name := range []string{EncodingCL100K, EncodingO200K, EncodingP50K, EncodingR50K} {
		Register(name, func() (Tokenizer, error) {
			return NewTiktokenCounter(name)
		})
	}
}

// Register adds a tokenizer factory under name.
// Panics if a tokenizer with the same name is already registered.
//
// Example:
//
//	func init() {
//	    tokens.Register("sentencepiece", func() (tokens.Tokenizer, error) {
//	        return newSentencePiece()
//	    })
//	}
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("tokenizer %q already registered", name))
	}
	registry[name] = factory
}

// New creates the tokenizer registered under name.
// Returns ErrUnknownEncoding if nothing is registered under that name.
func New(name string) (Tokenizer, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	return factory()
}

// Available returns the names of all registered tokenizers, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a tokenizer is registered under name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()

	_, ok := registry[name]
	return ok
}

// Unregister removes a tokenizer from the registry.
// This is primarily useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	delete(registry, name)
}
