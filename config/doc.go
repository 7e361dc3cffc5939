// Package config loads chunking configuration and wires it into a chunker.
//
// Config files may be YAML, TOML or JSON, chosen by extension. Values are
// layered: DefaultConfig, then the file, then CHUNKKIT_ environment
// variables.
//
//	cfg, err := config.Load("chunkkit.yaml")
//	c, err := cfg.NewChunker(chunk.WithLogger(cfg.Logger(os.Stderr)))
//	chunks, err := c.Chunk(cfg.Request(doc))
//
// An example YAML file:
//
//	provider: deepseek
//	tier: thinking
//	chunk_size: 2000
//	overlap_words: 20
//	profiles:
//	  - provider: ollama
//	    tier: default
//	    chat_model: mistral-nemo
//	    default: 4096
//	    buffer: 64
//
// Schema returns a JSON Schema for the file format, and Watch follows a
// config file, emitting each new valid config.
package config
