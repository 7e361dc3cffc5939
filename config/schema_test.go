package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))

	assert.Equal(t, "chunkkit configuration", schema["title"])
	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, false, schema["additionalProperties"])
	assert.NotContains(t, schema, "required", "top-level fields are all optional")

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok, "properties should be an object")
	for _, key := range []string{"provider", "tier", "model", "encoding", "chunk_size", "overlap_words", "truncation", "log_level", "log_format", "profiles"} {
		assert.Contains(t, props, key)
	}

	logFormat := props["log_format"].(map[string]any)
	assert.Equal(t, []any{"text", "json"}, logFormat["enum"])

	chunkSize := props["chunk_size"].(map[string]any)
	assert.EqualValues(t, 0, chunkSize["minimum"])

	profiles := props["profiles"].(map[string]any)
	assert.Equal(t, "array", profiles["type"])
	item := profiles["items"].(map[string]any)
	assert.ElementsMatch(t, []any{"provider", "tier"}, item["required"])
	assert.Contains(t, item["properties"], "buffer")
}
