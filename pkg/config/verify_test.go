package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("defaulted config passes", func(t *testing.T) {
		cfg := &Config{}
		cfg.Summary.Endpoint = "http://localhost:11434/v1"
		cfg.Summary.Model = "llama3"
		setDefaults(cfg)

		assert.NoError(t, VerifyAgainstEmbeddedSchema(cfg))
	})

	t.Run("empty config fails", func(t *testing.T) {
		err := VerifyAgainstEmbeddedSchema(&Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.listen is required")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
}
