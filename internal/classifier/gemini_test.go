package classifier

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestNewGeminiGateway_Defaults(t *testing.T) {
	g := NewGeminiGateway("key", "", 0)
	assert.Equal(t, DefaultModel, g.model)
	assert.Equal(t, DefaultBatchSize, g.batchSize)
	assert.False(t, g.Ready())
}

func TestGeminiGateway_LoadRequiresAPIKey(t *testing.T) {
	g := NewGeminiGateway("", "", 0)
	err := g.Load(context.Background())
	require.Error(t, err)

	var gwErr *GatewayError
	assert.ErrorAs(t, err, &gwErr)
}

func TestGeminiGateway_ClassifyBeforeLoad(t *testing.T) {
	g := NewGeminiGateway("key", "", 0)
	_, err := g.ClassifyBatch(context.Background(), []string{"What is a variable?"})
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare json", `[{"Remember": 0.9}]`, `[{"Remember": 0.9}]`},
		{"json fence", "```json\n[{\"Remember\": 0.9}]\n```", `[{"Remember": 0.9}]`},
		{"plain fence", "```\n[]\n```", "[]"},
		{"surrounding whitespace", "  []  ", "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanJSONBlock(tt.input))
		})
	}
}

func TestBatchSchema(t *testing.T) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(batchSchema))
	require.NoError(t, err)

	valid := `[{
		"Remember": 0.9, "Understand": 0.3, "Apply": 0.1,
		"Analyze": 0.05, "Evaluate": 0.02, "Create": 0.01
	}]`
	result, err := schema.Validate(gojsonschema.NewStringLoader(valid))
	require.NoError(t, err)
	assert.True(t, result.Valid())

	missingLabel := `[{"Remember": 0.9}]`
	result, err = schema.Validate(gojsonschema.NewStringLoader(missingLabel))
	require.NoError(t, err)
	assert.False(t, result.Valid())

	outOfRange := `[{
		"Remember": 1.5, "Understand": 0.3, "Apply": 0.1,
		"Analyze": 0.05, "Evaluate": 0.02, "Create": 0.01
	}]`
	result, err = schema.Validate(gojsonschema.NewStringLoader(outOfRange))
	require.NoError(t, err)
	assert.False(t, result.Valid())
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt([]string{
		"What is a variable?",
		"Analyze the following code snippet for bugs",
	})

	assert.Contains(t, prompt, "1. What is a variable?")
	assert.Contains(t, prompt, "2. Analyze the following code snippet for bugs")
	assert.Contains(t, prompt, "Remember, Understand, Apply, Analyze, Evaluate, Create")
	assert.True(t, strings.Contains(prompt, "JSON array"))
}
