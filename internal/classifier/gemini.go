package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/api/option"

	"github.com/jonathan/bloom-classifier/internal/types"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// batchSchema validates the backend's batch response before it is trusted: an
// array of objects carrying a probability for each of the six labels.
const batchSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "Remember":   {"type": "number", "minimum": 0, "maximum": 1},
      "Understand": {"type": "number", "minimum": 0, "maximum": 1},
      "Apply":      {"type": "number", "minimum": 0, "maximum": 1},
      "Analyze":    {"type": "number", "minimum": 0, "maximum": 1},
      "Evaluate":   {"type": "number", "minimum": 0, "maximum": 1},
      "Create":     {"type": "number", "minimum": 0, "maximum": 1}
    },
    "required": ["Remember", "Understand", "Apply", "Analyze", "Evaluate", "Create"]
  }
}`

// GeminiGateway implements Gateway on the Gemini API.
type GeminiGateway struct {
	apiKey    string
	model     string
	batchSize int

	client *genai.Client
	schema *gojsonschema.Schema
}

// NewGeminiGateway builds an unloaded gateway. Model and batchSize fall back
// to DefaultModel and DefaultBatchSize when zero-valued.
func NewGeminiGateway(apiKey, model string, batchSize int) *GeminiGateway {
	if model == "" {
		model = DefaultModel
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &GeminiGateway{
		apiKey:    apiKey,
		model:     model,
		batchSize: batchSize,
	}
}

// Load creates the API client and compiles the response schema.
func (g *GeminiGateway) Load(ctx context.Context) error {
	if g.apiKey == "" {
		return &GatewayError{Message: "API key is required"}
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(batchSchema))
	if err != nil {
		return &GatewayError{Message: "failed to compile response schema", Cause: err}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return &GatewayError{Message: "failed to create Gemini client", Cause: err}
	}

	g.client = client
	g.schema = schema
	return nil
}

func (g *GeminiGateway) Ready() bool {
	return g.client != nil
}

func (g *GeminiGateway) Classify(ctx context.Context, text string) (*types.MLPrediction, error) {
	preds, err := g.ClassifyBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return preds[0], nil
}

// ClassifyBatch classifies texts in chunks of the configured batch size,
// preserving input order.
func (g *GeminiGateway) ClassifyBatch(ctx context.Context, texts []string) ([]*types.MLPrediction, error) {
	if !g.Ready() {
		return nil, ErrNotLoaded
	}
	if len(texts) == 0 {
		return nil, nil
	}

	preds := make([]*types.MLPrediction, 0, len(texts))
	for start := 0; start < len(texts); start += g.batchSize {
		end := start + g.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		chunk, err := g.classifyChunk(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		preds = append(preds, chunk...)
	}
	return preds, nil
}

func (g *GeminiGateway) classifyChunk(ctx context.Context, texts []string) ([]*types.MLPrediction, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(texts)))
	if err != nil {
		return nil, &GatewayError{Message: "failed to generate content", Cause: err}
	}

	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}
	text = cleanJSONBlock(text)

	result, err := g.schema.Validate(gojsonschema.NewStringLoader(text))
	if err != nil {
		return nil, &GatewayError{Message: "response is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		var sb strings.Builder
		for i, desc := range result.Errors() {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(desc.String())
		}
		return nil, &GatewayError{Message: "response failed schema validation: " + sb.String()}
	}

	var rows []map[string]float64
	if err := json.Unmarshal([]byte(text), &rows); err != nil {
		return nil, &GatewayError{Message: "failed to decode response", Cause: err}
	}
	if len(rows) != len(texts) {
		return nil, &GatewayError{
			Message: fmt.Sprintf("expected %d predictions, got %d", len(texts), len(rows)),
		}
	}

	preds := make([]*types.MLPrediction, len(rows))
	for i, row := range rows {
		preds[i] = PredictionFromProbabilities(row)
	}
	return preds, nil
}

func (g *GeminiGateway) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func buildPrompt(texts []string) string {
	var sb strings.Builder
	sb.WriteString("You are a Bloom's Taxonomy classifier for exam questions.\n")
	sb.WriteString("For each numbered question below, estimate an independent probability in [0,1] for each cognitive level label: ")
	sb.WriteString(strings.Join(types.Labels, ", "))
	sb.WriteString(".\n")
	sb.WriteString("Respond with ONLY a JSON array, one object per question in the same order, each object mapping every label to its probability.\n\n")
	for i, t := range texts {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, t)
	}
	return sb.String()
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &GatewayError{Message: "no candidates in response"}
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &GatewayError{Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", &GatewayError{Message: "no text parts in response"}
	}
	return strings.Join(parts, ""), nil
}

func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
