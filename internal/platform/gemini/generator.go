package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/Hachi2308/coloring/internal/config"
	"github.com/Hachi2308/coloring/internal/domain"
	"github.com/Hachi2308/coloring/internal/generation"
)

// Generator implements the generation.Generator interface using Google's
// Gemini API. It performs a single API call per invocation; retry and
// backoff decisions belong to the caller, which can classify the returned
// error.
type Generator struct {
	logger  *slog.Logger
	client  *genai.Client
	prompts *PromptBuilder
	model   string
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Generator from LLM configuration and a style/palette
// catalog.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig, catalog Catalog) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	prompts, err := NewPromptBuilder(catalog)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidConfig, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger:  logger,
		client:  client,
		prompts: prompts,
		model:   cfg.ModelName,
	}, nil
}

// Generate builds the prompt for the descriptor, sends it with any reference
// images attached inline, and returns the first image the model produced as
// a base64 data URI.
func (g *Generator) Generate(ctx context.Context, desc domain.JobDescriptor) (*generation.Result, error) {
	prompt, err := g.prompts.Build(desc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	parts := []*genai.Part{{Text: prompt}}
	for _, ref := range desc.ReferenceImages {
		mimeType, data, err := parseDataURI(ref)
		if err != nil {
			return nil, err
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: mimeType, Data: data},
		})
	}

	g.logger.DebugContext(ctx, "calling Gemini API",
		"model", g.model,
		"prompt_length", len(prompt),
		"reference_count", len(desc.ReferenceImages))

	contents := []*genai.Content{{Parts: parts}}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	content, err := imageDataURIFromResponse(resp)
	if err != nil {
		return nil, err
	}

	return &generation.Result{
		Content:   content,
		UsedModel: g.model,
	}, nil
}

// imageDataURIFromResponse extracts the first inline image from a model
// response and re-encodes it as a data URI.
func imageDataURIFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: response blocked by safety filters", generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	for _, part := range candidate.Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return formatDataURI(part.InlineData.MIMEType, part.InlineData.Data), nil
		}
	}

	return "", ErrNoImageData
}

// parseDataURI splits a "data:<mime>;base64,<payload>" string into its MIME
// type and decoded bytes.
func parseDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing data: prefix", ErrBadDataURI)
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing payload separator", ErrBadDataURI)
	}

	mimeType, encoded := strings.CutSuffix(meta, ";base64")
	if !encoded {
		return "", nil, fmt.Errorf("%w: payload is not base64 encoded", ErrBadDataURI)
	}
	if mimeType == "" {
		mimeType = "image/png"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBadDataURI, err)
	}

	return mimeType, data, nil
}

// formatDataURI encodes raw image bytes as a base64 data URI.
func formatDataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}
