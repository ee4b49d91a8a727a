// Package analysis sends claims to the Gemini API and normalizes the
// structured verdict it returns. All reasoning (classification, graph
// construction, timestamp sequencing) happens in the model; this package
// only builds the request and validates the shape of the reply.
package analysis

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"rumorlens/internal/core"
	"rumorlens/internal/logging"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// FallbackMessage is shown whenever the external call or parsing fails.
const FallbackMessage = "系统繁忙，无法获取分析结果，请稍后重试。"

// Config configures the client.
type Config struct {
	// APIKey is the Gemini credential. Required.
	APIKey string
	// Model overrides DefaultModel.
	Model string
}

// generator abstracts the outbound generation call so tests can stub it.
// It receives the finished prompt; claim embedding happens in Analyze.
type generator interface {
	generate(ctx context.Context, prompt string) (string, error)
}

// Client performs single-shot claim analysis. It holds no mutable state;
// concurrent Analyze calls are independent.
type Client struct {
	gen    generator
	logger *logging.Logger
}

// New creates a client. It fails when the API credential is missing.
func New(ctx context.Context, cfg Config, logger *logging.Logger) (*Client, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, core.ErrValidation("MISSING_API_KEY", "gemini api key is not configured")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	gen, err := newGeminiGenerator(ctx, cfg.APIKey, model)
	if err != nil {
		return nil, err
	}

	return &Client{gen: gen, logger: logger}, nil
}

// Fallback returns the fixed safe result used when analysis fails.
func Fallback() core.AnalysisResult {
	return core.AnalysisResult{
		Message:   FallbackMessage,
		IsRumor:   false,
		GraphData: nil,
	}
}

// Analyze classifies a claim and returns the model's verdict. It is total:
// every failure degrades to Fallback() and is logged, never returned.
// The claim is forwarded as-is; the model decides whether graph data is
// producible for empty or nonsensical input.
func (c *Client) Analyze(ctx context.Context, query string) core.AnalysisResult {
	log := c.logger.WithAnalysis(uuid.NewString())
	start := time.Now()

	text, err := c.gen.generate(ctx, buildPrompt(query))
	if err != nil {
		log.Error("generation request failed",
			"category", string(core.CategoryOf(err)),
			"error", err.Error(),
		)
		return Fallback()
	}

	result, err := decodeResult(text)
	if err != nil {
		log.Error("model reply unusable",
			"category", string(core.CategoryOf(err)),
			"error", err.Error(),
		)
		return Fallback()
	}

	// Partial graphs are repaired to nil rather than failing.
	result.Normalize()

	log.Info("claim analyzed",
		"is_rumor", result.IsRumor,
		"has_graph", result.GraphData != nil,
		"duration", time.Since(start),
	)
	return result
}

// decodeResult parses the model reply into an AnalysisResult. The schema
// constrains the reply to bare JSON, but a fence-stripping guard is kept for
// models that wrap it anyway.
func decodeResult(text string) (core.AnalysisResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return core.AnalysisResult{}, core.ErrDecode("EMPTY_REPLY", "model returned no text")
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var result core.AnalysisResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return core.AnalysisResult{}, core.ErrDecode("BAD_JSON", "model reply is not valid JSON").WithCause(err)
	}
	return result, nil
}
