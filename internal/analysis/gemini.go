package analysis

import (
	"context"

	"google.golang.org/genai"

	"rumorlens/internal/core"
)

// geminiGenerator performs the outbound call through the official SDK.
// Best-effort single shot: no retries, no backoff, transport defaults only.
type geminiGenerator struct {
	client *genai.Client
	model  string
}

func newGeminiGenerator(ctx context.Context, apiKey, model string) (*geminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, core.ErrInternal("CLIENT_INIT", "failed to create gemini client").WithCause(err)
	}

	return &geminiGenerator{
		client: client,
		model:  model,
	}, nil
}

func (g *geminiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, ""),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    resultSchema(),
			Temperature:       genai.Ptr[float32](0.7),
		},
	)
	if err != nil {
		return "", core.ErrNetwork("UPSTREAM_UNAVAILABLE", "generation request failed").WithCause(err)
	}

	return resp.Text(), nil
}
