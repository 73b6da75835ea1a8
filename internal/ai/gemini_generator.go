package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/shinyyama/omnicopy-backend/internal/reqctx"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator builds the genai client once; the key is validated by config.Load.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, httpClient *http.Client) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}
	if model == "" {
		model = defaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client init: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Name() string {
	return "gemini/" + g.model
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, req GenerationRequest) (string, error) {
	rid := reqctx.RID(ctx)
	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	if req.Image != nil {
		if req.Image.Inline() {
			parts = append(parts, genai.NewPartFromBytes(req.Image.Data, req.Image.MimeType))
		} else if req.Image.URL != "" {
			parts = append(parts, genai.NewPartFromURI(req.Image.URL, req.Image.MimeType))
		}
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	temp := float32(0.7)
	config := &genai.GenerateContentConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}

	start := time.Now()
	log.Printf("[gen] rid=%s stage=gemini_start model=%s parts=%d", rid, g.model, len(parts))
	res, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		log.Printf("[gen] rid=%s stage=gemini_fail model=%s err=%v", rid, g.model, err)
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := res.Text()
	log.Printf("[gen] rid=%s stage=gemini_done model=%s genMs=%d len=%d", rid, g.model, time.Since(start).Milliseconds(), len(text))
	return text, nil
}
