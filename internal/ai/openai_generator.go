package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/shinyyama/omnicopy-backend/internal/reqctx"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIGenerator implements TextGenerator with the official openai-go SDK (chat completions).
type OpenAIGenerator struct {
	client openai.Client
	model  string
}

func NewOpenAIGenerator(apiKey, model, baseURL string) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIGenerator{client: openai.NewClient(opts...), model: model}, nil
}

func (o *OpenAIGenerator) Name() string {
	return "openai/" + o.model
}

func (o *OpenAIGenerator) GenerateText(ctx context.Context, req GenerationRequest) (string, error) {
	rid := reqctx.RID(ctx)
	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(req.Prompt),
	}
	if req.Image != nil {
		if uri := req.Image.DataURI(); uri != "" {
			parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: uri}))
		}
	}

	start := time.Now()
	log.Printf("[gen] rid=%s stage=openai_start model=%s parts=%d", rid, o.model, len(parts))
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("Réponds uniquement avec un objet JSON valide."),
			openai.UserMessage(parts),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		log.Printf("[gen] rid=%s stage=openai_fail model=%s err=%v", rid, o.model, err)
		return "", fmt.Errorf("openai generate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	text := resp.Choices[0].Message.Content
	log.Printf("[gen] rid=%s stage=openai_done model=%s genMs=%d len=%d", rid, o.model, time.Since(start).Milliseconds(), len(text))
	return text, nil
}
