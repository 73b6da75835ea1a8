package ai

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/shinyyama/omnicopy-backend/internal/model"
	"github.com/shinyyama/omnicopy-backend/internal/reqctx"
)

// ContentClient sends one prompt to the model and validates the answer.
// It never retries: a failed call is final for that invocation.
type ContentClient struct {
	gen TextGenerator
}

func NewContentClient(gen TextGenerator) *ContentClient {
	return &ContentClient{gen: gen}
}

// Generate returns validated content or a *GenerationError; never both.
func (c *ContentClient) Generate(ctx context.Context, prompt string, image *ImageRef) (*model.GeneratedContent, error) {
	rid := reqctx.RID(ctx)
	if c == nil || c.gen == nil {
		return nil, newGenerationError(KindServiceUnavailable, errors.New("generator is not configured"))
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, newGenerationError(KindInvalidRequest, errors.New("prompt is empty"))
	}

	start := time.Now()
	raw, err := c.gen.GenerateText(ctx, GenerationRequest{Prompt: prompt, Image: image})
	if err != nil {
		log.Printf("[gen] rid=%s stage=call_fail generator=%s err=%v", rid, c.gen.Name(), err)
		return nil, newGenerationError(KindServiceUnavailable, err)
	}
	log.Printf("[gen] rid=%s stage=parse_start len=%d", rid, len(raw))
	content, err := ParseGeneratedContent(raw)
	if err != nil {
		log.Printf("[gen] rid=%s stage=parse_fail text=%q err=%v", rid, truncate(strings.ReplaceAll(raw, "\n", " "), 200), err)
		return nil, err
	}
	log.Printf("[gen] rid=%s stage=parse_ok title=%q tags=%d totalMs=%d", rid, content.Title, len(content.Tags), time.Since(start).Milliseconds())
	return content, nil
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
