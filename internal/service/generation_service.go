package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shinyyama/omnicopy-backend/internal/ai"
	"github.com/shinyyama/omnicopy-backend/internal/export"
	"github.com/shinyyama/omnicopy-backend/internal/model"
	"github.com/shinyyama/omnicopy-backend/internal/repository"
	"github.com/shinyyama/omnicopy-backend/internal/reqctx"
)

var ErrNotFound = errors.New("not found")

// maxStoredInlineImage bounds data URIs kept in history when no image store is configured.
const maxStoredInlineImage = 700 * 1024

// PersistenceError reports a failed history write. The generation it belongs to stays valid.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "history write failed: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// PersistOutcome is delivered exactly once on GenerationResult.Saved.
type PersistOutcome struct {
	Record *model.ProductDescription
	Err    error
}

type GenerationResult struct {
	Content  model.GeneratedContent
	Input    model.ProductInput
	Platform model.Platform
	Saved    <-chan PersistOutcome
}

type ContentGenerator interface {
	Generate(ctx context.Context, prompt string, image *ai.ImageRef) (*model.GeneratedContent, error)
}

type ImageUploader interface {
	Upload(ctx context.Context, uid, mimeType string, data []byte) (string, error)
}

type GenerationService interface {
	Generate(ctx context.Context, uid string, platform model.Platform, input model.ProductInput) (*GenerationResult, error)
	Recent(ctx context.Context, uid string) ([]model.ProductDescription, error)
	ExportRecord(ctx context.Context, uid, id, format string) (export.Payload, error)
	ExportContent(content model.GeneratedContent, input model.ProductInput, format string) (export.Payload, error)
}

type GenerationOptions struct {
	PromptVersion  ai.PromptVersion
	Export         export.Options
	PersistTimeout time.Duration
}

type generationService struct {
	client  ContentGenerator
	history repository.HistoryRepository
	images  ImageUploader
	opts    GenerationOptions
}

// NewGenerationService wires the pipeline. images may be nil when no bucket is configured.
func NewGenerationService(client ContentGenerator, history repository.HistoryRepository, images ImageUploader, opts GenerationOptions) GenerationService {
	if opts.PersistTimeout <= 0 {
		opts.PersistTimeout = 10 * time.Second
	}
	if opts.PromptVersion == "" {
		opts.PromptVersion = ai.DefaultPromptVersion
	}
	return &generationService{client: client, history: history, images: images, opts: opts}
}

func (s *generationService) Generate(ctx context.Context, uid string, platform model.Platform, input model.ProductInput) (*GenerationResult, error) {
	rid := reqctx.RID(ctx)
	if uid == "" {
		return nil, errors.New("uid is required")
	}
	input = input.Normalize()
	if platform == "" {
		platform = model.PlatformShopify
	}
	if err := input.Validate(); err != nil {
		log.Printf("[gen] rid=%s uid=%s stage=validate_fail err=%v", rid, uid, err)
		return nil, err
	}
	if !platform.Valid() {
		return nil, &model.ValidationError{Fields: []model.FieldError{{Field: "platform", Message: "Plateforme inconnue."}}}
	}
	image, err := ai.ParseImageRef(input.ImageURL)
	if err != nil {
		return nil, &model.ValidationError{Fields: []model.FieldError{{Field: "imageUrl", Message: err.Error()}}}
	}

	prompt := ai.BuildProductPrompt(s.opts.PromptVersion, input)
	log.Printf("[gen] rid=%s uid=%s stage=prompt_built version=%s len=%d image=%v", rid, uid, s.opts.PromptVersion, len(prompt), image != nil)
	content, err := s.client.Generate(ctx, prompt, image)
	if err != nil {
		return nil, err
	}

	saved := make(chan PersistOutcome, 1)
	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.PersistTimeout)
	go func() {
		defer cancel()
		saved <- s.persist(persistCtx, uid, platform, input, *content, image)
	}()

	return &GenerationResult{Content: *content, Input: input, Platform: platform, Saved: saved}, nil
}

func (s *generationService) persist(ctx context.Context, uid string, platform model.Platform, input model.ProductInput, content model.GeneratedContent, image *ai.ImageRef) PersistOutcome {
	rid := reqctx.RID(ctx)
	stored := input
	if image.Inline() {
		stored.ImageURL = s.storeImage(ctx, uid, image)
	}
	rec := &model.ProductDescription{
		UserID:    uid,
		Platform:  platform,
		Content:   content,
		InputData: stored,
	}
	if s.history == nil {
		return PersistOutcome{Err: &PersistenceError{Err: repository.ErrDBNotReady}}
	}
	if err := s.history.Create(ctx, rec); err != nil {
		log.Printf("[gen] rid=%s uid=%s stage=persist_fail err=%v", rid, uid, err)
		return PersistOutcome{Err: &PersistenceError{Err: err}}
	}
	log.Printf("[gen] rid=%s uid=%s stage=persist_ok id=%s", rid, uid, rec.ID)
	return PersistOutcome{Record: rec}
}

// storeImage swaps an inline photo for a bucket URL; without a store small photos stay inline.
func (s *generationService) storeImage(ctx context.Context, uid string, image *ai.ImageRef) string {
	rid := reqctx.RID(ctx)
	if s.images != nil {
		url, err := s.images.Upload(ctx, uid, image.MimeType, image.Data)
		if err == nil {
			log.Printf("[gen] rid=%s uid=%s stage=image_uploaded url=%s", rid, uid, url)
			return url
		}
		log.Printf("[gen] rid=%s uid=%s stage=image_upload_fail err=%v", rid, uid, err)
	}
	if len(image.Data) > maxStoredInlineImage {
		log.Printf("[gen] rid=%s uid=%s stage=image_dropped bytes=%d", rid, uid, len(image.Data))
		return ""
	}
	return image.DataURI()
}

func (s *generationService) Recent(ctx context.Context, uid string) ([]model.ProductDescription, error) {
	if s.history == nil {
		return nil, repository.ErrDBNotReady
	}
	return s.history.ListRecent(ctx, uid, repository.RecentLimit)
}

func (s *generationService) ExportRecord(ctx context.Context, uid, id, format string) (export.Payload, error) {
	fn, err := export.ByFormat(format)
	if err != nil {
		return export.Payload{}, err
	}
	if s.history == nil {
		return export.Payload{}, repository.ErrDBNotReady
	}
	rec, err := s.history.FindByID(ctx, uid, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return export.Payload{}, ErrNotFound
		}
		return export.Payload{}, err
	}
	return fn(rec.Content, rec.InputData, s.opts.Export)
}

func (s *generationService) ExportContent(content model.GeneratedContent, input model.ProductInput, format string) (export.Payload, error) {
	fn, err := export.ByFormat(format)
	if err != nil {
		return export.Payload{}, err
	}
	if content.Title == "" || content.Description == "" {
		return export.Payload{}, fmt.Errorf("%w: title and description are required", ai.ErrIncompleteContent)
	}
	return fn(content, input.Normalize(), s.opts.Export)
}
