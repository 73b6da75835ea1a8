// Command generate runs one product through the generation pipeline and writes every export format.
//
//	generate -in product.json -out ./exports
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shinyyama/omnicopy-backend/internal/ai"
	"github.com/shinyyama/omnicopy-backend/internal/config"
	"github.com/shinyyama/omnicopy-backend/internal/export"
	"github.com/shinyyama/omnicopy-backend/internal/model"
	"github.com/shinyyama/omnicopy-backend/internal/reqctx"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("generate failed: %v", err)
	}
}

func run() error {
	inPath := flag.String("in", "", "path to a product input JSON file")
	outDir := flag.String("out", ".", "directory receiving the export files")
	version := flag.String("prompt", "", "prompt version (defaults to PROMPT_VERSION)")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()
	if *inPath == "" {
		flag.Usage()
		return fmt.Errorf("-in is required")
	}

	_ = godotenv.Load()
	cfg, err := config.LoadGeneration()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	input, err := readInput(*inPath)
	if err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return err
	}
	image, err := ai.ParseImageRef(input.ImageURL)
	if err != nil {
		return fmt.Errorf("image: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	ctx = reqctx.WithRID(ctx, uuid.NewString())

	gen, err := ai.NewTextGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	pv := cfg.PromptVersion
	if *version != "" {
		pv = *version
	}
	prompt := ai.BuildProductPrompt(ai.ParsePromptVersion(pv), input)
	content, err := ai.NewContentClient(gen).Generate(ctx, prompt, image)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	opts := export.Options{DefaultVendor: cfg.DefaultVendor}
	for _, f := range export.Formats {
		fn, err := export.ByFormat(string(f))
		if err != nil {
			return err
		}
		p, err := fn(*content, input, opts)
		if err != nil {
			return fmt.Errorf("export %s: %w", f, err)
		}
		path := filepath.Join(*outDir, p.Filename)
		if err := os.WriteFile(path, p.Body, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Printf("wrote %s (%d bytes)", path, len(p.Body))
	}
	return nil
}

func readInput(path string) (model.ProductInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.ProductInput{}, fmt.Errorf("read input: %w", err)
	}
	var in model.ProductInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return model.ProductInput{}, fmt.Errorf("decode input: %w", err)
	}
	return in.Normalize(), nil
}
