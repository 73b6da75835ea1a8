package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"github.com/shinyyama/omnicopy-backend/internal/ai"
	"github.com/shinyyama/omnicopy-backend/internal/config"
	"github.com/shinyyama/omnicopy-backend/internal/db"
	"github.com/shinyyama/omnicopy-backend/internal/export"
	"github.com/shinyyama/omnicopy-backend/internal/gcp"
	"github.com/shinyyama/omnicopy-backend/internal/handler"
	appmw "github.com/shinyyama/omnicopy-backend/internal/middleware"
	"github.com/shinyyama/omnicopy-backend/internal/repository"
	"github.com/shinyyama/omnicopy-backend/internal/server"
	"github.com/shinyyama/omnicopy-backend/internal/service"
	"github.com/shinyyama/omnicopy-backend/internal/storage"
	"google.golang.org/api/option"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	srv, err := build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Printf("starting server on %s provider=%s history=%s prompt=%s", addr, cfg.LLMProvider, cfg.HistoryBackend, cfg.PromptVersion)
		errCh <- srv.Start(addr)
	}()
	if err := <-errCh; err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func build(ctx context.Context, cfg *config.Config) (*server.Server, error) {
	opts, err := gcp.ClientOptions(ctx, cfg.GoogleCredentialsJSON, cfg.FirebaseCredentialsFile)
	if err != nil {
		return nil, err
	}

	var app *firebase.App
	if !cfg.AuthDisabled || cfg.HistoryBackend == config.BackendFirestore {
		app, err = firebase.NewApp(ctx, &firebase.Config{
			ProjectID:     cfg.FirebaseProjectID,
			StorageBucket: cfg.StorageBucket,
		}, opts...)
		if err != nil {
			return nil, fmt.Errorf("firebase app: %w", err)
		}
	}

	var (
		authMw *appmw.AuthMiddleware
		users  handler.UserLookup
	)
	if cfg.AuthDisabled {
		log.Printf("AUTH_DISABLED=true: every request runs as uid=%s", appmw.LocalUID)
		authMw = appmw.NewDisabledAuth()
	} else {
		authMw, err = appmw.NewAuthMiddleware(ctx, app)
		if err != nil {
			return nil, fmt.Errorf("firebase auth: %w", err)
		}
		users = authMw.Client()
	}

	history, profiles, err := openHistory(ctx, cfg, app)
	if err != nil {
		return nil, err
	}
	images, err := openImageStore(ctx, cfg, opts)
	if err != nil {
		return nil, err
	}

	gen, err := ai.NewTextGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}
	version := ai.ParsePromptVersion(cfg.PromptVersion)
	genSvc := service.NewGenerationService(ai.NewContentClient(gen), history, images, service.GenerationOptions{
		PromptVersion:  version,
		Export:         export.Options{DefaultVendor: cfg.DefaultVendor},
		PersistTimeout: time.Duration(cfg.PersistTimeoutSeconds) * time.Second,
	})

	return server.New(server.Deps{
		Generations:   genSvc,
		Profiles:      service.NewProfileService(profiles),
		Auth:          authMw,
		Users:         users,
		PromptVersion: version,
		SaveWait:      time.Duration(cfg.SaveWaitMillis) * time.Millisecond,
		GitSHA:        os.Getenv("GIT_SHA"),
		BuildTime:     os.Getenv("BUILD_TIME"),
	}), nil
}

func openHistory(ctx context.Context, cfg *config.Config, app *firebase.App) (repository.HistoryRepository, repository.ProfileRepository, error) {
	switch cfg.HistoryBackend {
	case config.BackendFirestore:
		fs, err := app.Firestore(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("firestore: %w", err)
		}
		return repository.NewFirestoreHistoryRepository(fs), repository.NewFirestoreProfileRepository(fs), nil
	case config.BackendMySQL:
		conn, err := db.Connect(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect db: %w", err)
		}
		if err := db.Migrate(conn); err != nil {
			return nil, nil, fmt.Errorf("auto migrate: %w", err)
		}
		return repository.NewGormHistoryRepository(conn), repository.NewGormProfileRepository(conn), nil
	default:
		log.Printf("history backend=%s: records are lost on restart", cfg.HistoryBackend)
		store := repository.NewMemoryStore()
		return store, store, nil
	}
}

func openImageStore(ctx context.Context, cfg *config.Config, opts []option.ClientOption) (service.ImageUploader, error) {
	if cfg.StorageBucket == "" {
		return nil, nil
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}
	return storage.NewImageStore(client, cfg.StorageBucket), nil
}
