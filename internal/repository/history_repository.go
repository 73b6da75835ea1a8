package repository

import (
	"context"
	"errors"

	"github.com/shinyyama/omnicopy-backend/internal/model"
)

// RecentLimit is the number of generations shown on the dashboard.
const RecentLimit = 10

var (
	ErrDBNotReady = errors.New("database not initialized")
	ErrNotFound   = errors.New("record not found")
)

// HistoryRepository stores generation results under their owner.
// Records are append-only: there is no update or delete.
type HistoryRepository interface {
	Create(ctx context.Context, rec *model.ProductDescription) error
	ListRecent(ctx context.Context, uid string, limit int) ([]model.ProductDescription, error)
	FindByID(ctx context.Context, uid, id string) (*model.ProductDescription, error)
}

// ProfileRepository creates user profiles on first sign-in and never overwrites them.
type ProfileRepository interface {
	Ensure(ctx context.Context, p *model.UserProfile) (*model.UserProfile, error)
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > RecentLimit {
		return RecentLimit
	}
	return limit
}
