package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shinyyama/omnicopy-backend/internal/model"
	"gorm.io/gorm"
)

type gormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) HistoryRepository {
	return &gormHistoryRepository{db: db}
}

func (r *gormHistoryRepository) Create(ctx context.Context, rec *model.ProductDescription) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *gormHistoryRepository) ListRecent(ctx context.Context, uid string, limit int) ([]model.ProductDescription, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var recs []model.ProductDescription
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", uid).
		Order("created_at desc").
		Limit(clampLimit(limit)).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *gormHistoryRepository) FindByID(ctx context.Context, uid, id string) (*model.ProductDescription, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var rec model.ProductDescription
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, uid).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}
