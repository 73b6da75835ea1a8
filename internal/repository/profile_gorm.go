package repository

import (
	"context"

	"github.com/shinyyama/omnicopy-backend/internal/model"
	"gorm.io/gorm"
)

type gormProfileRepository struct {
	db *gorm.DB
}

func NewGormProfileRepository(db *gorm.DB) ProfileRepository {
	return &gormProfileRepository{db: db}
}

// Ensure inserts the profile with the initial credit balance unless the uid already exists.
func (r *gormProfileRepository) Ensure(ctx context.Context, p *model.UserProfile) (*model.UserProfile, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var out model.UserProfile
	if err := r.db.WithContext(ctx).
		Where("uid = ?", p.UID).
		Attrs(model.UserProfile{
			Email:         p.Email,
			DisplayName:   p.DisplayName,
			PhotoURL:      p.PhotoURL,
			CreditBalance: model.InitialCreditBalance,
		}).
		FirstOrCreate(&out, &model.UserProfile{UID: p.UID}).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
