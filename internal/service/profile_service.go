package service

import (
	"context"
	"errors"

	"github.com/shinyyama/omnicopy-backend/internal/model"
	"github.com/shinyyama/omnicopy-backend/internal/repository"
)

type ProfileService interface {
	Ensure(ctx context.Context, p model.UserProfile) (*model.UserProfile, error)
}

type profileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) Ensure(ctx context.Context, p model.UserProfile) (*model.UserProfile, error) {
	if p.UID == "" {
		return nil, errors.New("uid is required")
	}
	return s.repo.Ensure(ctx, &p)
}
