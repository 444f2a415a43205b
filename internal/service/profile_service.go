package service

import (
	"TeleInvest/internal/api/dto"
	"TeleInvest/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type ProfileService interface {
	// GetProfile returns the user's rollup, creating a fresh zero-value
	// profile on first sight.
	GetProfile(ctx context.Context, userID string) (*dto.ProfileItem, error)
}

type profileService struct {
	profileRepo repository.ProfileRepo
}

func NewProfileService(profileRepo repository.ProfileRepo) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*dto.ProfileItem, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		if err := s.profileRepo.Ensure(ctx, userID); err != nil {
			return nil, err
		}
		profile, err = s.profileRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	item := &dto.ProfileItem{}
	if err := copier.Copy(item, profile); err != nil {
		return nil, err
	}
	return item, nil
}
