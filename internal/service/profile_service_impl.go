package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/alexanderramin/resisync/internal/repository"
)

type profileService struct {
	profiles repository.UserProfileRepo
	observer UseCaseObserver
}

func NewProfileService(profiles repository.UserProfileRepo, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		profiles: profiles,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	return s.profiles.Get(ctx)
}

func (s *profileService) Onboard(ctx context.Context, p *domain.UserProfile, force bool) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "profile.onboard", start, err, map[string]any{"force": force})
	}()

	if err = p.Validate(); err != nil {
		return err
	}
	if !force {
		_, getErr := s.profiles.Get(ctx)
		if getErr == nil {
			return fmt.Errorf("profile already exists (use --force to overwrite)")
		}
		if !errors.Is(getErr, repository.ErrNotFound) {
			return getErr
		}
	}
	return s.profiles.Upsert(ctx, p)
}
