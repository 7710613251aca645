package preference

import (
	"context"
	"errors"
	"strings"

	"invoice-web-app/internal/domain"
	preferencerepo "invoice-web-app/internal/repository/preference"
	"invoice-web-app/internal/validation"
)

// ErrMissingUser is returned when no user identifier accompanies a request.
var ErrMissingUser = errors.New("user id is required")

type Service struct {
	repo      preferencerepo.Repository
	validator *validation.Validator
}

func New(repo preferencerepo.Repository) *Service {
	return &Service{repo: repo, validator: validation.New()}
}

// Get returns the stored preferences, or the defaults for an unknown user.
func (s *Service) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrMissingUser
	}
	p, err := s.repo.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultPreferences(userID)
		return &def, nil
	}
	return p, err
}

func (s *Service) SetTheme(ctx context.Context, userID string, p validation.ThemePayload) (*domain.Preferences, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrMissingUser
	}
	if err := s.validator.Struct(p); err != nil {
		return nil, err
	}
	return s.repo.SetTheme(ctx, userID, p.Theme)
}

func (s *Service) SetProfileImage(ctx context.Context, userID string, p validation.ProfileImagePayload) (*domain.Preferences, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrMissingUser
	}
	if err := s.validator.Struct(p); err != nil {
		return nil, err
	}
	return s.repo.SetProfileImage(ctx, userID, strings.TrimSpace(p.ProfileImage))
}
