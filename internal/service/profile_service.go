package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/budget-coach/internal/categorize"
	"github.com/carson-networks/budget-coach/internal/finance"
	"github.com/carson-networks/budget-coach/internal/operator/actions"
	"github.com/carson-networks/budget-coach/internal/storage"
)

// ProfileService handles the questionnaire.
type ProfileService struct {
	storage     *storage.Storage
	operator    processor
	categorizer *categorize.Categorizer
}

func NewProfileService(store *storage.Storage, op processor, categorizer *categorize.Categorizer) *ProfileService {
	return &ProfileService{storage: store, operator: op, categorizer: categorizer}
}

// GetProfile returns ErrProfileNotFound until SaveProfile has been called.
func (s *ProfileService) GetProfile(ctx context.Context) (*finance.UserProfile, error) {
	row, err := s.storage.Profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	p := row.ToFinance()
	return &p, nil
}

// SaveProfile validates and overwrites the stored profile.
func (s *ProfileService) SaveProfile(ctx context.Context, p finance.UserProfile) (*finance.UserProfile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	for _, c := range p.FocusCategories() {
		if !s.categorizer.Known(c) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}
	}

	action := &actions.SaveProfile{Profile: p}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return &action.Saved, nil
}
