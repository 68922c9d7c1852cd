package actions

import (
	"context"
	"errors"
	"time"

	"github.com/carson-networks/budget-coach/internal/finance"
	"github.com/carson-networks/budget-coach/internal/storage"
	"github.com/carson-networks/budget-coach/internal/storage/profile"
)

// SaveProfile overwrites the questionnaire answers, keeping the first
// creation time.
type SaveProfile struct {
	Profile finance.UserProfile
	Now     func() time.Time

	// Saved is filled in by Perform.
	Saved finance.UserProfile
}

func (a *SaveProfile) Name() string { return "SaveProfile" }

func (a *SaveProfile) Perform(ctx context.Context, writer *storage.Writer) error {
	now := time.Now().UTC()
	if a.Now != nil {
		now = a.Now()
	}

	p := a.Profile
	p.CreatedAt = now
	existing, err := writer.Profiles.Get(ctx)
	switch {
	case err == nil:
		p.CreatedAt = existing.CreatedAt
	case !errors.Is(err, profile.ErrNotFound):
		return err
	}
	p.UpdatedAt = now

	if err := writer.Profiles.Put(ctx, profile.FromFinance(p)); err != nil {
		return err
	}
	a.Saved = p
	return nil
}
