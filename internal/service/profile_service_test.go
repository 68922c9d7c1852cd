package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-coach/internal/finance"
	"github.com/carson-networks/budget-coach/internal/storage/profile"
)

func TestGetProfile(t *testing.T) {
	svc := newTestService(t)
	svc.profiles.EXPECT().Get(mock.Anything).Return(&profile.Profile{
		Income:  decimal.RequireFromString("80000"),
		AgeBand: "26-35",
	}, nil)

	p, err := svc.Profile.GetProfile(context.Background())

	require.NoError(t, err)
	assert.True(t, p.Income.Equal(decimal.RequireFromString("80000")))
	assert.Equal(t, finance.AgeBand26To35, p.AgeBand)
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := newTestService(t)
	svc.profiles.EXPECT().Get(mock.Anything).Return(nil, profile.ErrNotFound)

	_, err := svc.Profile.GetProfile(context.Background())

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestSaveProfile(t *testing.T) {
	svc := newTestService(t)
	svc.profiles.EXPECT().Get(mock.Anything).Return(nil, profile.ErrNotFound)
	svc.profiles.EXPECT().Put(mock.Anything, mock.MatchedBy(func(p *profile.Profile) bool {
		return p.Income.Equal(decimal.RequireFromString("60000")) &&
			p.CutCostCategories[0] == "Shopping" &&
			!p.CreatedAt.IsZero()
	})).Return(nil)

	saved, err := svc.Profile.SaveProfile(context.Background(), finance.UserProfile{
		Income:            decimal.RequireFromString("60000"),
		CutCostCategories: []string{"Shopping"},
	})

	require.NoError(t, err)
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)
	assert.Equal(t, []string{"SaveProfile"}, svc.processor.performed)
}

func TestSaveProfile_Invalid(t *testing.T) {
	cases := map[string]struct {
		profile finance.UserProfile
		want    error
	}{
		"negative income": {
			profile: finance.UserProfile{Income: decimal.RequireFromString("-1")},
			want:    finance.ErrNegativeIncome,
		},
		"bad age band": {
			profile: finance.UserProfile{AgeBand: "teen"},
			want:    finance.ErrInvalidAgeBand,
		},
		"unknown category": {
			profile: finance.UserProfile{PriorityCategories: []string{"Yachts"}},
			want:    ErrUnknownCategory,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			svc := newTestService(t)

			_, err := svc.Profile.SaveProfile(context.Background(), tc.profile)

			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, svc.processor.performed)
		})
	}
}

func TestSaveProfile_StorageError(t *testing.T) {
	svc := newTestService(t)
	svc.profiles.EXPECT().Get(mock.Anything).Return(nil, errors.New("read failed"))

	_, err := svc.Profile.SaveProfile(context.Background(), finance.UserProfile{})

	assert.EqualError(t, err, "read failed")
}
