package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-coach/internal/finance"
	"github.com/carson-networks/budget-coach/internal/service"
)

// SaveProfileInput is the Huma input for saving the profile.
type SaveProfileInput struct {
	Body Profile
}

type profileSaver interface {
	SaveProfile(ctx context.Context, p finance.UserProfile) (*finance.UserProfile, error)
}

// SaveProfileHandler handles PUT /v1/profile.
type SaveProfileHandler struct {
	ProfileService profileSaver
}

func NewSaveProfileHandler(svc profileSaver) *SaveProfileHandler {
	return &SaveProfileHandler{ProfileService: svc}
}

func (h *SaveProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "save-profile",
		Method:      http.MethodPut,
		Path:        "/v1/profile",
		Summary:     "Save profile",
		Description: "Overwrites the questionnaire answers used to personalise advice.",
		Tags:        []string{"Profile"},
	}, h.handle)
}

func (h *SaveProfileHandler) handle(ctx context.Context, input *SaveProfileInput) (*ProfileOutput, error) {
	p, err := input.Body.toFinance()
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "income and savingsTarget must be decimals", err)
	}

	saved, err := h.ProfileService.SaveProfile(ctx, p)
	switch {
	case errors.Is(err, finance.ErrNegativeIncome),
		errors.Is(err, finance.ErrNegativeSavingsTarget),
		errors.Is(err, finance.ErrInvalidAgeBand),
		errors.Is(err, service.ErrUnknownCategory):
		return nil, huma.NewError(http.StatusBadRequest, err.Error(), err)
	case err != nil:
		return nil, huma.NewError(http.StatusInternalServerError, "failed to save profile", err)
	}

	return &ProfileOutput{Body: fromFinance(*saved)}, nil
}
