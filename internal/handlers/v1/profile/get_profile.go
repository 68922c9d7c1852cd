package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-coach/internal/finance"
	"github.com/carson-networks/budget-coach/internal/service"
)

// ProfileOutput is the Huma output for both profile endpoints.
type ProfileOutput struct {
	Body Profile
}

type profileGetter interface {
	GetProfile(ctx context.Context) (*finance.UserProfile, error)
}

// GetProfileHandler handles GET /v1/profile.
type GetProfileHandler struct {
	ProfileService profileGetter
}

func NewGetProfileHandler(svc profileGetter) *GetProfileHandler {
	return &GetProfileHandler{ProfileService: svc}
}

func (h *GetProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/v1/profile",
		Summary:     "Get profile",
		Description: "Returns the saved questionnaire answers.",
		Tags:        []string{"Profile"},
	}, h.handle)
}

func (h *GetProfileHandler) handle(ctx context.Context, _ *struct{}) (*ProfileOutput, error) {
	p, err := h.ProfileService.GetProfile(ctx)
	if errors.Is(err, service.ErrProfileNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "profile has not been saved yet", err)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load profile", err)
	}
	return &ProfileOutput{Body: fromFinance(*p)}, nil
}
