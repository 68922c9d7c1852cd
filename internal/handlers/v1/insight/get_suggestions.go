package insight

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-coach/internal/service"
)

// SuggestionsBody is the response body for the advice panel.
type SuggestionsBody struct {
	Suggestions []Suggestion `json:"suggestions"`
	BudgetPlan  []BudgetLine `json:"budgetPlan" doc:"Empty until a monthly income is known"`
	QuickTips   []string     `json:"quickTips"`
	HasProfile  bool         `json:"hasProfile" doc:"False when advice was computed without questionnaire answers"`
}

// SuggestionsOutput is the Huma output for the advice panel.
type SuggestionsOutput struct {
	Body SuggestionsBody
}

type adviser interface {
	Advice(ctx context.Context) (*service.Advice, error)
}

// SuggestionsHandler handles GET /v1/insight/suggestions.
type SuggestionsHandler struct {
	InsightService adviser
}

func NewSuggestionsHandler(svc adviser) *SuggestionsHandler {
	return &SuggestionsHandler{InsightService: svc}
}

func (h *SuggestionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-suggestions",
		Method:      http.MethodGet,
		Path:        "/v1/insight/suggestions",
		Summary:     "Personalised suggestions",
		Description: "Returns savings advice, a recommended budget and quick tips.",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func (h *SuggestionsHandler) handle(ctx context.Context, _ *struct{}) (*SuggestionsOutput, error) {
	a, err := h.InsightService.Advice(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build suggestions", err)
	}
	return &SuggestionsOutput{Body: SuggestionsBody{
		Suggestions: suggestions(a.Suggestions),
		BudgetPlan:  budgetLines(a.BudgetPlan),
		QuickTips:   a.QuickTips,
		HasProfile:  a.HasProfile,
	}}, nil
}
