package chat

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// SuggestedQuestionsOutput is the Huma output for suggested questions.
type SuggestedQuestionsOutput struct {
	Body struct {
		Questions []string `json:"questions"`
	}
}

type questionSuggester interface {
	SuggestedQuestions(ctx context.Context) ([]string, error)
}

// SuggestedQuestionsHandler handles GET /v1/chat/questions.
type SuggestedQuestionsHandler struct {
	InsightService questionSuggester
}

func NewSuggestedQuestionsHandler(svc questionSuggester) *SuggestedQuestionsHandler {
	return &SuggestedQuestionsHandler{InsightService: svc}
}

func (h *SuggestedQuestionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "suggested-questions",
		Method:      http.MethodGet,
		Path:        "/v1/chat/questions",
		Summary:     "Suggested questions",
		Description: "Returns follow-up questions that fit the user's numbers.",
		Tags:        []string{"Chat"},
	}, h.handle)
}

func (h *SuggestedQuestionsHandler) handle(ctx context.Context, _ *struct{}) (*SuggestedQuestionsOutput, error) {
	questions, err := h.InsightService.SuggestedQuestions(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to suggest questions", err)
	}
	out := &SuggestedQuestionsOutput{}
	out.Body.Questions = questions
	if out.Body.Questions == nil {
		out.Body.Questions = []string{}
	}
	return out, nil
}
