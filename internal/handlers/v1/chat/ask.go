package chat

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-coach/internal/chat"
	"github.com/carson-networks/budget-coach/internal/logging"
)

// AskBody is the request body for a chat question.
type AskBody struct {
	Question string `json:"question" minLength:"1" maxLength:"1000" doc:"Free-text question"`
}

// AskInput is the Huma input for a chat question.
type AskInput struct {
	Body AskBody
}

// Reply is the response body for a chat question.
type Reply struct {
	Topic    string `json:"topic" doc:"Subject the question was matched to"`
	Category string `json:"category,omitempty" doc:"Category the answer is about, if any"`
	Text     string `json:"text"`
}

// AskOutput is the Huma output for a chat question.
type AskOutput struct {
	Body Reply
}

type responder interface {
	Chat(ctx context.Context, question string) (chat.Reply, error)
}

// AskHandler handles POST /v1/chat.
type AskHandler struct {
	InsightService responder
}

func NewAskHandler(svc responder) *AskHandler {
	return &AskHandler{InsightService: svc}
}

func (h *AskHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "ask",
		Method:      http.MethodPost,
		Path:        "/v1/chat",
		Summary:     "Ask a question",
		Description: "Answers a money question from canned advice and the user's own numbers.",
		Tags:        []string{"Chat"},
	}, h.handle)
}

func (h *AskHandler) handle(ctx context.Context, input *AskInput) (*AskOutput, error) {
	reply, err := h.InsightService.Chat(ctx, input.Body.Question)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to answer question", err)
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("topic", string(reply.Topic))
	}
	return &AskOutput{Body: Reply{
		Topic:    string(reply.Topic),
		Category: reply.Category,
		Text:     reply.Text,
	}}, nil
}
