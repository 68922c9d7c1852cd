package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-coach/internal/chat"
)

type mockInsightService struct {
	mock.Mock
}

func (m *mockInsightService) Chat(ctx context.Context, question string) (chat.Reply, error) {
	args := m.Called(ctx, question)
	reply, _ := args.Get(0).(chat.Reply)
	return reply, args.Error(1)
}

func (m *mockInsightService) SuggestedQuestions(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	questions, _ := args.Get(0).([]string)
	return questions, args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockInsightService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewAskHandler(svc).Register(api)
	NewSuggestedQuestionsHandler(svc).Register(api)
	return api
}

// -- POST /v1/chat --

func TestHTTP_Ask(t *testing.T) {
	mockSvc := new(mockInsightService)
	mockSvc.On("Chat", mock.Anything, "how much on food?").Return(chat.Reply{
		Topic:    chat.TopicCategorySpend,
		Category: "Food & Dining",
		Text:     "You spent ₹1,000.00 on Food & Dining.",
	}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/chat", AskBody{Question: "how much on food?"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Reply
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "category_spend", body.Topic)
	assert.Equal(t, "Food & Dining", body.Category)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Ask_EmptyQuestion(t *testing.T) {
	mockSvc := new(mockInsightService)

	resp := newTestAPI(t, mockSvc).Post("/v1/chat", AskBody{})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Chat")
}

func TestHTTP_Ask_Error(t *testing.T) {
	mockSvc := new(mockInsightService)
	mockSvc.On("Chat", mock.Anything, mock.Anything).Return(chat.Reply{}, errors.New("db down"))

	resp := newTestAPI(t, mockSvc).Post("/v1/chat", AskBody{Question: "hi"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

// -- GET /v1/chat/questions --

func TestHTTP_SuggestedQuestions(t *testing.T) {
	mockSvc := new(mockInsightService)
	mockSvc.On("SuggestedQuestions", mock.Anything).Return([]string{"How can I save more?"}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/chat/questions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Questions []string `json:"questions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"How can I save more?"}, body.Questions)
}

func TestHTTP_SuggestedQuestions_None(t *testing.T) {
	mockSvc := new(mockInsightService)
	mockSvc.On("SuggestedQuestions", mock.Anything).Return(nil, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/chat/questions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Questions []string `json:"questions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.Questions)
	assert.Empty(t, body.Questions)
}
