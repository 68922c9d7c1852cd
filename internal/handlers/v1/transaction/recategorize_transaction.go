package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-coach/internal/finance"
	"github.com/carson-networks/budget-coach/internal/service"
)

// RecategorizeBody is the request body for changing a category.
type RecategorizeBody struct {
	Category string `json:"category" doc:"New category. Empty hands the transaction back to the keyword rules"`
}

// RecategorizeInput is the Huma input for changing a category.
type RecategorizeInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body RecategorizeBody
}

// RecategorizeOutput is the Huma output for changing a category.
type RecategorizeOutput struct {
	Body Transaction
}

type transactionRecategorizer interface {
	Recategorize(ctx context.Context, id uuid.UUID, category string) (*finance.Transaction, error)
}

// RecategorizeHandler handles PUT /v1/transaction/{id}/category.
type RecategorizeHandler struct {
	TransactionService transactionRecategorizer
}

func NewRecategorizeHandler(svc transactionRecategorizer) *RecategorizeHandler {
	return &RecategorizeHandler{TransactionService: svc}
}

func (h *RecategorizeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "recategorize-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}/category",
		Summary:     "Change category",
		Description: "Sets the category of one transaction. The keyword rules are not changed.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *RecategorizeHandler) handle(ctx context.Context, input *RecategorizeInput) (*RecategorizeOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	tx, err := h.TransactionService.Recategorize(ctx, id, input.Body.Category)
	switch {
	case errors.Is(err, service.ErrTransactionNotFound):
		return nil, huma.NewError(http.StatusNotFound, "transaction not found", err)
	case errors.Is(err, service.ErrUnknownCategory):
		return nil, huma.NewError(http.StatusBadRequest, err.Error(), err)
	case err != nil:
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update category", err)
	}

	return &RecategorizeOutput{Body: fromFinance(*tx)}, nil
}
