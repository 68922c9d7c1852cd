package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body struct {
		Categories []string `json:"categories" doc:"Category names in rule priority order, ending with Other"`
	}
}

type categoryLister interface {
	Categories() []string
}

// ListCategoriesHandler handles GET /v1/category.
type ListCategoriesHandler struct {
	TransactionService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{TransactionService: svc}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/category",
		Summary:     "List categories",
		Description: "Returns every category a transaction can be assigned to.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(_ context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	out := &ListCategoriesOutput{}
	out.Body.Categories = h.TransactionService.Categories()
	return out, nil
}
