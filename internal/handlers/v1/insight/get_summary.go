package insight

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-coach/internal/aggregate"
	"github.com/carson-networks/budget-coach/internal/logging"
)

// SummaryOutput is the Huma output for the dashboard summary.
type SummaryOutput struct {
	Body Summary
}

type summarizer interface {
	Summary(ctx context.Context) (aggregate.Report, error)
}

// SummaryHandler handles GET /v1/insight/summary.
type SummaryHandler struct {
	InsightService summarizer
}

func NewSummaryHandler(svc summarizer) *SummaryHandler {
	return &SummaryHandler{InsightService: svc}
}

func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/v1/insight/summary",
		Summary:     "Spending summary",
		Description: "Aggregates all stored transactions into totals, monthly figures and a health score.",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, _ *struct{}) (*SummaryOutput, error) {
	report, err := h.InsightService.Summary(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build summary", err)
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("healthScore", report.HealthScore)
	}
	return &SummaryOutput{Body: fromReport(report)}, nil
}
