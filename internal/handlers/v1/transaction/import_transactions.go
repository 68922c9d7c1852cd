package transaction

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-coach/internal/ingest"
	"github.com/carson-networks/budget-coach/internal/logging"
	"github.com/carson-networks/budget-coach/internal/service"
)

// maxUploadBytes caps statement uploads.
const maxUploadBytes = 20 << 20

// ImportInput is the Huma input for both import endpoints. The statement is
// sent as the raw request body.
type ImportInput struct {
	RawBody []byte
}

// ImportResponseBody is the response body for an import.
type ImportResponseBody struct {
	Imported   int            `json:"imported" doc:"Number of transactions now stored"`
	Skipped    int            `json:"skipped" doc:"Rows that could not be parsed"`
	ByCategory map[string]int `json:"byCategory" doc:"Transaction count per category"`
}

// ImportOutput is the Huma output for an import.
type ImportOutput struct {
	Body ImportResponseBody
}

// transactionImporter is the interface for importing statements.
type transactionImporter interface {
	ImportCSV(ctx context.Context, r io.Reader) (*service.ImportSummary, error)
	ImportPDF(ctx context.Context, r io.ReaderAt, size int64) (*service.ImportSummary, error)
}

// ImportHandler handles POST /v1/transaction/import/csv and
// POST /v1/transaction/import/pdf.
type ImportHandler struct {
	TransactionService transactionImporter
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(svc transactionImporter) *ImportHandler {
	return &ImportHandler{TransactionService: svc}
}

// Register registers both import endpoints with the Huma API.
func (h *ImportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:  "import-csv",
		Method:       http.MethodPost,
		Path:         "/v1/transaction/import/csv",
		Summary:      "Import CSV statement",
		Description:  "Replaces all stored transactions with the rows of a bank CSV export.",
		Tags:         []string{"Transactions"},
		MaxBodyBytes: maxUploadBytes,
	}, h.handleCSV)

	huma.Register(api, huma.Operation{
		OperationID:  "import-pdf",
		Method:       http.MethodPost,
		Path:         "/v1/transaction/import/pdf",
		Summary:      "Import PDF statement",
		Description:  "Replaces all stored transactions with those found in a text-based PDF statement.",
		Tags:         []string{"Transactions"},
		MaxBodyBytes: maxUploadBytes,
	}, h.handlePDF)
}

func (h *ImportHandler) handleCSV(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if len(input.RawBody) == 0 {
		return nil, huma.NewError(http.StatusBadRequest, "request body is empty")
	}
	return h.run(ctx, "importCSVMs", func() (*service.ImportSummary, error) {
		return h.TransactionService.ImportCSV(ctx, bytes.NewReader(input.RawBody))
	})
}

func (h *ImportHandler) handlePDF(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if len(input.RawBody) == 0 {
		return nil, huma.NewError(http.StatusBadRequest, "request body is empty")
	}
	return h.run(ctx, "importPDFMs", func() (*service.ImportSummary, error) {
		return h.TransactionService.ImportPDF(ctx, bytes.NewReader(input.RawBody), int64(len(input.RawBody)))
	})
}

func (h *ImportHandler) run(ctx context.Context, timing string, importFn func() (*service.ImportSummary, error)) (*ImportOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming(timing)
	}
	summary, err := importFn()
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, importError(err)
	}

	return &ImportOutput{Body: ImportResponseBody{
		Imported:   summary.Imported,
		Skipped:    summary.Skipped,
		ByCategory: summary.ByCategory,
	}}, nil
}

func importError(err error) error {
	switch {
	case errors.Is(err, ingest.ErrNoHeader):
		return huma.NewError(http.StatusBadRequest, "could not find date, description and amount columns", err)
	case errors.Is(err, ingest.ErrUnreadable):
		return huma.NewError(http.StatusUnprocessableEntity, "could not read the PDF, please upload a CSV instead", err)
	case errors.Is(err, ingest.ErrNoTransactions):
		return huma.NewError(http.StatusUnprocessableEntity, "no transactions found, please upload a CSV instead", err)
	default:
		return huma.NewError(http.StatusInternalServerError, "failed to import transactions", err)
	}
}
