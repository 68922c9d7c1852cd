package transaction

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportOutput is a file download.
type ExportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

type csvExporter interface {
	ExportCSV(ctx context.Context, w io.Writer) error
}

type xlsxExporter interface {
	ExportXLSX(ctx context.Context, w io.Writer) error
}

// ExportHandler handles GET /v1/transaction/export.csv and
// GET /v1/transaction/export.xlsx.
type ExportHandler struct {
	CSV  csvExporter
	XLSX xlsxExporter
}

func NewExportHandler(csv csvExporter, xlsx xlsxExporter) *ExportHandler {
	return &ExportHandler{CSV: csv, XLSX: xlsx}
}

func (h *ExportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-csv",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/export.csv",
		Summary:     "Export CSV",
		Description: "Downloads every transaction in a CSV that imports back unchanged.",
		Tags:        []string{"Transactions"},
	}, func(ctx context.Context, _ *struct{}) (*ExportOutput, error) {
		return export(ctx, h.CSV.ExportCSV, "text/csv; charset=utf-8", "transactions.csv")
	})

	huma.Register(api, huma.Operation{
		OperationID: "export-xlsx",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/export.xlsx",
		Summary:     "Export XLSX report",
		Description: "Downloads a workbook with the transactions and a summary sheet.",
		Tags:        []string{"Transactions"},
	}, func(ctx context.Context, _ *struct{}) (*ExportOutput, error) {
		return export(ctx, h.XLSX.ExportXLSX, xlsxContentType, "budget-report.xlsx")
	})
}

func export(ctx context.Context, write func(context.Context, io.Writer) error, contentType, filename string) (*ExportOutput, error) {
	var buf bytes.Buffer
	if err := write(ctx, &buf); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to export transactions", err)
	}
	return &ExportOutput{
		ContentType:        contentType,
		ContentDisposition: `attachment; filename="` + filename + `"`,
		Body:               buf.Bytes(),
	}, nil
}
