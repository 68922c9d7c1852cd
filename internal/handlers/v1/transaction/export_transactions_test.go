package transaction

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockExporter struct {
	mock.Mock
}

func (m *mockExporter) ExportCSV(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx)
	_, _ = io.WriteString(w, args.String(0))
	return args.Error(1)
}

func (m *mockExporter) ExportXLSX(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx)
	_, _ = io.WriteString(w, args.String(0))
	return args.Error(1)
}

func newExportTestAPI(t *testing.T, svc *mockExporter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewExportHandler(svc, svc).Register(api)
	return api
}

func TestHTTP_ExportCSV(t *testing.T) {
	mockSvc := new(mockExporter)
	mockSvc.On("ExportCSV", mock.Anything).Return("id,date\n", nil)

	resp := newExportTestAPI(t, mockSvc).Get("/v1/transaction/export.csv")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "id,date\n", resp.Body.String())
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "transactions.csv")
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ExportXLSX(t *testing.T) {
	mockSvc := new(mockExporter)
	mockSvc.On("ExportXLSX", mock.Anything).Return("PK", nil)

	resp := newExportTestAPI(t, mockSvc).Get("/v1/transaction/export.xlsx")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, xlsxContentType, resp.Header().Get("Content-Type"))
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Export_Error(t *testing.T) {
	mockSvc := new(mockExporter)
	mockSvc.On("ExportCSV", mock.Anything).Return("", errors.New("read failed"))

	resp := newExportTestAPI(t, mockSvc).Get("/v1/transaction/export.csv")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
