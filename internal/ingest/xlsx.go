package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/carson-networks/budget-coach/internal/aggregate"
	"github.com/carson-networks/budget-coach/internal/finance"
)

// Sheet names in the XLSX report.
const (
	TransactionsSheet = "Transactions"
	SummarySheet      = "Summary"
)

// #,##0.00
const numberFormat = 4

// WriteXLSX writes a workbook with every transaction on one sheet and the
// report's totals, category breakdown and monthly figures on another.
func WriteXLSX(w io.Writer, txs []finance.Transaction, report aggregate.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TransactionsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	numberStyle, err := f.NewStyle(&excelize.Style{NumFmt: numberFormat})
	if err != nil {
		return fmt.Errorf("create number style: %w", err)
	}

	x := &xlsxWriter{f: f, header: headerStyle, number: numberStyle}
	x.transactions(txs)
	x.summary(report)
	if x.err != nil {
		return x.err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// xlsxWriter keeps the first error so the sheet builders read top to bottom.
type xlsxWriter struct {
	f              *excelize.File
	header, number int
	err            error
}

func (x *xlsxWriter) row(sheet string, row int, values ...interface{}) {
	if x.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		x.err = err
		return
	}
	if err := x.f.SetSheetRow(sheet, cell, &values); err != nil {
		x.err = fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
}

func (x *xlsxWriter) style(sheet string, row, fromCol, toCol, style int) {
	if x.err != nil {
		return
	}
	from, _ := excelize.CoordinatesToCellName(fromCol, row)
	to, _ := excelize.CoordinatesToCellName(toCol, row)
	if err := x.f.SetCellStyle(sheet, from, to, style); err != nil {
		x.err = fmt.Errorf("style %s row %d: %w", sheet, row, err)
	}
}

func (x *xlsxWriter) transactions(txs []finance.Transaction) {
	const sheet = TransactionsSheet
	x.row(sheet, 1, "Date", "Description", "Amount", "Type", "Category", "Overridden")
	x.style(sheet, 1, 1, 6, x.header)
	for i, tx := range txs {
		r := i + 2
		x.row(sheet, r,
			tx.Date.Format(DateLayout),
			tx.Description,
			tx.Amount.InexactFloat64(),
			string(tx.Type),
			tx.Category,
			tx.Overridden,
		)
		x.style(sheet, r, 3, 3, x.number)
	}
	if x.err == nil {
		x.err = x.f.SetColWidth(sheet, "B", "B", 48)
	}
}

func (x *xlsxWriter) summary(report aggregate.Report) {
	const sheet = SummarySheet
	r := 1
	metric := func(name string, value interface{}, numeric bool) {
		x.row(sheet, r, name, value)
		if numeric {
			x.style(sheet, r, 2, 2, x.number)
		}
		r++
	}

	x.row(sheet, r, "Metric", "Value")
	x.style(sheet, r, 1, 2, x.header)
	r++
	metric("Transactions", report.TransactionCount, false)
	metric("Total income", report.TotalIncome.InexactFloat64(), true)
	metric("Total expenses", report.TotalExpenses.InexactFloat64(), true)
	metric("Monthly income", report.MonthlyIncomeAvg.InexactFloat64(), true)
	metric("Monthly expenses", report.MonthlyExpensesAvg.InexactFloat64(), true)
	metric("Monthly savings", report.MonthlySavings.InexactFloat64(), true)
	metric("Savings rate %", report.SavingsRate, true)
	metric("Health score", report.HealthScore, false)
	metric("Spending trend", string(report.Trend), false)

	r++
	x.row(sheet, r, "Category", "Amount", "Transactions", "Share %")
	x.style(sheet, r, 1, 4, x.header)
	r++
	for _, c := range report.ExpenseBreakdown {
		x.row(sheet, r, c.Category, c.Amount.InexactFloat64(), c.Count, c.Share)
		x.style(sheet, r, 2, 2, x.number)
		r++
	}

	r++
	x.row(sheet, r, "Month", "Income", "Expenses", "Net")
	x.style(sheet, r, 1, 4, x.header)
	r++
	for _, m := range report.Months {
		x.row(sheet, r, m.Period, m.Income.InexactFloat64(), m.Expenses.InexactFloat64(), m.Net.InexactFloat64())
		x.style(sheet, r, 2, 4, x.number)
		r++
	}

	if x.err == nil {
		x.err = x.f.SetColWidth(sheet, "A", "A", 24)
	}
}
