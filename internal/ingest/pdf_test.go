package ingest

import (
	"bytes"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-coach/internal/finance"
)

func text(x, w float64, s string) pdf.Text {
	return pdf.Text{FontSize: 10, X: x, W: w, S: s}
}

func row(texts ...pdf.Text) line {
	return lineFromTexts(texts)
}

func TestLineFromTexts_MergesWordsAndSplitsCells(t *testing.T) {
	l := row(
		text(158, 30, "ORDER"),
		text(50, 50, "05/01/2025"),
		text(120, 35, "SWIGGY"),
		text(300, 30, "250.00"),
	)

	assert.Equal(t, []string{"05/01/2025", "SWIGGY ORDER", "250.00"}, l.texts())
	assert.Equal(t, 120.0, l[1].x)
	assert.Equal(t, 188.0, l[1].end)
}

func TestLineFromTexts_GlyphRuns(t *testing.T) {
	l := row(
		text(10, 6, "C"),
		text(16, 6, "a"),
		text(22, 6, "f"),
		text(28, 6, "e"),
	)

	assert.Equal(t, []string{"Cafe"}, l.texts())
}

func statementHeader() line {
	return row(
		text(50, 20, "Date"),
		text(120, 55, "Description"),
		text(300, 25, "Debit"),
		text(380, 30, "Credit"),
		text(460, 35, "Balance"),
	)
}

func TestParseLines_TableMode(t *testing.T) {
	lines := []line{
		row(text(50, 200, "Account statement for January")),
		statementHeader(),
		row(text(50, 50, "05/01/2025"), text(120, 35, "SWIGGY"), text(158, 30, "ORDER"),
			text(300, 30, "250.00"), text(460, 40, "9,750.00")),
		row(text(50, 50, "01/01/2025"), text(120, 60, "SALARY JAN"),
			text(380, 40, "10,000.00"), text(460, 40, "10,000.00")),
		row(text(50, 50, "06/01/2025"), text(120, 60, "NO AMOUNT"), text(460, 40, "9,750.00")),
		row(text(50, 80, "Page 1 of 1")),
	}

	result, err := parseLines(lines)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Transactions, 2)

	salary := result.Transactions[0]
	assert.Equal(t, "SALARY JAN", salary.Description)
	assert.Equal(t, finance.Credit, salary.Type)
	assert.True(t, salary.Amount.Equal(decimal.RequireFromString("10000")))

	food := result.Transactions[1]
	assert.Equal(t, "SWIGGY ORDER", food.Description)
	assert.Equal(t, finance.Debit, food.Type)
	assert.True(t, food.Amount.Equal(decimal.RequireFromString("-250")))
	assert.Equal(t, date("2025-01-05"), food.Date)
}

func TestParseLines_TextModeFallback(t *testing.T) {
	lines := []line{
		row(text(10, 300, "02 Feb 2025 UPI/ZOMATO/ORDER 349.50 Dr 12,000.00")),
		row(text(10, 300, "03 Feb 2025 NEFT SALARY ACME ₹45,000.00 Cr 57,000.00")),
		row(text(10, 300, "2025-02-04 Refund from store +120.00")),
		row(text(10, 300, "2025-02-05 Something without an amount")),
		row(text(10, 300, "Closing balance 57,120.00")),
	}

	result, err := parseLines(lines)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Transactions, 3)

	zomato := result.Transactions[0]
	assert.Equal(t, "UPI/ZOMATO/ORDER", zomato.Description)
	assert.Equal(t, finance.Debit, zomato.Type)
	assert.True(t, zomato.Amount.Equal(decimal.RequireFromString("-349.50")))

	salary := result.Transactions[1]
	assert.Equal(t, "NEFT SALARY ACME", salary.Description)
	assert.Equal(t, finance.Credit, salary.Type)
	assert.True(t, salary.Amount.Equal(decimal.RequireFromString("45000")))

	refund := result.Transactions[2]
	assert.Equal(t, finance.Credit, refund.Type)
	assert.True(t, refund.Amount.Equal(decimal.RequireFromString("120")))
}

func TestParseLines_NothingFound(t *testing.T) {
	_, err := parseLines([]line{row(text(10, 100, "Thank you for banking with us"))})
	assert.ErrorIs(t, err, ErrNoTransactions)

	_, err = parseLines(nil)
	assert.ErrorIs(t, err, ErrNoTransactions)
}

func TestReadPDF_Unreadable(t *testing.T) {
	data := []byte("this is not a pdf")

	_, err := ReadPDF(bytes.NewReader(data), int64(len(data)))

	assert.ErrorIs(t, err, ErrUnreadable)
}
