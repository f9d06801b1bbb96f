package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"sponsortrack/internal/dealview"
	"sponsortrack/internal/models"
)

func TestWorkbook(t *testing.T) {
	deals := []models.Deal{
		{ID: 1, AccountID: 7, StartDate: "2023-01-01", EndDate: "2023-12-31", Value: decimal.NewFromInt(100), Status: models.DealStatusActive},
		{ID: 2, AccountID: 8, StartDate: "2024-01-01", EndDate: "2024-12-31", Value: decimal.NewFromInt(200), Status: models.DealStatusDraft},
	}
	f, err := Workbook(dealview.Build(deals, dealview.Filter{}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, []string{DealsSheet, SummarySheet}, book.GetSheetList())

	rows, err := book.GetRows(DealsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, dealHeadings, rows[0])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "draft", rows[2][5])

	total, err := book.GetCellValue(SummarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "300", total)

	// 4 статуса + 3 стадии после заголовка таблицы
	summary, err := book.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Len(t, summary, 4+4+3)
	assert.Equal(t, "Build Proposal", summary[8][0])
}

func TestWorkbook_Empty(t *testing.T) {
	f, err := Workbook(dealview.Build(nil, dealview.Filter{}))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(DealsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
