// Package export renders deal views as XLSX workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"sponsortrack/internal/dealview"
)

const (
	DealsSheet   = "Deals"
	SummarySheet = "Summary"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var dealHeadings = []string{"ID", "Account", "Start date", "End date", "Value", "Status"}

// Workbook builds a two-sheet workbook: the filtered deals and the bucket totals.
// The caller owns the returned file and must Close it.
func Workbook(v dealview.View) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", DealsSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeDeals(f, v); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSummary(f, v); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeDeals(f *excelize.File, v dealview.View) error {
	if err := f.SetSheetRow(DealsSheet, "A1", &dealHeadings); err != nil {
		return err
	}
	for i, d := range v.Deals {
		row := []interface{}{d.ID, d.AccountID, d.StartDate, d.EndDate, d.Value.InexactFloat64(), string(d.Status)}
		if err := f.SetSheetRow(DealsSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	style, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return err
	}
	if len(v.Deals) > 0 {
		return f.SetCellStyle(DealsSheet, "E2", fmt.Sprintf("E%d", len(v.Deals)+1), style)
	}
	return nil
}

func writeSummary(f *excelize.File, v dealview.View) error {
	rows := [][]interface{}{
		{"Total value", v.TotalValue.InexactFloat64()},
		{"Active value", v.ActiveValue.InexactFloat64()},
		{"Deals", len(v.Deals)},
		{"Bucket", "Deals", "Value"},
	}
	for _, b := range v.ByStatus {
		rows = append(rows, []interface{}{b.Name, len(b.Deals), b.TotalValue.InexactFloat64()})
	}
	for _, b := range v.ByStage {
		rows = append(rows, []interface{}{b.Name, len(b.Deals), b.TotalValue.InexactFloat64()})
	}
	for i := range rows {
		if err := f.SetSheetRow(SummarySheet, fmt.Sprintf("A%d", i+1), &rows[i]); err != nil {
			return err
		}
	}
	return nil
}
