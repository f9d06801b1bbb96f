package pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"sponsortrack/internal/dealview"
)

// ReportGenerator рисует сводку по сделкам.
type ReportGenerator struct {
	RootDir  string // куда SaveReport кладёт файлы, например "./files"
	FontPath string // TTF с кириллицей; если пусто, встроенный Helvetica
	fontName string
}

// ReportData: всё, что попадает в отчёт.
type ReportData struct {
	Title       string
	Scope       string
	View        dealview.View
	GeneratedAt time.Time
}

func NewReportGenerator(rootDir, fontPath string) *ReportGenerator {
	g := &ReportGenerator{RootDir: filepath.Clean(rootDir), FontPath: fontPath, fontName: "Helvetica"}
	if fontPath != "" {
		g.fontName = "DejaVu"
	}
	return g
}

// Render пишет PDF в w.
func (g *ReportGenerator) Render(w io.Writer, data ReportData) error {
	pdf := g.build(data)
	return pdf.Output(w)
}

// SaveReport сохраняет PDF в RootDir и возвращает путь к файлу.
func (g *ReportGenerator) SaveReport(data ReportData, filename string) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("deals_report_%s.pdf", data.GeneratedAt.Format("20060102_150405"))
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}
	pdf := g.build(data)
	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

func (g *ReportGenerator) build(data ReportData) *gofpdf.Fpdf {
	if data.Title == "" {
		data.Title = "Sponsorship deals"
	}
	if data.GeneratedAt.IsZero() {
		data.GeneratedAt = time.Now()
	}
	v := data.View

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(data.Title, false)
	pdf.SetAuthor("sponsortrack", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	g.addUTF8Font(pdf)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 9)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// ===== Заголовок
	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, data.Title, "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, "Generated "+data.GeneratedAt.Format("02.01.2006 15:04"), "", 1, "C", false, 0, "")
	g.hr(pdf)

	// ===== Фильтр и итоги
	g.sectionTitle(pdf, "Summary")
	if data.Scope != "" {
		g.kvLine(pdf, "Scope", data.Scope)
	}
	g.kvLine(pdf, "Filter", describeFilter(v.Filter))
	g.kvLine(pdf, "Deals", fmt.Sprintf("%d", len(v.Deals)))
	g.kvLine(pdf, "Total value", "$"+v.TotalValue.StringFixed(2))
	g.kvLine(pdf, "Active value", "$"+v.ActiveValue.StringFixed(2))
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "By status")
	g.bucketTable(pdf, v.ByStatus)
	pdf.Ln(3)

	g.sectionTitle(pdf, "By stage")
	g.bucketTable(pdf, v.ByStage)
	pdf.Ln(3)
	g.hr(pdf)

	// ===== Сделки
	g.sectionTitle(pdf, "Deals")
	g.dealTable(pdf, v)
	return pdf
}

func describeFilter(f dealview.Filter) string {
	if f.IsZero() {
		return "none"
	}
	var parts []string
	if f.Status != nil {
		parts = append(parts, fmt.Sprintf("status=%s", *f.Status))
	}
	if f.Year != nil {
		parts = append(parts, fmt.Sprintf("year=%d", *f.Year))
	}
	if f.Search != "" {
		parts = append(parts, fmt.Sprintf("search=%q", f.Search))
	}
	return strings.Join(parts, " ")
}

func (g *ReportGenerator) bucketTable(pdf *gofpdf.Fpdf, buckets []dealview.Bucket) {
	pdf.SetFont(g.fontName, "B", 10)
	pdf.CellFormat(70, 7, "Bucket", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Deals", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, "Value", "1", 1, "R", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	for _, b := range buckets {
		pdf.CellFormat(70, 6, b.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", len(b.Deals)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, "$"+b.TotalValue.StringFixed(2), "1", 1, "R", false, 0, "")
	}
}

func (g *ReportGenerator) dealTable(pdf *gofpdf.Fpdf, v dealview.View) {
	widths := []float64{15, 22, 28, 28, 40, 37}
	header := []string{"ID", "Account", "Start", "End", "Value", "Status"}
	pdf.SetFont(g.fontName, "B", 10)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(g.fontName, "", 9)
	if len(v.Deals) == 0 {
		pdf.CellFormat(0, 6, "No deals match the filter", "1", 1, "C", false, 0, "")
		return
	}
	for _, d := range v.Deals {
		pdf.CellFormat(widths[0], 6, fmt.Sprintf("%d", d.ID), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%d", d.AccountID), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, d.StartDate, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, d.EndDate, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, "$"+d.Value.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, string(d.Status), "1", 1, "L", false, 0, "")
	}
}

// ===== helpers =====

func (g *ReportGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *ReportGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}

func (g *ReportGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files dir: %w", err)
	}
	filename = filepath.Base(filename) // безопасность
	return filepath.Join(g.RootDir, filename), nil
}

func (g *ReportGenerator) addUTF8Font(pdf *gofpdf.Fpdf) {
	if g.FontPath == "" {
		return
	}
	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
}
