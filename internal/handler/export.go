package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"github.com/fahrudins/school-lab-booking/internal/metrics"
	"github.com/fahrudins/school-lab-booking/internal/model"
	"github.com/fahrudins/school-lab-booking/internal/schedule"
	"github.com/fahrudins/school-lab-booking/internal/store"
)

// exportHeaders are the recap columns, in sheet order.
var exportHeaders = []string{"ID", "Tanggal", "Jam Mulai", "Jam Selesai", "Lab", "Kelas", "Mapel", "Guru", "Status"}

// ExportHandler produces the day recap as CSV, XLSX or a printable table.
type ExportHandler struct {
	Store *store.Store
}

func NewExportHandler(s *store.Store) *ExportHandler { return &ExportHandler{Store: s} }

func exportRow(b model.Booking) []string {
	return []string{b.ID, b.Date, b.StartTime, b.EndTime, string(b.Lab), b.RombelName, b.Subject, b.TeacherName, string(b.Status)}
}

// Export handles GET /v1/bookings/export?date=YYYY-MM-DD&format=csv|xlsx.
// One row per booking on the requested date (default today), same columns
// in both formats.
func (h *ExportHandler) Export(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date, _ = schedule.Now()
	}
	bookings := h.Store.BookingsOn(date)

	format := c.QueryParam("format")
	switch format {
	case "", "csv":
		return h.exportCSV(c, date, bookings)
	case "xlsx":
		return h.exportXLSX(c, date, bookings)
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "format must be csv or xlsx"})
	}
}

func (h *ExportHandler) exportCSV(c echo.Context, date string, bookings []model.Booking) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
	}
	for _, b := range bookings {
		if err := w.Write(exportRow(b)); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
	}

	metrics.Exports.WithLabelValues("csv").Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="rekap_lab_%s.csv"`, date))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *ExportHandler) exportXLSX(c echo.Context, date string, bookings []model.Booking) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Rekap"
	f.SetSheetName("Sheet1", sheet)
	for i, head := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, head)
	}
	for r, b := range bookings {
		for col, v := range exportRow(b) {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
	}

	metrics.Exports.WithLabelValues("xlsx").Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="rekap_lab_%s.xlsx"`, date))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// printTmpl renders the read-only schedule table for printing.  Kept
// deliberately plain: header, table, no interactivity.
var printTmpl = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Jadwal Laboratorium {{.Date}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
h1 { margin-bottom: 0; }
table { border-collapse: collapse; width: 100%; margin-top: 1em; }
th, td { border: 1px solid #333; padding: 6px 10px; text-align: left; font-size: 14px; }
th { background: #eee; }
</style>
</head>
<body>
<h1>{{.School}}</h1>
<h2>Jadwal Penggunaan Laboratorium Komputer</h2>
<p>Tanggal: {{.Date}}</p>
<table>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
</body>
</html>`))

// Print handles GET /v1/bookings/print?date=YYYY-MM-DD: the same filtered
// table as the exports, rendered as a minimal printable page.
func (h *ExportHandler) Print(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date, _ = schedule.Now()
	}
	rows := make([][]string, 0)
	for _, b := range h.Store.BookingsOn(date) {
		rows = append(rows, exportRow(b))
	}

	var buf bytes.Buffer
	err := printTmpl.Execute(&buf, map[string]any{
		"School":  store.SchoolName,
		"Date":    date,
		"Headers": exportHeaders,
		"Rows":    rows,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "render failed"})
	}
	metrics.Exports.WithLabelValues("print").Inc()
	return c.HTML(http.StatusOK, buf.String())
}
