package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const timestampLayout = "20060102_150405"

// Export is a binary report attachment
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportSalesExcel renders the product sales ranking for the period as an
// xlsx attachment with a timestamped filename
func (s *ReportService) ExportSalesExcel(ctx context.Context, filter ReportFilter) (*Export, error) {
	summary, err := s.GetSalesSummary(ctx, filter)
	if err != nil {
		return nil, err
	}
	ranking, err := s.GetProductSalesRanking(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Sheet1"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", "Period")
	f.SetCellValue(sheet, "B1", fmt.Sprintf("%s - %s",
		summary.PeriodStart.Format("2006-01-02"), summary.PeriodEnd.Format("2006-01-02")))
	f.SetCellValue(sheet, "A2", "Invoices")
	f.SetCellValue(sheet, "B2", summary.TotalInvoices)
	f.SetCellValue(sheet, "A3", "Units sold")
	f.SetCellValue(sheet, "B3", summary.TotalQuantity)
	f.SetCellValue(sheet, "A4", "Revenue")
	f.SetCellValue(sheet, "B4", summary.TotalRevenue.String())
	f.SetCellValue(sheet, "A5", "Discount")
	f.SetCellValue(sheet, "B5", summary.TotalDiscount.String())

	f.SetCellValue(sheet, "A7", "Code")
	f.SetCellValue(sheet, "B7", "Product")
	f.SetCellValue(sheet, "C7", "QuantitySold")
	f.SetCellValue(sheet, "D7", "Revenue")

	for i, row := range ranking {
		n := i + 8
		f.SetCellValue(sheet, fmt.Sprintf("A%d", n), row.ProductCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", n), row.ProductName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", n), row.QuantitySold)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", n), row.Revenue.String())
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}

	return &Export{
		Filename:    fmt.Sprintf("sales_report_%s.xlsx", time.Now().Format(timestampLayout)),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

// ExportStockPDF renders the current stock position as a PDF attachment with
// a timestamped filename
func (s *ReportService) ExportStockPDF(ctx context.Context) (*Export, error) {
	rows, err := s.GetStockRows(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()
	pdf.CellFormat(0, 10, "Stock Report", "", 1, "C", false, 0, "")

	pdf.SetFontSize(9)
	pdf.CellFormat(25, 7, "Code", "1", 0, "L", false, 0, "")
	pdf.CellFormat(55, 7, "Product", "1", 0, "L", false, 0, "")
	pdf.CellFormat(65, 7, "Specification", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, "Price", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 8)
	for _, row := range rows {
		pdf.CellFormat(25, 6, row.ProductCode, "1", 0, "L", false, 0, "")
		pdf.CellFormat(55, 6, row.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(65, 6, row.Specification, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", row.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, row.Price.String(), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return &Export{
		Filename:    fmt.Sprintf("stock_report_%s.pdf", time.Now().Format(timestampLayout)),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}
