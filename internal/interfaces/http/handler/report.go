package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	reportapp "github.com/laptechvn/backend/internal/application/report"
)

// ReportHandler handles sales and stock report endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) bindPeriod(c *gin.Context) (reportapp.ReportFilter, bool) {
	var filter reportapp.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "start_date and end_date are required as YYYY-MM-DD")
		return reportapp.ReportFilter{}, false
	}
	return filter, true
}

// SalesSummary returns aggregate sales figures for a period
func (h *ReportHandler) SalesSummary(c *gin.Context) {
	filter, ok := h.bindPeriod(c)
	if !ok {
		return
	}
	summary, err := h.reportService.GetSalesSummary(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, summary)
}

// RevenueByDay returns per-day revenue rows for a period
func (h *ReportHandler) RevenueByDay(c *gin.Context) {
	filter, ok := h.bindPeriod(c)
	if !ok {
		return
	}
	rows, err := h.reportService.GetRevenueByDay(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, rows)
}

// ProductRanking returns the best-selling products for a period
func (h *ReportHandler) ProductRanking(c *gin.Context) {
	filter, ok := h.bindPeriod(c)
	if !ok {
		return
	}
	rows, err := h.reportService.GetProductSalesRanking(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, rows)
}

// Stock returns the current stock level per product configuration
func (h *ReportHandler) Stock(c *gin.Context) {
	rows, err := h.reportService.GetStockRows(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, rows)
}

// DownloadSalesExcel streams the period's sales report as an xlsx attachment
func (h *ReportHandler) DownloadSalesExcel(c *gin.Context) {
	filter, ok := h.bindPeriod(c)
	if !ok {
		return
	}
	export, err := h.reportService.ExportSalesExcel(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.sendAttachment(c, export)
}

// DownloadStockPDF streams the current stock report as a pdf attachment
func (h *ReportHandler) DownloadStockPDF(c *gin.Context) {
	export, err := h.reportService.ExportStockPDF(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.sendAttachment(c, export)
}

func (h *ReportHandler) sendAttachment(c *gin.Context, export *reportapp.Export) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Data)
}
