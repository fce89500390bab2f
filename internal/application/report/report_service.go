package report

import (
	"context"
	"time"

	"github.com/laptechvn/backend/internal/domain/report"
	"github.com/laptechvn/backend/internal/domain/shared"
)

// DefaultTopN bounds product rankings when the caller gives no limit
const DefaultTopN = 10

// ReportFilter defines the request filter for period-bound reports
type ReportFilter struct {
	StartDate time.Time `form:"start_date" time_format:"2006-01-02" binding:"required"`
	EndDate   time.Time `form:"end_date" time_format:"2006-01-02" binding:"required"`
	TopN      int       `form:"top_n"`
}

// ReportService provides application-level report operations
type ReportService struct {
	reportRepo report.Repository
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo report.Repository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

func (s *ReportService) domainFilter(filter ReportFilter) (report.Filter, error) {
	if filter.EndDate.Before(filter.StartDate) {
		return report.Filter{}, shared.NewDomainError("INVALID_PERIOD", "End date must not be before start date")
	}
	return report.Filter{
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	}, nil
}

// GetSalesSummary returns the sales summary for the period
func (s *ReportService) GetSalesSummary(ctx context.Context, filter ReportFilter) (*report.SalesSummary, error) {
	domainFilter, err := s.domainFilter(filter)
	if err != nil {
		return nil, err
	}
	return s.reportRepo.GetSalesSummary(ctx, domainFilter)
}

// GetRevenueByDay returns daily revenue buckets for the period
func (s *ReportService) GetRevenueByDay(ctx context.Context, filter ReportFilter) ([]report.RevenueByDay, error) {
	domainFilter, err := s.domainFilter(filter)
	if err != nil {
		return nil, err
	}
	return s.reportRepo.GetRevenueByDay(ctx, domainFilter)
}

// GetProductSalesRanking returns the best selling products for the period
func (s *ReportService) GetProductSalesRanking(ctx context.Context, filter ReportFilter) ([]report.ProductSalesRow, error) {
	domainFilter, err := s.domainFilter(filter)
	if err != nil {
		return nil, err
	}
	topN := filter.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	return s.reportRepo.GetProductSalesRanking(ctx, domainFilter, topN)
}

// GetStockRows returns the current on-hand position per configuration
func (s *ReportService) GetStockRows(ctx context.Context) ([]report.StockRow, error) {
	return s.reportRepo.GetStockRows(ctx)
}
