package persistence

import (
	"strings"

	"github.com/laptechvn/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ValidateSortOrder returns "ASC" or "DESC", defaulting to DESC for anything
// unrecognized so attacker-controlled input never reaches the ORDER BY clause.
func ValidateSortOrder(order string) string {
	if strings.EqualFold(order, "asc") {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField checks the field against a whitelist of sortable columns
// and falls back to the default when the field is absent or not allowed.
func ValidateSortField(field string, allowed map[string]bool, fallback string) string {
	if field != "" && allowed[field] {
		return field
	}
	return fallback
}

// Sortable column whitelists per entity. Anything not listed sorts by the
// entity's default column.
var (
	ProductSortFields = map[string]bool{
		"code":       true,
		"name":       true,
		"brand":      true,
		"created_at": true,
		"updated_at": true,
	}
	SerialSortFields = map[string]bool{
		"serial_number": true,
		"status":        true,
		"import_date":   true,
		"export_date":   true,
		"created_at":    true,
	}
	PromotionSortFields = map[string]bool{
		"name":       true,
		"start_date": true,
		"end_date":   true,
		"created_at": true,
	}
	CustomerSortFields = map[string]bool{
		"name":       true,
		"email":      true,
		"phone":      true,
		"created_at": true,
	}
	SupplierSortFields = map[string]bool{
		"name":       true,
		"email":      true,
		"created_at": true,
	}
	EmployeeSortFields = map[string]bool{
		"username":   true,
		"full_name":  true,
		"email":      true,
		"created_at": true,
	}
	StockImportSortFields = map[string]bool{
		"code":        true,
		"import_date": true,
		"total_cost":  true,
		"created_at":  true,
	}
	StockExportSortFields = map[string]bool{
		"code":        true,
		"status":      true,
		"export_date": true,
		"created_at":  true,
	}
	SaleInvoiceSortFields = map[string]bool{
		"code":           true,
		"status":         true,
		"total_amount":   true,
		"payable_amount": true,
		"created_at":     true,
	}
	TicketSortFields = map[string]bool{
		"code":        true,
		"type":        true,
		"status":      true,
		"received_at": true,
		"created_at":  true,
	}
)

// applyListOptions applies pagination and whitelisted ordering from the filter.
// Search and entity-specific filters are handled per repository.
func applyListOptions(query *gorm.DB, filter shared.Filter, sortFields map[string]bool) *gorm.DB {
	field := ValidateSortField(filter.OrderBy, sortFields, "created_at")
	query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}
