package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/laptechvn/backend/internal/domain/warranty"
	"gorm.io/gorm"
)

// GormTicketRepository implements warranty.TicketRepository using GORM
type GormTicketRepository struct {
	db *gorm.DB
}

// NewGormTicketRepository creates a new GormTicketRepository
func NewGormTicketRepository(db *gorm.DB) *GormTicketRepository {
	return &GormTicketRepository{db: db}
}

// FindByID finds a ticket by ID
func (r *GormTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*warranty.Ticket, error) {
	var ticket warranty.Ticket
	if err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

// FindByCode finds a ticket by its business code
func (r *GormTicketRepository) FindByCode(ctx context.Context, code string) (*warranty.Ticket, error) {
	var ticket warranty.Ticket
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

// FindBySerialNumber finds all tickets referencing a serial number, newest first
func (r *GormTicketRepository) FindBySerialNumber(ctx context.Context, serialNumber string) ([]warranty.Ticket, error) {
	var tickets []warranty.Ticket
	if err := r.db.WithContext(ctx).
		Where("serial_number = ?", serialNumber).
		Order("received_at DESC").
		Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// FindAll finds tickets matching the filter
func (r *GormTicketRepository) FindAll(ctx context.Context, filter shared.Filter) ([]warranty.Ticket, error) {
	var tickets []warranty.Ticket
	query := r.applyFilter(r.db.WithContext(ctx).Model(&warranty.Ticket{}), filter)
	query = applyListOptions(query, filter, TicketSortFields)

	if err := query.Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// Count counts tickets matching the filter
func (r *GormTicketRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&warranty.Ticket{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists a ticket
func (r *GormTicketRepository) Save(ctx context.Context, ticket *warranty.Ticket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

// GenerateCode generates the next ticket business code
func (r *GormTicketRepository) GenerateCode(ctx context.Context) (string, error) {
	return nextSequentialCode(ctx, r.db, &warranty.Ticket{}, "WT")
}

func (r *GormTicketRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("code ILIKE ? OR serial_number ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		}
	}

	return query
}

// Ensure GormTicketRepository implements TicketRepository
var _ warranty.TicketRepository = (*GormTicketRepository)(nil)
