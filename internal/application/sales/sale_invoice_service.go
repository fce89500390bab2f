package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/catalog"
	"github.com/laptechvn/backend/internal/domain/partner"
	"github.com/laptechvn/backend/internal/domain/sales"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SaleInvoiceService handles sale-invoice business operations.
// Status transitions run through the aggregate's transition table; the first
// move into PROCESSING emits the event that creates the backing stock export.
type SaleInvoiceService struct {
	invoiceRepo    sales.SaleInvoiceRepository
	customerRepo   partner.CustomerRepository
	productRepo    catalog.ProductRepository
	promotionRepo  catalog.PromotionRepository
	eventPublisher shared.EventPublisher
}

// NewSaleInvoiceService creates a new SaleInvoiceService
func NewSaleInvoiceService(
	invoiceRepo sales.SaleInvoiceRepository,
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
	promotionRepo catalog.PromotionRepository,
) *SaleInvoiceService {
	return &SaleInvoiceService{
		invoiceRepo:   invoiceRepo,
		customerRepo:  customerRepo,
		productRepo:   productRepo,
		promotionRepo: promotionRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *SaleInvoiceService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// GetByID retrieves a sale invoice by ID
func (s *SaleInvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*SaleInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToSaleInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves sale invoices with filtering and pagination
func (s *SaleInvoiceService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[SaleInvoiceResponse], error) {
	invoices, err := s.invoiceRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.invoiceRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]SaleInvoiceResponse, 0, len(invoices))
	for idx := range invoices {
		items = append(items, ToSaleInvoiceResponse(&invoices[idx]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Create records a new sale invoice in PENDING status. Each item's unit price
// comes from the configuration matched by the item's specification; a valid
// promotion reduces the payable amount.
func (s *SaleInvoiceService) Create(ctx context.Context, req CreateSaleInvoiceRequest) (*SaleInvoiceResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	code, err := s.invoiceRepo.GenerateCode(ctx)
	if err != nil {
		return nil, err
	}

	invoice, err := sales.NewSaleInvoice(code, customer.ID, customer.Name)
	if err != nil {
		return nil, err
	}
	if req.EmployeeID != nil {
		invoice.SetEmployee(*req.EmployeeID)
	}
	invoice.SetShippingAddress(req.ShippingAddress)
	invoice.SetNote(req.Note)

	for _, item := range req.Items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		spec := catalog.ParseSpecification(item.Specification)
		cfg := product.FindConfigurationBySpec(spec)
		if cfg == nil {
			return nil, shared.NewDomainError("CONFIGURATION_NOT_FOUND",
				fmt.Sprintf("No configuration of product %s matches specification %q", product.Code, item.Specification))
		}

		if _, err := invoice.AddItem(product.ID, cfg.ID, product.Name, spec.Normalize(), item.Quantity, cfg.Price); err != nil {
			return nil, err
		}
	}

	if req.PromotionID != nil {
		if err := s.applyPromotion(ctx, invoice, *req.PromotionID); err != nil {
			return nil, err
		}
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToSaleInvoiceResponse(invoice)
	return &response, nil
}

// UpdateStatus moves the invoice through the order-management statuses.
// The first transition into PROCESSING publishes the event that creates the
// backing stock export.
func (s *SaleInvoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateInvoiceStatusRequest) (*SaleInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := invoice.TransitionTo(sales.InvoiceStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, invoice)

	response := ToSaleInvoiceResponse(invoice)
	return &response, nil
}

// StartShipping moves the invoice from AWAITING_SHIPMENT to SHIPPING
func (s *SaleInvoiceService) StartShipping(ctx context.Context, id uuid.UUID) (*SaleInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := invoice.StartShipping(); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToSaleInvoiceResponse(invoice)
	return &response, nil
}

// CompleteDelivery moves the invoice from SHIPPING to COMPLETED.
// A jump straight from AWAITING_SHIPMENT is rejected by the aggregate.
func (s *SaleInvoiceService) CompleteDelivery(ctx context.Context, id uuid.UUID) (*SaleInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := invoice.CompleteDelivery(); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToSaleInvoiceResponse(invoice)
	return &response, nil
}

// Cancel cancels the invoice with a reason
func (s *SaleInvoiceService) Cancel(ctx context.Context, id uuid.UUID, req CancelInvoiceRequest) (*SaleInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := invoice.Cancel(req.Reason); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToSaleInvoiceResponse(invoice)
	return &response, nil
}

// applyPromotion validates the promotion and applies its discount to every
// covered line item
func (s *SaleInvoiceService) applyPromotion(ctx context.Context, invoice *sales.SaleInvoice, promotionID uuid.UUID) error {
	promotion, err := s.promotionRepo.FindByID(ctx, promotionID)
	if err != nil {
		return err
	}

	now := time.Now()
	if !promotion.IsCurrent(now) {
		return shared.NewDomainError("PROMOTION_EXPIRED",
			fmt.Sprintf("Promotion %s is not active at this time", promotion.Name))
	}

	discount := decimal.Zero
	for _, item := range invoice.Items {
		if !promotion.AppliesTo(item.ProductID, now) {
			continue
		}
		discounted := promotion.Apply(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		discount = discount.Add(item.Amount.Sub(discounted))
	}

	if discount.IsZero() {
		return shared.NewDomainError("PROMOTION_NOT_APPLICABLE",
			fmt.Sprintf("Promotion %s covers none of the invoice items", promotion.Name))
	}

	return invoice.ApplyPromotion(promotion.ID, discount)
}

// publishDomainEvents publishes all domain events from the invoice
func (s *SaleInvoiceService) publishDomainEvents(ctx context.Context, invoice *sales.SaleInvoice) {
	if s.eventPublisher == nil {
		return
	}
	events := invoice.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	invoice.ClearDomainEvents()
}
