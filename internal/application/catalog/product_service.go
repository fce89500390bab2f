package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/catalog"
	"github.com/laptechvn/backend/internal/domain/shared"
)

// ProductService handles product and configuration business operations
type ProductService struct {
	productRepo    catalog.ProductRepository
	serialRepo     catalog.ProductSerialRepository
	eventPublisher shared.EventPublisher
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, serialRepo catalog.ProductSerialRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		serialRepo:  serialRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ProductService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// GetByCode retrieves a product by its business code
func (s *ProductService) GetByCode(ctx context.Context, code string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ProductResponse], error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ProductResponse, 0, len(products))
	for idx := range products {
		items = append(items, ToProductResponse(&products[idx]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Create creates a new product with its initial configurations
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_CODE",
			fmt.Sprintf("Product with code %s already exists", req.Code))
	}

	product, err := catalog.NewProduct(req.Code, req.Name, req.Brand, req.Model, req.WarrantyMonths)
	if err != nil {
		return nil, err
	}

	for _, cfg := range req.Configurations {
		spec := catalog.ParseSpecification(cfg.Specification)
		if _, err := product.AddConfiguration(spec, cfg.Price); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// Update changes a product's descriptive fields
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Brand, req.Model, req.WarrantyMonths); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// AddConfiguration adds a new hardware variant to an existing product
func (s *ProductService) AddConfiguration(ctx context.Context, productID uuid.UUID, req ConfigurationRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	spec := catalog.ParseSpecification(req.Specification)
	if _, err := product.AddConfiguration(spec, req.Price); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// UpdateConfigurationPrice reprices a configuration of a product
func (s *ProductService) UpdateConfigurationPrice(ctx context.Context, productID, configurationID uuid.UUID, req UpdateConfigurationPriceRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cfg := product.GetConfiguration(configurationID)
	if cfg == nil {
		return nil, shared.ErrNotFound
	}
	if err := cfg.SetPrice(req.Price); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// UpdateImage records the stored image path for a product. The file itself is
// written by the storage layer before this is called.
func (s *ProductService) UpdateImage(ctx context.Context, id uuid.UUID, path string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.SetImagePath(path)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Deactivate soft-deletes a product
func (s *ProductService) Deactivate(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := product.Deactivate(); err != nil {
		return err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return err
	}

	s.publishDomainEvents(ctx, product)
	return nil
}

// Activate restores a soft-deleted product
func (s *ProductService) Activate(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	product.Activate()

	return s.productRepo.Save(ctx, product)
}

// GetSerial retrieves a serial by its serial number
func (s *ProductService) GetSerial(ctx context.Context, serialNumber string) (*SerialResponse, error) {
	serial, err := s.serialRepo.FindBySerialNumber(ctx, serialNumber)
	if err != nil {
		return nil, err
	}
	response := ToSerialResponse(serial)
	return &response, nil
}

// ListSerials retrieves serials with filtering and pagination
func (s *ProductService) ListSerials(ctx context.Context, filter shared.Filter) (*shared.Paginated[SerialResponse], error) {
	serials, err := s.serialRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.serialRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]SerialResponse, 0, len(serials))
	for idx := range serials {
		items = append(items, ToSerialResponse(&serials[idx]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// publishDomainEvents publishes all domain events from the product
func (s *ProductService) publishDomainEvents(ctx context.Context, product *catalog.Product) {
	if s.eventPublisher == nil {
		return
	}
	events := product.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	product.ClearDomainEvents()
}
