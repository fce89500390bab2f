package stock

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/catalog"
	"github.com/laptechvn/backend/internal/domain/sales"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/laptechvn/backend/internal/domain/stock"
)

// In-memory repository fakes backing the service tests. Finders return
// copies and Save replaces by ID, mirroring how rows behave behind GORM.

type fakeProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return product, nil
}

func (r *fakeProductRepo) FindByCode(_ context.Context, code string) (*catalog.Product, error) {
	for _, product := range r.products {
		if product.Code == code {
			return product, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0, len(r.products))
	for _, product := range r.products {
		out = append(out, *product)
	}
	return out, nil
}

func (r *fakeProductRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *fakeProductRepo) Save(_ context.Context, product *catalog.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	_, err := r.FindByCode(context.Background(), code)
	if err != nil {
		return false, nil
	}
	return true, nil
}

type fakeConfigRepo struct {
	configs map[uuid.UUID]catalog.ProductConfiguration
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{configs: make(map[uuid.UUID]catalog.ProductConfiguration)}
}

func (r *fakeConfigRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.ProductConfiguration, error) {
	cfg, ok := r.configs[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &cfg, nil
}

func (r *fakeConfigRepo) FindByProduct(_ context.Context, productID uuid.UUID) ([]catalog.ProductConfiguration, error) {
	out := make([]catalog.ProductConfiguration, 0)
	for _, cfg := range r.configs {
		if cfg.ProductID == productID {
			out = append(out, cfg)
		}
	}
	return out, nil
}

func (r *fakeConfigRepo) FindByProductAndSpec(_ context.Context, productID uuid.UUID, spec catalog.Specification) (*catalog.ProductConfiguration, error) {
	for _, cfg := range r.configs {
		if cfg.ProductID == productID && cfg.MatchesSpec(spec) {
			found := cfg
			return &found, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeConfigRepo) FindByProductAndSpecForUpdate(ctx context.Context, productID uuid.UUID, spec catalog.Specification) (*catalog.ProductConfiguration, error) {
	return r.FindByProductAndSpec(ctx, productID, spec)
}

func (r *fakeConfigRepo) Save(_ context.Context, configuration *catalog.ProductConfiguration) error {
	r.configs[configuration.ID] = *configuration
	return nil
}

func (r *fakeConfigRepo) quantityOf(id uuid.UUID) int {
	return r.configs[id].Quantity
}

type fakeSerialRepo struct {
	serials map[uuid.UUID]catalog.ProductSerial
}

func newFakeSerialRepo() *fakeSerialRepo {
	return &fakeSerialRepo{serials: make(map[uuid.UUID]catalog.ProductSerial)}
}

func (r *fakeSerialRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.ProductSerial, error) {
	serial, ok := r.serials[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &serial, nil
}

func (r *fakeSerialRepo) FindBySerialNumber(_ context.Context, serialNumber string) (*catalog.ProductSerial, error) {
	for _, serial := range r.serials {
		if serial.SerialNumber == serialNumber {
			found := serial
			return &found, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeSerialRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.ProductSerial, error) {
	return r.sorted(func(catalog.ProductSerial) bool { return true }), nil
}

func (r *fakeSerialRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.serials)), nil
}

func (r *fakeSerialRepo) FindInStockByProduct(_ context.Context, productID uuid.UUID) ([]catalog.ProductSerial, error) {
	return r.sorted(func(s catalog.ProductSerial) bool {
		return s.ProductID == productID && s.Status == catalog.SerialStatusInStock
	}), nil
}

func (r *fakeSerialRepo) FindInStockByImport(_ context.Context, productID uuid.UUID, importDate time.Time) ([]catalog.ProductSerial, error) {
	return r.sorted(func(s catalog.ProductSerial) bool {
		return s.ProductID == productID && s.Status == catalog.SerialStatusInStock && s.ImportDate.Equal(importDate)
	}), nil
}

func (r *fakeSerialRepo) FindByExportDetail(_ context.Context, exportDetailID uuid.UUID) ([]catalog.ProductSerial, error) {
	return r.sorted(func(s catalog.ProductSerial) bool {
		return s.ExportDetailID != nil && *s.ExportDetailID == exportDetailID
	}), nil
}

func (r *fakeSerialRepo) MaxSequence(_ context.Context, prefix string) (int, error) {
	maxSeq := 0
	for _, serial := range r.serials {
		if !strings.HasPrefix(serial.SerialNumber, prefix) {
			continue
		}
		seq, err := strconv.Atoi(serial.SerialNumber[len(prefix):])
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq, nil
}

func (r *fakeSerialRepo) Save(_ context.Context, serial *catalog.ProductSerial) error {
	r.serials[serial.ID] = *serial
	return nil
}

func (r *fakeSerialRepo) SaveBatch(_ context.Context, serials []*catalog.ProductSerial) error {
	for _, serial := range serials {
		r.serials[serial.ID] = *serial
	}
	return nil
}

func (r *fakeSerialRepo) DeleteBatch(_ context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		delete(r.serials, id)
	}
	return nil
}

func (r *fakeSerialRepo) sorted(keep func(catalog.ProductSerial) bool) []catalog.ProductSerial {
	out := make([]catalog.ProductSerial, 0)
	for _, serial := range r.serials {
		if keep(serial) {
			out = append(out, serial)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SerialNumber < out[j].SerialNumber })
	return out
}

func (r *fakeSerialRepo) numbersByStatus(status catalog.SerialStatus) []string {
	numbers := make([]string, 0)
	for _, serial := range r.sorted(func(s catalog.ProductSerial) bool { return s.Status == status }) {
		numbers = append(numbers, serial.SerialNumber)
	}
	return numbers
}

type fakeImportRepo struct {
	imports map[uuid.UUID]*stock.StockImport
	seq     int
}

func newFakeImportRepo() *fakeImportRepo {
	return &fakeImportRepo{imports: make(map[uuid.UUID]*stock.StockImport)}
}

func (r *fakeImportRepo) FindByID(_ context.Context, id uuid.UUID) (*stock.StockImport, error) {
	imp, ok := r.imports[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return imp, nil
}

func (r *fakeImportRepo) FindAll(_ context.Context, _ shared.Filter) ([]stock.StockImport, error) {
	out := make([]stock.StockImport, 0, len(r.imports))
	for _, imp := range r.imports {
		out = append(out, *imp)
	}
	return out, nil
}

func (r *fakeImportRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.imports)), nil
}

func (r *fakeImportRepo) Save(_ context.Context, stockImport *stock.StockImport) error {
	r.imports[stockImport.ID] = stockImport
	return nil
}

func (r *fakeImportRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.imports, id)
	return nil
}

func (r *fakeImportRepo) GenerateCode(_ context.Context) (string, error) {
	r.seq++
	return fmt.Sprintf("NK-2026-%05d", r.seq), nil
}

type fakeExportRepo struct {
	exports map[uuid.UUID]*stock.StockExport
	seq     int
}

func newFakeExportRepo() *fakeExportRepo {
	return &fakeExportRepo{exports: make(map[uuid.UUID]*stock.StockExport)}
}

func (r *fakeExportRepo) FindByID(_ context.Context, id uuid.UUID) (*stock.StockExport, error) {
	export, ok := r.exports[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return export, nil
}

func (r *fakeExportRepo) FindByInvoiceID(_ context.Context, invoiceID uuid.UUID) (*stock.StockExport, error) {
	for _, export := range r.exports {
		if export.InvoiceID != nil && *export.InvoiceID == invoiceID {
			return export, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeExportRepo) FindAll(_ context.Context, _ shared.Filter) ([]stock.StockExport, error) {
	out := make([]stock.StockExport, 0, len(r.exports))
	for _, export := range r.exports {
		out = append(out, *export)
	}
	return out, nil
}

func (r *fakeExportRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.exports)), nil
}

func (r *fakeExportRepo) Save(_ context.Context, export *stock.StockExport) error {
	r.exports[export.ID] = export
	return nil
}

func (r *fakeExportRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.exports, id)
	return nil
}

func (r *fakeExportRepo) GenerateCode(_ context.Context) (string, error) {
	r.seq++
	return fmt.Sprintf("XK-2026-%05d", r.seq), nil
}

type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]*sales.SaleInvoice
	seq      int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uuid.UUID]*sales.SaleInvoice)}
}

func (r *fakeInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*sales.SaleInvoice, error) {
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return invoice, nil
}

func (r *fakeInvoiceRepo) FindByCode(_ context.Context, code string) (*sales.SaleInvoice, error) {
	for _, invoice := range r.invoices {
		if invoice.Code == code {
			return invoice, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeInvoiceRepo) FindAll(_ context.Context, _ shared.Filter) ([]sales.SaleInvoice, error) {
	out := make([]sales.SaleInvoice, 0, len(r.invoices))
	for _, invoice := range r.invoices {
		out = append(out, *invoice)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.invoices)), nil
}

func (r *fakeInvoiceRepo) Save(_ context.Context, invoice *sales.SaleInvoice) error {
	r.invoices[invoice.ID] = invoice
	return nil
}

func (r *fakeInvoiceRepo) GenerateCode(_ context.Context) (string, error) {
	r.seq++
	return fmt.Sprintf("HD-2026-%05d", r.seq), nil
}

// Interface guards
var (
	_ catalog.ProductRepository       = (*fakeProductRepo)(nil)
	_ catalog.ConfigurationRepository = (*fakeConfigRepo)(nil)
	_ catalog.ProductSerialRepository = (*fakeSerialRepo)(nil)
	_ stock.StockImportRepository     = (*fakeImportRepo)(nil)
	_ stock.StockExportRepository     = (*fakeExportRepo)(nil)
	_ sales.SaleInvoiceRepository     = (*fakeInvoiceRepo)(nil)
)
