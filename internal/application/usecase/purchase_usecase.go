package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/purchase"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	"github.com/tu-usuario/almacen-pro/pkg/datatable"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

// Etiquetas de pago que muestra la tabla de compras.
var (
	paymentTypeLabels = map[string]string{
		entity.PaymentTypeCash:     "نقدي",
		entity.PaymentTypeCredit:   "آجل",
		entity.PaymentTypeTransfer: "تحويل بنكي",
	}
	paymentStatusLabels = map[string]string{
		entity.PaymentStatusPaid:    "مدفوع",
		entity.PaymentStatusPartial: "مدفوع جزئياً",
		entity.PaymentStatusUnpaid:  "غير مدفوع",
	}
)

// catalogLookup adapta el repositorio de productos al puerto de la sesión de
// edición. El precio que resuelve es el de compra (CostPrice): es lo que se
// paga al proveedor.
type catalogLookup struct {
	repo repository.ProductRepository
}

// Lookup implementa purchase.ProductLookup.
func (c catalogLookup) Lookup(productID string) (purchase.PriceInfo, bool) {
	p, err := c.repo.GetByID(productID)
	if err != nil || p == nil {
		return purchase.PriceInfo{}, false
	}
	return purchase.PriceInfo{Name: p.Name, Price: p.CostPrice}, true
}

// PurchasePDFGenerator puerto de impresión de facturas de compra.
type PurchasePDFGenerator interface {
	GeneratePurchasePDF(ctx context.Context, purchase *entity.Purchase, productNames map[string]string) ([]byte, error)
}

// PurchaseUseCase la pantalla de compras: listado tabular de facturas y
// sesiones de edición (formulario de factura) con totales consistentes.
type PurchaseUseCase struct {
	repo      repository.PurchaseRepository
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
	pdf       PurchasePDFGenerator
	log       *logger.Logger

	mu       sync.Mutex
	sessions map[string]*purchase.Form
	editing  map[string]bool // sesiones abiertas sobre una factura existente
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	repo repository.PurchaseRepository,
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
	pdf PurchasePDFGenerator,
	log *logger.Logger,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		repo:      repo,
		products:  products,
		suppliers: suppliers,
		pdf:       pdf,
		log:       log,
		sessions:  make(map[string]*purchase.Form),
		editing:   make(map[string]bool),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado tabular
// ──────────────────────────────────────────────────────────────────────────────

func purchaseColumns() []datatable.Column[*entity.Purchase] {
	return []datatable.Column[*entity.Purchase]{
		{
			Header:   "رقم الفاتورة",
			Accessor: func(p *entity.Purchase) any { return p.InvoiceNumber },
		},
		{
			Header:   "المورد",
			Accessor: func(p *entity.Purchase) any { return p.SupplierName },
		},
		{
			Header:   "التاريخ",
			Accessor: func(p *entity.Purchase) any { return p.Date },
			Cell: func(_ any, p *entity.Purchase) string {
				return p.Date.Format("2006-01-02")
			},
		},
		{
			Header:   "المبلغ",
			Accessor: func(p *entity.Purchase) any { return p.TotalAmount },
			Cell: func(_ any, p *entity.Purchase) string {
				return fmt.Sprintf("%s ر.س", p.TotalAmount.StringFixed(2))
			},
		},
		{
			Header: "طريقة الدفع",
			Accessor: func(p *entity.Purchase) any {
				if label, ok := paymentTypeLabels[p.PaymentType]; ok {
					return label
				}
				return p.PaymentType
			},
		},
		{
			Header: "حالة الدفع",
			Accessor: func(p *entity.Purchase) any {
				if label, ok := paymentStatusLabels[p.PaymentStatus]; ok {
					return label
				}
				return p.PaymentStatus
			},
		},
	}
}

// List presenta las facturas de compra filtradas y paginadas.
func (uc *PurchaseUseCase) List(q dto.TableQuery) (*dto.PurchaseListResponse, error) {
	purchases, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	columns := purchaseColumns()

	view := datatable.Present(purchases, columns, func(p *entity.Purchase) string { return p.ID }, datatable.Params{
		Search:  q.Search,
		Page:    q.Page,
		PerPage: q.PerPage,
	})

	rows := make([]dto.PurchaseRow, 0, len(view.Rows))
	for _, r := range view.Rows {
		rows = append(rows, dto.PurchaseRow{
			Key:      r.Key,
			Cells:    r.Cells,
			Purchase: *toPurchaseResponse(r.Item),
		})
	}
	return &dto.PurchaseListResponse{
		Headers: tableHeaders(columns),
		Rows:    rows,
		Meta:    tableMeta(view),
	}, nil
}

// GetByID obtiene una factura por ID.
func (uc *PurchaseUseCase) GetByID(id string) (*dto.PurchaseResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPurchaseResponse(p), nil
}

// Delete elimina una factura por ID.
func (uc *PurchaseUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// PrintPDF genera la versión imprimible de una factura ya guardada.
func (uc *PurchaseUseCase) PrintPDF(ctx context.Context, id string) ([]byte, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	names := make(map[string]string, len(p.Items))
	for _, it := range p.Items {
		if it.ProductID == "" {
			continue
		}
		if _, ok := names[it.ProductID]; ok {
			continue
		}
		product, err := uc.products.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			names[it.ProductID] = product.Name
		}
	}
	return uc.pdf.GeneratePurchasePDF(ctx, p, names)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesiones de edición
// ──────────────────────────────────────────────────────────────────────────────

// StartSession abre una sesión de edición: factura nueva con una línea en
// blanco, o la factura existente sembrada para modificarla.
func (uc *PurchaseUseCase) StartSession(purchaseID string) (*dto.SessionResponse, error) {
	lookup := catalogLookup{repo: uc.products}

	var form *purchase.Form
	if purchaseID == "" {
		form = purchase.NewForm(lookup)
	} else {
		existing, err := uc.repo.GetByID(purchaseID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		form = purchase.Edit(lookup, existing)
	}

	uc.mu.Lock()
	uc.sessions[form.ID] = form
	if purchaseID != "" {
		uc.editing[form.ID] = true
	}
	uc.mu.Unlock()

	return toSessionResponse(form), nil
}

// session busca la sesión activa por id.
func (uc *PurchaseUseCase) session(sessionID string) (*purchase.Form, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	form, ok := uc.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return form, nil
}

// GetSession devuelve el snapshot actual de la sesión con totales al día.
func (uc *PurchaseUseCase) GetSession(sessionID string) (*dto.SessionResponse, error) {
	form, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(form), nil
}

// SetHeader actualiza la cabecera de la sesión.
func (uc *PurchaseUseCase) SetHeader(sessionID string, in dto.SessionHeaderRequest) (*dto.SessionResponse, error) {
	form, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	h := form.Header
	h.InvoiceNumber = in.InvoiceNumber
	h.SupplierID = in.SupplierID
	h.PaymentType = in.PaymentType
	h.PaymentStatus = in.PaymentStatus
	h.Notes = in.Notes
	if in.Date != "" {
		d, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		h.Date = d
	}
	if err := form.SetHeader(h); err != nil {
		return nil, err
	}
	return toSessionResponse(form), nil
}

// AddLine agrega una línea en blanco a la sesión.
func (uc *PurchaseUseCase) AddLine(sessionID string) (*dto.SessionResponse, error) {
	form, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := form.AddLine(); err != nil {
		return nil, err
	}
	return toSessionResponse(form), nil
}

// RemoveLine elimina una línea de la sesión (no-op si es la única).
func (uc *PurchaseUseCase) RemoveLine(sessionID, lineID string) (*dto.SessionResponse, error) {
	form, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	if err := form.RemoveLine(lineID); err != nil {
		return nil, err
	}
	return toSessionResponse(form), nil
}

// SetLineField edita un campo de una línea con el valor crudo del usuario.
func (uc *PurchaseUseCase) SetLineField(sessionID, lineID string, in dto.SetLineFieldRequest) (*dto.SessionResponse, error) {
	form, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	if err := form.SetLineField(lineID, purchase.Field(in.Field), in.Value); err != nil {
		return nil, err
	}
	return toSessionResponse(form), nil
}

// Save pasa la puerta de validación, arma la factura y la entrega a la
// colección; la sesión se descarta. Si la validación falla, la sesión queda
// intacta para corregir y reintentar.
func (uc *PurchaseUseCase) Save(sessionID string) (*dto.PurchaseResponse, error) {
	form, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}

	supplierName := ""
	if form.Header.SupplierID != "" {
		supplier, err := uc.suppliers.GetByID(form.Header.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier != nil {
			supplierName = supplier.Name
		}
	}

	p, err := form.Build(supplierName)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	isEdit := uc.editing[sessionID]
	delete(uc.sessions, sessionID)
	delete(uc.editing, sessionID)
	uc.mu.Unlock()

	if isEdit {
		err = uc.repo.Update(p)
	} else {
		err = uc.repo.Create(p)
	}
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("purchase_id", p.ID).
		Str("invoice_number", p.InvoiceNumber).
		Str("total", p.TotalAmount.StringFixed(2)).
		Int("lines", len(p.Items)).
		Msg("factura de compra guardada")

	return toPurchaseResponse(p), nil
}

// Cancel descarta la sesión sin guardar nada.
func (uc *PurchaseUseCase) Cancel(sessionID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.sessions[sessionID]; !ok {
		return domain.ErrNotFound
	}
	delete(uc.sessions, sessionID)
	delete(uc.editing, sessionID)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversión a DTO
// ──────────────────────────────────────────────────────────────────────────────

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	if p == nil {
		return nil
	}
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PurchaseItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
			Complete:  it.ProductID != "" && it.Quantity > 0,
		})
	}
	return &dto.PurchaseResponse{
		ID:            p.ID,
		InvoiceNumber: p.InvoiceNumber,
		SupplierID:    p.SupplierID,
		SupplierName:  p.SupplierName,
		Date:          p.Date,
		PaymentType:   p.PaymentType,
		PaymentStatus: p.PaymentStatus,
		Notes:         p.Notes,
		Items:         items,
		TotalAmount:   p.TotalAmount,
	}
}

func toSessionResponse(f *purchase.Form) *dto.SessionResponse {
	lines := make([]dto.PurchaseItemResponse, 0, len(f.Lines()))
	for _, l := range f.Lines() {
		lines = append(lines, dto.PurchaseItemResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     l.Total,
			Complete:  l.Complete(),
		})
	}
	return &dto.SessionResponse{
		SessionID:     f.ID,
		Status:        f.Status(),
		InvoiceNumber: f.Header.InvoiceNumber,
		SupplierID:    f.Header.SupplierID,
		Date:          f.Header.Date,
		PaymentType:   f.Header.PaymentType,
		PaymentStatus: f.Header.PaymentStatus,
		Notes:         f.Header.Notes,
		Lines:         lines,
		TotalAmount:   f.TotalAmount(),
	}
}
