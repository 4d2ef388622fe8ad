// Package purchase implementa el modelo de edición de una factura de compra:
// una colección ordenada de líneas editables cuyos totales por línea y total
// de factura se mantienen consistentes bajo cualquier secuencia de ediciones.
//
// El modelo tolera estados intermedios inválidos mientras se edita (p.ej. una
// línea recién agregada sin producto); la validación corre una sola vez, en la
// puerta de guardado.
package purchase

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// PriceInfo resultado de resolver un producto contra el catálogo.
type PriceInfo struct {
	Name  string
	Price decimal.Decimal
}

// ProductLookup resuelve un producto a su precio de catálogo. Se trata como un
// snapshot inmutable durante la sesión de edición; la implementación la provee
// el llamador (el caso de uso, respaldado por el repositorio de productos).
type ProductLookup interface {
	Lookup(productID string) (PriceInfo, bool)
}

// Field identifica el campo de línea que se está editando.
type Field string

// Campos editables de una línea.
const (
	FieldProduct   Field = "productId"
	FieldQuantity  Field = "quantity"
	FieldUnitPrice Field = "unitPrice"
)

// Estados del formulario. Saved es terminal: el formulario se descarta después.
const (
	StatusEditing      = "editing"
	StatusValidForSave = "valid_for_save"
	StatusSaved        = "saved"
)

// Line una línea editable de la factura. Total es derivado y se recalcula en
// cada mutación; nunca se asigna directamente desde fuera.
type Line struct {
	ID        string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// Complete indica si la línea tiene producto y cantidad positiva.
func (l Line) Complete() bool {
	return l.ProductID != "" && l.Quantity > 0
}

// Header campos de cabecera de la factura en edición.
type Header struct {
	InvoiceNumber string
	SupplierID    string
	Date          time.Time
	PaymentType   string
	PaymentStatus string
	Notes         string
}

// Form una sesión de edición de factura de compra. No es segura para uso
// concurrente: hay exactamente un escritor lógico (el usuario interactuando).
type Form struct {
	ID     string
	Header Header
	lines  []Line
	lookup ProductLookup
	saved  bool
}

// NewForm crea una sesión nueva con una línea en blanco (cantidad 1, precio 0).
func NewForm(lookup ProductLookup) *Form {
	f := &Form{
		ID: uuid.New().String(),
		Header: Header{
			Date:          time.Now(),
			PaymentType:   entity.PaymentTypeCash,
			PaymentStatus: entity.PaymentStatusPaid,
		},
		lookup: lookup,
	}
	f.lines = append(f.lines, newLine())
	return f
}

// Edit crea una sesión sembrada desde una factura existente (modo edición).
func Edit(lookup ProductLookup, p *entity.Purchase) *Form {
	f := &Form{
		ID: p.ID,
		Header: Header{
			InvoiceNumber: p.InvoiceNumber,
			SupplierID:    p.SupplierID,
			Date:          p.Date,
			PaymentType:   p.PaymentType,
			PaymentStatus: p.PaymentStatus,
			Notes:         p.Notes,
		},
		lookup: lookup,
	}
	for _, it := range p.Items {
		line := Line{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
		recalc(&line)
		f.lines = append(f.lines, line)
	}
	if len(f.lines) == 0 {
		f.lines = append(f.lines, newLine())
	}
	return f
}

func newLine() Line {
	return Line{
		ID:        uuid.New().String(),
		Quantity:  1,
		UnitPrice: decimal.Zero,
		Total:     decimal.Zero,
	}
}

// recalc es el único punto donde se deriva el total de línea. Toda mutación
// termina aquí, de modo que Total == Quantity * UnitPrice nunca se observa roto.
func recalc(l *Line) {
	l.Total = decimal.NewFromInt(l.Quantity).Mul(l.UnitPrice)
}

// Lines devuelve una copia de las líneas en su orden actual.
func (f *Form) Lines() []Line {
	out := make([]Line, len(f.lines))
	copy(out, f.lines)
	return out
}

// Line busca una línea por id.
func (f *Form) Line(id string) (Line, bool) {
	for _, l := range f.lines {
		if l.ID == id {
			return l, true
		}
	}
	return Line{}, false
}

// SetHeader reemplaza la cabecera de la factura.
func (f *Form) SetHeader(h Header) error {
	if f.saved {
		return domain.ErrConflict
	}
	f.Header = h
	return nil
}

// AddLine agrega una línea en blanco al final y la devuelve. Siempre tiene
// éxito mientras el formulario no esté guardado.
func (f *Form) AddLine() (Line, error) {
	if f.saved {
		return Line{}, domain.ErrConflict
	}
	l := newLine()
	f.lines = append(f.lines, l)
	return l, nil
}

// RemoveLine elimina la línea indicada, salvo que sea la única: el formulario
// garantiza al menos una línea en todo momento, así que en ese caso la
// operación es un no-op (no un error), cualquiera que sea el id.
func (f *Form) RemoveLine(id string) error {
	if f.saved {
		return domain.ErrConflict
	}
	if len(f.lines) == 1 {
		return nil
	}
	for i, l := range f.lines {
		if l.ID == id {
			f.lines = append(f.lines[:i], f.lines[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// SetLineField edita un campo de la línea indicada a partir del valor crudo
// tecleado por el usuario.
//
// Al seleccionar producto, el precio unitario se sobreescribe con el precio de
// catálogo, descartando cualquier edición manual previa (los productos tienen
// precio de catálogo; reelegir producto re-lee ese precio). Si el producto no
// resuelve en el catálogo, el precio queda como estaba y la inconsistencia la
// atrapa la validación de guardado.
//
// Para cantidad y precio, entrada no numérica o negativa se almacena como cero
// en lugar de interrumpir la edición con un error.
func (f *Form) SetLineField(id string, field Field, raw string) error {
	if f.saved {
		return domain.ErrConflict
	}
	for i := range f.lines {
		if f.lines[i].ID != id {
			continue
		}
		l := &f.lines[i]
		switch field {
		case FieldProduct:
			l.ProductID = raw
			if raw != "" && f.lookup != nil {
				if info, ok := f.lookup.Lookup(raw); ok {
					l.UnitPrice = info.Price
				}
			}
		case FieldQuantity:
			l.Quantity = coerceQuantity(raw)
		case FieldUnitPrice:
			l.UnitPrice = coercePrice(raw)
		default:
			return domain.ErrInvalidInput
		}
		recalc(l)
		return nil
	}
	return domain.ErrNotFound
}

// coerceQuantity interpreta la cantidad tecleada; inválida o negativa vale cero.
func coerceQuantity(raw string) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// coercePrice interpreta el precio tecleado; inválido o negativo vale cero.
func coercePrice(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// TotalAmount devuelve la suma de los totales de línea. Se calcula en cada
// lectura sobre el estado actual; no hay caché que pueda quedar obsoleta.
func (f *Form) TotalAmount() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range f.lines {
		sum = sum.Add(l.Total)
	}
	return sum
}

// Validate es la única puerta previa al guardado. Devuelve un
// *domain.ValidationError que enumera cada violación: proveedor sin
// seleccionar, líneas sin producto y líneas con cantidad no positiva.
func (f *Form) Validate() error {
	var violations []string
	if f.Header.SupplierID == "" {
		violations = append(violations, "seleccione un proveedor")
	}
	for i, l := range f.lines {
		if l.ProductID == "" {
			violations = append(violations, fmt.Sprintf("la línea %d no tiene producto seleccionado", i+1))
		}
		if l.Quantity <= 0 {
			violations = append(violations, fmt.Sprintf("la línea %d debe tener cantidad mayor que cero", i+1))
		}
	}
	if len(violations) > 0 {
		return domain.NewValidationError(violations...)
	}
	return nil
}

// Status devuelve el estado del formulario: guardado, válido para guardar o
// en edición.
func (f *Form) Status() string {
	if f.saved {
		return StatusSaved
	}
	if f.Validate() == nil {
		return StatusValidForSave
	}
	return StatusEditing
}

// Build valida y arma la factura final, marcando el formulario como guardado
// (estado terminal: mutaciones posteriores retornan ErrConflict). Si la
// validación falla, el estado queda intacto para corregir y reintentar.
func (f *Form) Build(supplierName string) (*entity.Purchase, error) {
	if f.saved {
		return nil, domain.ErrConflict
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	items := make([]entity.PurchaseItem, 0, len(f.lines))
	for _, l := range f.lines {
		items = append(items, entity.PurchaseItem{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     l.Total,
		})
	}
	now := time.Now()
	p := &entity.Purchase{
		ID:            f.ID,
		InvoiceNumber: f.Header.InvoiceNumber,
		SupplierID:    f.Header.SupplierID,
		SupplierName:  supplierName,
		Date:          f.Header.Date,
		PaymentType:   f.Header.PaymentType,
		PaymentStatus: f.Header.PaymentStatus,
		Notes:         f.Header.Notes,
		Items:         items,
		TotalAmount:   f.TotalAmount(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	f.saved = true
	return p, nil
}
