package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago de una factura de compra.
const (
	PaymentTypeCash     = "cash"
	PaymentTypeCredit   = "credit"
	PaymentTypeTransfer = "transfer"
)

// Estados de pago de una factura de compra.
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPartial = "partial"
	PaymentStatusUnpaid  = "unpaid"
)

// Purchase representa una factura de compra ya confirmada.
// TotalAmount es siempre la suma de los totales de línea; se fija al construir
// la factura desde el formulario y nunca se edita por separado.
type Purchase struct {
	ID            string
	InvoiceNumber string
	SupplierID    string
	SupplierName  string
	Date          time.Time
	PaymentType   string
	PaymentStatus string
	Notes         string
	Items         []PurchaseItem // al menos una línea
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PurchaseItem representa una línea de una factura de compra.
// Total es un campo derivado: Quantity * UnitPrice.
type PurchaseItem struct {
	ID        string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}
