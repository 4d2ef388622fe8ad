package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemResponse una línea de factura en respuestas.
type PurchaseItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	Complete  bool            `json:"complete"`
}

// PurchaseResponse representación de una factura de compra.
type PurchaseResponse struct {
	ID            string                 `json:"id"`
	InvoiceNumber string                 `json:"invoice_number"`
	SupplierID    string                 `json:"supplier_id"`
	SupplierName  string                 `json:"supplier_name"`
	Date          time.Time              `json:"date"`
	PaymentType   string                 `json:"payment_type"`
	PaymentStatus string                 `json:"payment_status"`
	Notes         string                 `json:"notes"`
	Items         []PurchaseItemResponse `json:"items"`
	TotalAmount   decimal.Decimal        `json:"total_amount"`
}

// PurchaseRow una fila de la tabla de compras.
type PurchaseRow struct {
	Key      string           `json:"key"`
	Cells    []string         `json:"cells"`
	Purchase PurchaseResponse `json:"purchase"`
}

// PurchaseListResponse página de la tabla de compras.
type PurchaseListResponse struct {
	Headers []string      `json:"headers"`
	Rows    []PurchaseRow `json:"rows"`
	Meta    TableMeta     `json:"meta"`
}

// StartSessionRequest inicia una sesión de edición de factura. Con PurchaseID
// vacío se abre una factura nueva; con id, edición de la existente.
type StartSessionRequest struct {
	PurchaseID string `json:"purchase_id"`
}

// SessionHeaderRequest actualiza la cabecera de la sesión.
type SessionHeaderRequest struct {
	InvoiceNumber string `json:"invoice_number"`
	SupplierID    string `json:"supplier_id"`
	Date          string `json:"date"` // YYYY-MM-DD
	PaymentType   string `json:"payment_type"`
	PaymentStatus string `json:"payment_status"`
	Notes         string `json:"notes"`
}

// SetLineFieldRequest edita un campo de una línea con el valor crudo tecleado.
type SetLineFieldRequest struct {
	Field string `json:"field"` // productId | quantity | unitPrice
	Value string `json:"value"`
}

// SessionResponse snapshot de la sesión de edición con totales al día.
type SessionResponse struct {
	SessionID     string                 `json:"session_id"`
	Status        string                 `json:"status"`
	InvoiceNumber string                 `json:"invoice_number"`
	SupplierID    string                 `json:"supplier_id"`
	Date          time.Time              `json:"date"`
	PaymentType   string                 `json:"payment_type"`
	PaymentStatus string                 `json:"payment_status"`
	Notes         string                 `json:"notes"`
	Lines         []PurchaseItemResponse `json:"lines"`
	TotalAmount   decimal.Decimal        `json:"total_amount"`
}
