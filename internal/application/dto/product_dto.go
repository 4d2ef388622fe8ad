package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest datos para crear un producto.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Quantity     int64           `json:"quantity"`
	MinStock     int64           `json:"min_stock"`
	SupplierID   string          `json:"supplier_id"`
}

// UpdateProductRequest datos para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	Quantity     *int64           `json:"quantity"`
	MinStock     *int64           `json:"min_stock"`
	SupplierID   *string          `json:"supplier_id"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Quantity     int64           `json:"quantity"`
	MinStock     int64           `json:"min_stock"`
	SupplierID   string          `json:"supplier_id"`
	LowStock     bool            `json:"low_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductRow una fila de la tabla de productos: registro + celdas resueltas.
type ProductRow struct {
	Key     string          `json:"key"`
	Cells   []string        `json:"cells"`
	Product ProductResponse `json:"product"`
}

// ProductListResponse página de la tabla de productos.
type ProductListResponse struct {
	Headers []string     `json:"headers"`
	Rows    []ProductRow `json:"rows"`
	Meta    TableMeta    `json:"meta"`
}
