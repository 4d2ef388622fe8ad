package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto del catálogo.
const (
	CategoryCables   = "cables"
	CategorySwitches = "switches"
	CategoryLighting = "lighting"
	CategoryTools    = "tools"
	CategoryOther    = "other"
)

// Product representa un producto del catálogo de la tienda.
// Quantity es la existencia actual; MinStock el umbral de alerta de stock bajo.
type Product struct {
	ID           string
	Name         string
	SKU          string // código único en el catálogo
	Category     string
	CostPrice    decimal.Decimal // precio de compra
	SellingPrice decimal.Decimal // precio de venta
	Quantity     int64
	MinStock     int64
	SupplierID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LowStock indica si la existencia está en o por debajo del umbral mínimo.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.MinStock
}
