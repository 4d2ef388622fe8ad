package dto

import "github.com/shopspring/decimal"

// DashboardSummary agregados estáticos que alimentan las gráficas del tablero.
// El render de las gráficas es un consumidor externo; aquí solo se producen
// los números.
type DashboardSummary struct {
	ProductCount    int             `json:"product_count"`
	LowStockCount   int             `json:"low_stock_count"`
	SupplierCount   int             `json:"supplier_count"`
	PurchaseCount   int             `json:"purchase_count"`
	PurchasesTotal  decimal.Decimal `json:"purchases_total"`
	PaidCount       int             `json:"paid_count"`
	PartialCount    int             `json:"partial_count"`
	UnpaidCount     int             `json:"unpaid_count"`
}
