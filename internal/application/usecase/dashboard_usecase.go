package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// DashboardUseCase produce los agregados del tablero. El render de las
// gráficas es responsabilidad del consumidor; aquí solo se calculan números
// sobre el estado actual, sin caché.
type DashboardUseCase struct {
	products  repository.ProductRepository
	purchases repository.PurchaseRepository
	suppliers repository.SupplierRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	products repository.ProductRepository,
	purchases repository.PurchaseRepository,
	suppliers repository.SupplierRepository,
) *DashboardUseCase {
	return &DashboardUseCase{products: products, purchases: purchases, suppliers: suppliers}
}

// Summary calcula los agregados del tablero sobre las colecciones actuales.
func (uc *DashboardUseCase) Summary() (*dto.DashboardSummary, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	purchases, err := uc.purchases.List()
	if err != nil {
		return nil, err
	}
	suppliers, err := uc.suppliers.List()
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummary{
		ProductCount:   len(products),
		SupplierCount:  len(suppliers),
		PurchaseCount:  len(purchases),
		PurchasesTotal: decimal.Zero,
	}
	for _, p := range products {
		if p.LowStock() {
			summary.LowStockCount++
		}
	}
	for _, p := range purchases {
		summary.PurchasesTotal = summary.PurchasesTotal.Add(p.TotalAmount)
		switch p.PaymentStatus {
		case entity.PaymentStatusPaid:
			summary.PaidCount++
		case entity.PaymentStatusPartial:
			summary.PartialCount++
		case entity.PaymentStatusUnpaid:
			summary.UnpaidCount++
		}
	}
	return summary, nil
}
