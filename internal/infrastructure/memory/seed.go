package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
)

// Datos de demostración de la tienda de material eléctrico. Son los mismos
// registros que muestran las pantallas al montar; no hay otra fuente de datos.

// SeedSuppliers proveedores de demostración.
func SeedSuppliers() []*entity.Supplier {
	return []*entity.Supplier{
		{ID: "supplier1", Name: "شركة النور"},
		{ID: "supplier2", Name: "مؤسسة الكهرباء"},
		{ID: "supplier3", Name: "شركة الأفق"},
	}
}

// SeedProducts catálogo de demostración.
func SeedProducts() []*entity.Product {
	now := time.Now()
	build := func(id, name, sku, category string, cost, selling, qty, minStock int64, supplierID string) *entity.Product {
		return &entity.Product{
			ID:           id,
			Name:         name,
			SKU:          sku,
			Category:     category,
			CostPrice:    decimal.NewFromInt(cost),
			SellingPrice: decimal.NewFromInt(selling),
			Quantity:     qty,
			MinStock:     minStock,
			SupplierID:   supplierID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}
	return []*entity.Product{
		build("1", "كابل كهرباء 2*1.5", "CAB-2015", entity.CategoryCables, 120, 150, 50, 10, "supplier1"),
		build("2", "مفتاح ثنائي", "SW-D200", entity.CategorySwitches, 15, 25, 100, 20, "supplier2"),
		build("3", "لمبة ليد 10 واط", "LT-L010", entity.CategoryLighting, 18, 30, 75, 15, "supplier1"),
		build("4", "علبة توزيع بلاستيك", "BX-P100", entity.CategoryOther, 8, 15, 120, 30, "supplier3"),
		build("5", "قاطع كهرباء 32 أمبير", "BRK-32A", entity.CategorySwitches, 45, 65, 30, 10, "supplier2"),
	}
}

// SeedPurchases facturas de compra de demostración.
func SeedPurchases() []*entity.Purchase {
	item := func(id, productID string, qty, unitPrice int64) entity.PurchaseItem {
		price := decimal.NewFromInt(unitPrice)
		return entity.PurchaseItem{
			ID:        id,
			ProductID: productID,
			Quantity:  qty,
			UnitPrice: price,
			Total:     decimal.NewFromInt(qty).Mul(price),
		}
	}
	date := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}
	return []*entity.Purchase{
		{
			ID:            "1",
			InvoiceNumber: "INV-001",
			SupplierID:    "supplier1",
			SupplierName:  "شركة النور",
			Date:          date("2023-06-10"),
			PaymentType:   entity.PaymentTypeCash,
			PaymentStatus: entity.PaymentStatusPaid,
			Items: []entity.PurchaseItem{
				item("1", "1", 10, 120),
				item("2", "3", 15, 18),
				item("3", "5", 23, 45),
			},
			TotalAmount: decimal.NewFromInt(2505),
		},
		{
			ID:            "2",
			InvoiceNumber: "INV-002",
			SupplierID:    "supplier2",
			SupplierName:  "مؤسسة الكهرباء",
			Date:          date("2023-06-05"),
			PaymentType:   entity.PaymentTypeCredit,
			PaymentStatus: entity.PaymentStatusUnpaid,
			Items: []entity.PurchaseItem{
				item("1", "2", 50, 15),
				item("2", "4", 100, 8),
				item("3", "3", 15, 18),
			},
			TotalAmount: decimal.NewFromInt(1820),
		},
		{
			ID:            "3",
			InvoiceNumber: "INV-003",
			SupplierID:    "supplier3",
			SupplierName:  "شركة الأفق",
			Date:          date("2023-05-28"),
			PaymentType:   entity.PaymentTypeTransfer,
			PaymentStatus: entity.PaymentStatusPartial,
			Items: []entity.PurchaseItem{
				item("1", "1", 20, 120),
				item("2", "5", 40, 45),
			},
			TotalAmount: decimal.NewFromInt(4200),
		},
	}
}

// SeedUsers usuario administrador de demostración con el password hasheado
// con bcrypt. El hash se genera al arrancar; el password nunca se guarda plano.
func SeedUsers(adminUser, adminPassword string) ([]*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return []*entity.User{
		{
			ID:           uuid.New().String(),
			Username:     adminUser,
			PasswordHash: string(hash),
			Name:         "المدير",
			Role:         entity.RoleAdmin,
			CreatedAt:    time.Now(),
		},
	}, nil
}
