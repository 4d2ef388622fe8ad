package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// PurchaseRepository define el puerto de acceso a las facturas de compra (DIP).
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	Update(purchase *entity.Purchase) error
	List() ([]*entity.Purchase, error)
	Delete(id string) error
}
