package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// SupplierRepository define el puerto de acceso a proveedores (DIP).
type SupplierRepository interface {
	GetByID(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
}
