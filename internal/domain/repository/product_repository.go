package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// ProductRepository define el puerto de acceso al catálogo (DIP).
// La implementación vive en infrastructure (en memoria en esta aplicación).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
	Delete(id string) error
}
