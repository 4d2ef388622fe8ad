// Package memory implementa los repositorios sobre colecciones en memoria.
// No hay persistencia: el estado se siembra al arrancar y vive lo que viva el
// proceso, igual que las colecciones locales de cada pantalla en el original.
package memory

import (
	"sync"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ProductRepository repositorio de productos en memoria.
// El mutex cubre el caso de varios requests HTTP simultáneos; dentro de una
// sesión de edición sigue habiendo un solo escritor lógico.
type ProductRepository struct {
	mu       sync.RWMutex
	products []*entity.Product
}

// NewProductRepository construye el repositorio con los productos sembrados.
func NewProductRepository(seed []*entity.Product) *ProductRepository {
	return &ProductRepository{products: seed}
}

// Create agrega un producto. Retorna ErrDuplicate si el SKU ya existe.
func (r *ProductRepository) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	r.products = append(r.products, product)
	return nil
}

// GetByID busca por id; (nil, nil) si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

// GetBySKU busca por SKU; (nil, nil) si no existe.
func (r *ProductRepository) GetBySKU(sku string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.SKU == sku {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto con el mismo id.
func (r *ProductRepository) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return nil
		}
	}
	return domain.ErrNotFound
}

// List devuelve todos los productos en orden de inserción.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

// Delete elimina por id.
func (r *ProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
