package memory

import (
	"sync"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// SupplierRepository repositorio de proveedores en memoria (solo lectura
// después de la siembra).
type SupplierRepository struct {
	mu        sync.RWMutex
	suppliers []*entity.Supplier
}

// NewSupplierRepository construye el repositorio con los proveedores sembrados.
func NewSupplierRepository(seed []*entity.Supplier) *SupplierRepository {
	return &SupplierRepository{suppliers: seed}
}

// GetByID busca por id; (nil, nil) si no existe.
func (r *SupplierRepository) GetByID(id string) (*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.suppliers {
		if s.ID == id {
			clone := *s
			return &clone, nil
		}
	}
	return nil, nil
}

// List devuelve todos los proveedores.
func (r *SupplierRepository) List() ([]*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}
