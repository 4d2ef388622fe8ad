package memory

import (
	"sync"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// PurchaseRepository repositorio de facturas de compra en memoria.
type PurchaseRepository struct {
	mu        sync.RWMutex
	purchases []*entity.Purchase
}

// NewPurchaseRepository construye el repositorio con las compras sembradas.
func NewPurchaseRepository(seed []*entity.Purchase) *PurchaseRepository {
	return &PurchaseRepository{purchases: seed}
}

// Create agrega la factura al inicio de la lista: la compra más reciente se
// muestra primero en la pantalla.
func (r *PurchaseRepository) Create(purchase *entity.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.purchases {
		if p.ID == purchase.ID {
			return domain.ErrDuplicate
		}
	}
	r.purchases = append([]*entity.Purchase{purchase}, r.purchases...)
	return nil
}

// GetByID busca por id; (nil, nil) si no existe.
func (r *PurchaseRepository) GetByID(id string) (*entity.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.purchases {
		if p.ID == id {
			clone := clonePurchase(p)
			return clone, nil
		}
	}
	return nil, nil
}

// Update reemplaza la factura con el mismo id conservando su posición.
func (r *PurchaseRepository) Update(purchase *entity.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.purchases {
		if p.ID == purchase.ID {
			r.purchases[i] = purchase
			return nil
		}
	}
	return domain.ErrNotFound
}

// List devuelve todas las facturas, la más reciente primero.
func (r *PurchaseRepository) List() ([]*entity.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Purchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		out = append(out, clonePurchase(p))
	}
	return out, nil
}

// Delete elimina por id.
func (r *PurchaseRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.purchases {
		if p.ID == id {
			r.purchases = append(r.purchases[:i], r.purchases[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// clonePurchase copia la factura incluyendo sus líneas, para que el llamador
// no pueda mutar el estado interno del repositorio.
func clonePurchase(p *entity.Purchase) *entity.Purchase {
	clone := *p
	clone.Items = make([]entity.PurchaseItem, len(p.Items))
	copy(clone.Items, p.Items)
	return &clone
}
