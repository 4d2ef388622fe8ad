package memory

import (
	"sync"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// UserRepository repositorio de usuarios en memoria.
type UserRepository struct {
	mu    sync.RWMutex
	users []*entity.User
}

// NewUserRepository construye el repositorio con los usuarios sembrados.
func NewUserRepository(seed []*entity.User) *UserRepository {
	return &UserRepository{users: seed}
}

// Create agrega un usuario. Retorna ErrDuplicate si el username ya existe.
func (r *UserRepository) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrDuplicate
		}
	}
	r.users = append(r.users, user)
	return nil
}

// FindByUsername busca por username; (nil, nil) si no existe.
func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}
