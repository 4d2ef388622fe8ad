package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// UserRepository define el puerto de acceso a usuarios (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	FindByUsername(username string) (*entity.User, error)
}
