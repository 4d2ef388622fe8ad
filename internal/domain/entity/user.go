package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio
	Name         string
	Role         string // admin, vendedor
	CreatedAt    time.Time
}
