package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleDistributor = "distributor"
)

// Estados de cuenta.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User es el perfil de un usuario del sistema: administrador o distribuidor (revendedor).
// El alta de cuentas (email/contraseña) la hace el proveedor de identidad externo.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash
	Name         string
	Phone        string
	Role         string // admin, distributor
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDistributor indica si el perfil es de un distribuidor.
func (u *User) IsDistributor() bool {
	return u != nil && u.Role == RoleDistributor
}
