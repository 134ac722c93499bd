package entity

import "fmt"

// Role rol de sesión seleccionado en el login.
type Role string

const (
	RoleMaster   Role = "MASTER"
	RoleAdmin    Role = "ADMIN" // auditor, solo lectura
	RoleOperator Role = "OPERATOR"
	RolePromoter Role = "PROMOTOR"
)

// Roles devuelve los roles válidos.
func Roles() []Role {
	return []Role{RoleMaster, RoleAdmin, RoleOperator, RolePromoter}
}

// IsValid indica si el rol es conocido.
func (r Role) IsValid() bool {
	for _, candidate := range Roles() {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRole convierte texto libre en Role.
func ParseRole(value string) (Role, error) {
	r := Role(value)
	if !r.IsValid() {
		return "", fmt.Errorf("rol inválido %q", value)
	}
	return r, nil
}

// User usuario de la sesión actual. No se persiste en el snapshot.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
