package domain

import "time"

// Role is the staff title (cargo) assigned to a user.
type Role string

const (
	RoleAdministradorGeral Role = "administrador geral"
	RoleTesoureiroCatre    Role = "tesoureiro do catre"
	RoleDiretorJovem       Role = "diretor jovem"
	RoleAnciao             Role = "ancião"
)

// IsValid reports whether the role is one of the known staff titles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministradorGeral, RoleTesoureiroCatre, RoleDiretorJovem, RoleAnciao:
		return true
	}
	return false
}

// User represents a staff member of the application.
type User struct {
	UserID       string
	Nome         string
	Cargo        Role
	DistritoID   string
	IgrejaID     string
	Nascimento   time.Time
	Email        string
	SenhaHash    string
	DataCadastro time.Time

	// Display names resolved by a read-time join; empty when the
	// referenced row no longer exists.
	IgrejaNome   string
	DistritoNome string
}
