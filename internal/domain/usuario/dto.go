package usuario

import (
	"edutech-usuarios-api/internal/domain/rol"
)

// DTO is the reduced read projection of a user: no password hash, no
// personal data, roles narrowed to id and name.
type (
	RolDTO struct {
		ID     rol.ID
		Nombre string
	}
	DTO struct {
		ID       ID
		Username string
		Email    string
		Estado   Estado
		Roles    []RolDTO
	}
	DTOs []DTO
)

func (u *Usuario) ToDTO() DTO {
	roles := make([]RolDTO, len(u.Roles))
	for idx, r := range u.Roles {
		roles[idx] = RolDTO{ID: r.ID, Nombre: r.Nombre}
	}
	return DTO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Estado:   u.Estado,
		Roles:    roles,
	}
}
