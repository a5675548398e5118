package usuario

import (
	"time"

	"edutech-usuarios-api/internal/apierror"
	"edutech-usuarios-api/internal/domain/rol"
)

// Estado is the account status enumeration. There is no enforced
// transition graph: any value may move to any other via CambiarEstado.
type Estado string

const (
	EstadoActivo    Estado = "ACTIVO"
	EstadoInactivo  Estado = "INACTIVO"
	EstadoBloqueado Estado = "BLOQUEADO"
)

func ParseEstado(s string) (Estado, bool) {
	switch Estado(s) {
	case EstadoActivo, EstadoInactivo, EstadoBloqueado:
		return Estado(s), true
	}
	return "", false
}

type (
	ID      uint64
	Usuario struct {
		ID              ID
		Rut             string
		PrimerNombre    string
		SegundoNombre   string
		PrimerApellido  string
		SegundoApellido string
		FechaNacimiento time.Time
		Username        string
		Email           string

		// Contrasena holds the plaintext only in-memory during
		// creation. It is cleared once hashed and never persisted.
		Contrasena     string
		ContrasenaHash string

		Estado        Estado
		FechaRegistro time.Time
		Roles         rol.Roles
	}
	Usuarios []*Usuario
)

// CrearCuenta stamps the account-creation defaults.
func (u *Usuario) CrearCuenta(now time.Time) {
	u.FechaRegistro = now
	u.Estado = EstadoActivo
}

// ModificarInformacion overwrites the self-service mutable fields.
func (u *Usuario) ModificarInformacion(primerNombre, segundoNombre, primerApellido, segundoApellido, email string) {
	u.PrimerNombre = primerNombre
	u.SegundoNombre = segundoNombre
	u.PrimerApellido = primerApellido
	u.SegundoApellido = segundoApellido
	u.Email = email
}

func (u *Usuario) CambiarEstado(estado Estado) {
	u.Estado = estado
}

// TieneRol reports whether a role with the given id is attached.
func (u *Usuario) TieneRol(rolID rol.ID) bool {
	for _, r := range u.Roles {
		if r.ID == rolID {
			return true
		}
	}
	return false
}

// AgregarRol appends nuevo to the role list. The list holds no two
// entries with the same id.
func (u *Usuario) AgregarRol(nuevo *rol.Rol) error {
	if u.TieneRol(nuevo.ID) {
		return apierror.Conflicto("El rol ya está asignado al usuario.")
	}
	u.Roles = append(u.Roles, nuevo)
	return nil
}

// RemoverRolPorID drops every entry matching rolID.
func (u *Usuario) RemoverRolPorID(rolID rol.ID) error {
	kept := u.Roles[:0]
	for _, r := range u.Roles {
		if r.ID != rolID {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(u.Roles) {
		return apierror.Invalido("El usuario no tiene asignado el rol con ID: %d", rolID)
	}
	u.Roles = kept
	return nil
}
