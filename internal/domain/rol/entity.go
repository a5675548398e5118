package rol

// Permiso is a closed enumeration of permissions attachable to a role.
type Permiso string

const (
	PermisoVerUsuario       Permiso = "VER_USUARIO"
	PermisoEliminarUsuario  Permiso = "ELIMINAR_USUARIO"
	PermisoGestionarPermiso Permiso = "GESTIONAR_PERMISO"
)

// ParsePermiso resolves the wire representation of a permission. Unknown
// values never reach the service layer.
func ParsePermiso(s string) (Permiso, bool) {
	switch Permiso(s) {
	case PermisoVerUsuario, PermisoEliminarUsuario, PermisoGestionarPermiso:
		return Permiso(s), true
	}
	return "", false
}

// NombreCliente is the seed role auto-assigned to users that specify no
// explicit role. Its absence is a deployment error, not a user error.
const NombreCliente = "CLIENTE"

type (
	ID  uint64
	Rol struct {
		ID          ID
		Nombre      string
		Descripcion string
		Permisos    []Permiso
	}
	Roles []*Rol
)

// TienePermiso reports membership in the role's permission set.
func (r *Rol) TienePermiso(p Permiso) bool {
	for _, cur := range r.Permisos {
		if cur == p {
			return true
		}
	}
	return false
}

// AgregarPermiso inserts p into the permission set. Adding an already
// present permission is a no-op: the set never holds duplicates.
func (r *Rol) AgregarPermiso(p Permiso) {
	if r.TienePermiso(p) {
		return
	}
	r.Permisos = append(r.Permisos, p)
}

// RemoverPermiso drops p from the set. Removing a non-member is a silent
// no-op.
func (r *Rol) RemoverPermiso(p Permiso) {
	for idx, cur := range r.Permisos {
		if cur == p {
			r.Permisos = append(r.Permisos[:idx], r.Permisos[idx+1:]...)
			return
		}
	}
}
