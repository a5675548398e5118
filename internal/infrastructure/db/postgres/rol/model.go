package rol

type (
	Rol struct {
		ID          uint64
		Nombre      string
		Descripcion *string
		Permisos    []string
	}
	Roles []*Rol
)
