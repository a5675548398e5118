package usuario

import (
	"time"
)

type (
	RolRef struct {
		ID          uint64
		Nombre      string
		Descripcion *string
		Permisos    []string
	}
	Usuario struct {
		ID              uint64
		Rut             string
		PrimerNomb      string
		SegundoNomb     *string
		PrimerApell     string
		SegundoApell    *string
		FechaNacimiento time.Time
		Username        string
		Email           string
		ContrasenaHash  string
		Estado          string
		FechaRegistro   time.Time
		Roles           []*RolRef
	}
	Usuarios []*Usuario
)
