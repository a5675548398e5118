package usuario

import (
	"time"

	"edutech-usuarios-api/internal/interface/api/rest/dto/rol"
)

type (
	// Response is the full user view. The password hash never leaves
	// the service.
	Response struct {
		ID              uint64        `json:"id"`
		Rut             string        `json:"rut"`
		PrimerNombre    string        `json:"primerNomb"`
		SegundoNombre   string        `json:"segundoNomb,omitempty"`
		PrimerApellido  string        `json:"primerApell"`
		SegundoApellido string        `json:"segundoApell,omitempty"`
		FechaNacimiento string        `json:"fechaNacimiento"`
		Username        string        `json:"username"`
		Email           string        `json:"email"`
		Estado          string        `json:"estado"`
		FechaRegistro   time.Time     `json:"fechaRegistro"`
		Roles           rol.Responses `json:"roles"`
	}
	Responses []Response

	// InfoResponse is the reduced projection used by the /info views.
	RolRef struct {
		ID     uint64 `json:"id"`
		Nombre string `json:"nombre"`
	}
	InfoResponse struct {
		ID       uint64   `json:"id"`
		Username string   `json:"username"`
		Email    string   `json:"email"`
		Estado   string   `json:"estado"`
		Roles    []RolRef `json:"roles"`
	}
	InfoResponses []InfoResponse
)
