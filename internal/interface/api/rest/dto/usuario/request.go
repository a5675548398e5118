package usuario

type (
	// RolRequest references a role by name; resolution against the
	// registered roles happens in the service.
	RolRequest struct {
		Nombre string `json:"nombre"`
	}

	// Request is the admin create/update payload.
	Request struct {
		Rut             string       `json:"rut"`
		PrimerNombre    string       `json:"primerNomb"`
		SegundoNombre   string       `json:"segundoNomb"`
		PrimerApellido  string       `json:"primerApell"`
		SegundoApellido string       `json:"segundoApell"`
		FechaNacimiento string       `json:"fechaNacimiento"`
		Username        string       `json:"username"`
		Email           string       `json:"email"`
		Contrasena      string       `json:"contrasena"`
		Estado          string       `json:"estado"`
		Roles           []RolRequest `json:"roles"`
	}

	// RegistroRequest is the self-service registration payload. Roles
	// and estado are deliberately absent: self-registration cannot
	// grant them.
	RegistroRequest struct {
		Rut             string `json:"rut"`
		PrimerNombre    string `json:"primerNomb"`
		SegundoNombre   string `json:"segundoNomb"`
		PrimerApellido  string `json:"primerApell"`
		SegundoApellido string `json:"segundoApell"`
		FechaNacimiento string `json:"fechaNacimiento"`
		Username        string `json:"username"`
		Email           string `json:"email"`
		Contrasena      string `json:"contrasena"`
	}
)
