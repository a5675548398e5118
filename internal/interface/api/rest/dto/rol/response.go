package rol

type (
	Response struct {
		ID          uint64   `json:"id"`
		Nombre      string   `json:"nombre"`
		Descripcion string   `json:"descripcion,omitempty"`
		Permisos    []string `json:"permisos"`
	}
	Responses []Response
)
