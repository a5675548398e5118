package auth

type LoginRequest struct {
	Username   string `json:"username"`
	Contrasena string `json:"contrasena"`
}
