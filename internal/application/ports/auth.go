package ports

import (
	"edutech-usuarios-api/internal/domain/usuario"
)

type Auth interface {
	GenerateToken(u *usuario.Usuario, requestPassword string) (string, error)
}
