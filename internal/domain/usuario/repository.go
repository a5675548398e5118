package usuario

import (
	"context"
)

type Repository interface {
	FetchUsuarios(ctx context.Context) (Usuarios, error)
	FetchUsuarioByID(ctx context.Context, id ID) (*Usuario, error)
	FetchUsuarioByRut(ctx context.Context, rut string) (*Usuario, error)
	FetchUsuarioByUsername(ctx context.Context, username string) (*Usuario, error)
	FetchUsuarioByEmail(ctx context.Context, email string) (*Usuario, error)
	FetchUsuariosByEstado(ctx context.Context, estado Estado) (Usuarios, error)
	ExistsByID(ctx context.Context, id ID) (bool, error)
	ExistsByRut(ctx context.Context, rut string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CreateUsuario(ctx context.Context, req Usuario) (*Usuario, error)
	UpdateUsuario(ctx context.Context, req Usuario) (*Usuario, error)
	DeleteUsuario(ctx context.Context, id ID) error
}
