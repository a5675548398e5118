package rol

import (
	"context"
)

type Repository interface {
	FetchRoles(ctx context.Context) (Roles, error)
	FetchRolByID(ctx context.Context, id ID) (*Rol, error)
	FetchRolByNombre(ctx context.Context, nombre string) (*Rol, error)
	ExistsByID(ctx context.Context, id ID) (bool, error)
	ExistsByNombre(ctx context.Context, nombre string) (bool, error)
	CreateRol(ctx context.Context, req Rol) (*Rol, error)
	UpdateRol(ctx context.Context, req Rol) (*Rol, error)
	DeleteRol(ctx context.Context, id ID) error
}
