package ports

import (
	"context"

	"edutech-usuarios-api/internal/domain/rol"
)

type RolService interface {
	FindAll(ctx context.Context) (rol.Roles, error)
	FindByID(ctx context.Context, id rol.ID) (*rol.Rol, error)
	FindByNombre(ctx context.Context, nombre string) (*rol.Rol, error)
	ExistsByID(ctx context.Context, id rol.ID) (bool, error)
	ExistsByNombre(ctx context.Context, nombre string) (bool, error)
	Create(ctx context.Context, r rol.Rol) (*rol.Rol, error)
	Update(ctx context.Context, r rol.Rol) (*rol.Rol, error)
	DeleteByID(ctx context.Context, id rol.ID) error
	AgregarPermiso(ctx context.Context, rolID rol.ID, permiso rol.Permiso) (*rol.Rol, error)
	RemoverPermiso(ctx context.Context, rolID rol.ID, permiso rol.Permiso) (*rol.Rol, error)
	ObtenerRolCliente(ctx context.Context) (*rol.Rol, error)
}
