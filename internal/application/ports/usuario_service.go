package ports

import (
	"context"

	"edutech-usuarios-api/internal/domain/rol"
	"edutech-usuarios-api/internal/domain/usuario"
)

type UsuarioService interface {
	FindAll(ctx context.Context) (usuario.Usuarios, error)
	FindByID(ctx context.Context, id usuario.ID) (*usuario.Usuario, error)
	FindByRut(ctx context.Context, rut string) (*usuario.Usuario, error)
	FindByUsername(ctx context.Context, username string) (*usuario.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*usuario.Usuario, error)
	FindByEstado(ctx context.Context, estado usuario.Estado) (usuario.Usuarios, error)
	ExistsByID(ctx context.Context, id usuario.ID) (bool, error)
	ExistsByRut(ctx context.Context, rut string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	Create(ctx context.Context, u usuario.Usuario) (*usuario.Usuario, error)
	RegistrarDesdeCliente(ctx context.Context, u usuario.Usuario) (*usuario.Usuario, error)
	Save(ctx context.Context, u usuario.Usuario) (*usuario.Usuario, error)
	Update(ctx context.Context, id usuario.ID, u usuario.Usuario) (*usuario.Usuario, error)
	ModificarInformacion(ctx context.Context, id usuario.ID, primerNombre, segundoNombre, primerApellido, segundoApellido, email string) (*usuario.Usuario, error)
	CambiarEstado(ctx context.Context, id usuario.ID, estado usuario.Estado) (*usuario.Usuario, error)
	Desactivar(ctx context.Context, id usuario.ID) (*usuario.Usuario, error)
	DeleteByID(ctx context.Context, id usuario.ID) error

	AgregarRol(ctx context.Context, usuarioID usuario.ID, rolID rol.ID) (*usuario.Usuario, error)
	RemoverRol(ctx context.Context, usuarioID usuario.ID, rolID rol.ID) (*usuario.Usuario, error)

	FindDTOByID(ctx context.Context, id usuario.ID) (*usuario.DTO, error)
	FindDTOsByEstado(ctx context.Context, estado usuario.Estado) (usuario.DTOs, error)

	VerificarCredenciales(ctx context.Context, username, contrasena string) (bool, error)
}
