package services

import (
	"context"

	"github.com/rabbitmq/amqp091-go"

	"edutech-usuarios-api/internal/domain/rol"
	"edutech-usuarios-api/internal/domain/usuario"
	"edutech-usuarios-api/internal/infrastructure/mq"
)

type fakeUsuarioRepository struct {
	FetchUsuariosFunc         func(ctx context.Context) (usuario.Usuarios, error)
	FetchUsuarioByIDFunc      func(ctx context.Context, id usuario.ID) (*usuario.Usuario, error)
	FetchUsuarioByRutFunc     func(ctx context.Context, rut string) (*usuario.Usuario, error)
	FetchUsuarioByUsernameFn  func(ctx context.Context, username string) (*usuario.Usuario, error)
	FetchUsuarioByEmailFunc   func(ctx context.Context, email string) (*usuario.Usuario, error)
	FetchUsuariosByEstadoFunc func(ctx context.Context, estado usuario.Estado) (usuario.Usuarios, error)
	ExistsByIDFunc            func(ctx context.Context, id usuario.ID) (bool, error)
	ExistsByRutFunc           func(ctx context.Context, rut string) (bool, error)
	ExistsByUsernameFunc      func(ctx context.Context, username string) (bool, error)
	ExistsByEmailFunc         func(ctx context.Context, email string) (bool, error)
	CreateUsuarioFunc         func(ctx context.Context, req usuario.Usuario) (*usuario.Usuario, error)
	UpdateUsuarioFunc         func(ctx context.Context, req usuario.Usuario) (*usuario.Usuario, error)
	DeleteUsuarioFunc         func(ctx context.Context, id usuario.ID) error
}

func (f *fakeUsuarioRepository) FetchUsuarios(ctx context.Context) (usuario.Usuarios, error) {
	return f.FetchUsuariosFunc(ctx)
}

func (f *fakeUsuarioRepository) FetchUsuarioByID(ctx context.Context, id usuario.ID) (*usuario.Usuario, error) {
	return f.FetchUsuarioByIDFunc(ctx, id)
}

func (f *fakeUsuarioRepository) FetchUsuarioByRut(ctx context.Context, rut string) (*usuario.Usuario, error) {
	return f.FetchUsuarioByRutFunc(ctx, rut)
}

func (f *fakeUsuarioRepository) FetchUsuarioByUsername(ctx context.Context, username string) (*usuario.Usuario, error) {
	return f.FetchUsuarioByUsernameFn(ctx, username)
}

func (f *fakeUsuarioRepository) FetchUsuarioByEmail(ctx context.Context, email string) (*usuario.Usuario, error) {
	return f.FetchUsuarioByEmailFunc(ctx, email)
}

func (f *fakeUsuarioRepository) FetchUsuariosByEstado(ctx context.Context, estado usuario.Estado) (usuario.Usuarios, error) {
	return f.FetchUsuariosByEstadoFunc(ctx, estado)
}

func (f *fakeUsuarioRepository) ExistsByID(ctx context.Context, id usuario.ID) (bool, error) {
	return f.ExistsByIDFunc(ctx, id)
}

func (f *fakeUsuarioRepository) ExistsByRut(ctx context.Context, rut string) (bool, error) {
	return f.ExistsByRutFunc(ctx, rut)
}

func (f *fakeUsuarioRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return f.ExistsByUsernameFunc(ctx, username)
}

func (f *fakeUsuarioRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return f.ExistsByEmailFunc(ctx, email)
}

func (f *fakeUsuarioRepository) CreateUsuario(ctx context.Context, req usuario.Usuario) (*usuario.Usuario, error) {
	return f.CreateUsuarioFunc(ctx, req)
}

func (f *fakeUsuarioRepository) UpdateUsuario(ctx context.Context, req usuario.Usuario) (*usuario.Usuario, error) {
	return f.UpdateUsuarioFunc(ctx, req)
}

func (f *fakeUsuarioRepository) DeleteUsuario(ctx context.Context, id usuario.ID) error {
	return f.DeleteUsuarioFunc(ctx, id)
}

type fakeRolRepository struct {
	FetchRolesFunc      func(ctx context.Context) (rol.Roles, error)
	FetchRolByIDFunc    func(ctx context.Context, id rol.ID) (*rol.Rol, error)
	FetchRolByNombreFn  func(ctx context.Context, nombre string) (*rol.Rol, error)
	ExistsByIDFunc      func(ctx context.Context, id rol.ID) (bool, error)
	ExistsByNombreFunc  func(ctx context.Context, nombre string) (bool, error)
	CreateRolFunc       func(ctx context.Context, req rol.Rol) (*rol.Rol, error)
	UpdateRolFunc       func(ctx context.Context, req rol.Rol) (*rol.Rol, error)
	DeleteRolFunc       func(ctx context.Context, id rol.ID) error
}

func (f *fakeRolRepository) FetchRoles(ctx context.Context) (rol.Roles, error) {
	return f.FetchRolesFunc(ctx)
}

func (f *fakeRolRepository) FetchRolByID(ctx context.Context, id rol.ID) (*rol.Rol, error) {
	return f.FetchRolByIDFunc(ctx, id)
}

func (f *fakeRolRepository) FetchRolByNombre(ctx context.Context, nombre string) (*rol.Rol, error) {
	return f.FetchRolByNombreFn(ctx, nombre)
}

func (f *fakeRolRepository) ExistsByID(ctx context.Context, id rol.ID) (bool, error) {
	return f.ExistsByIDFunc(ctx, id)
}

func (f *fakeRolRepository) ExistsByNombre(ctx context.Context, nombre string) (bool, error) {
	return f.ExistsByNombreFunc(ctx, nombre)
}

func (f *fakeRolRepository) CreateRol(ctx context.Context, req rol.Rol) (*rol.Rol, error) {
	return f.CreateRolFunc(ctx, req)
}

func (f *fakeRolRepository) UpdateRol(ctx context.Context, req rol.Rol) (*rol.Rol, error) {
	return f.UpdateRolFunc(ctx, req)
}

func (f *fakeRolRepository) DeleteRol(ctx context.Context, id rol.ID) error {
	return f.DeleteRolFunc(ctx, id)
}

// fakeRabbit only buffers published events for inspection.
type fakeRabbit struct {
	in chan mq.Event
}

func newFakeRabbit() *fakeRabbit {
	return &fakeRabbit{in: make(chan mq.Event, 16)}
}

func (f *fakeRabbit) Connect(context.Context, string) error  { return nil }
func (f *fakeRabbit) Init() error                            { return nil }
func (f *fakeRabbit) PublisherWorker(context.Context)        {}
func (f *fakeRabbit) GetInputChan() chan mq.Event            { return f.in }
func (f *fakeRabbit) GetConn() *amqp091.Connection           { return nil }
