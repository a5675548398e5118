package services

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"edutech-usuarios-api/internal/apierror"
	"edutech-usuarios-api/internal/application/ports"
	rolDomain "edutech-usuarios-api/internal/domain/rol"
	domain "edutech-usuarios-api/internal/domain/usuario"
	"edutech-usuarios-api/internal/infrastructure/mq"
	usuarioDTO "edutech-usuarios-api/internal/interface/api/rest/dto/usuario"
)

type UsuarioService struct {
	usuarioRepository domain.Repository
	rolService        ports.RolService
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewUsuarioService(
	usuarioRepository domain.Repository,
	rolService ports.RolService,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UsuarioService {
	return &UsuarioService{
		usuarioRepository: usuarioRepository,
		rolService:        rolService,
		mq:                rabbit,
		mCounter:          mCounter,
	}
}

func (us *UsuarioService) FindAll(ctx context.Context) (domain.Usuarios, error) {
	return us.usuarioRepository.FetchUsuarios(ctx)
}

func (us *UsuarioService) FindByID(ctx context.Context, id domain.ID) (*domain.Usuario, error) {
	return us.usuarioRepository.FetchUsuarioByID(ctx, id)
}

func (us *UsuarioService) FindByRut(ctx context.Context, rut string) (*domain.Usuario, error) {
	return us.usuarioRepository.FetchUsuarioByRut(ctx, rut)
}

func (us *UsuarioService) FindByUsername(ctx context.Context, username string) (*domain.Usuario, error) {
	return us.usuarioRepository.FetchUsuarioByUsername(ctx, username)
}

func (us *UsuarioService) FindByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	return us.usuarioRepository.FetchUsuarioByEmail(ctx, email)
}

func (us *UsuarioService) FindByEstado(ctx context.Context, estado domain.Estado) (domain.Usuarios, error) {
	return us.usuarioRepository.FetchUsuariosByEstado(ctx, estado)
}

func (us *UsuarioService) ExistsByID(ctx context.Context, id domain.ID) (bool, error) {
	return us.usuarioRepository.ExistsByID(ctx, id)
}

func (us *UsuarioService) ExistsByRut(ctx context.Context, rut string) (bool, error) {
	return us.usuarioRepository.ExistsByRut(ctx, rut)
}

func (us *UsuarioService) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return us.usuarioRepository.ExistsByUsername(ctx, username)
}

func (us *UsuarioService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return us.usuarioRepository.ExistsByEmail(ctx, email)
}

// checkDuplicados runs the natural-key existence checks in a fixed
// order: username, email, rut. The first violated check determines the
// reported conflict.
func (us *UsuarioService) checkDuplicados(ctx context.Context, u domain.Usuario) error {
	exists, err := us.usuarioRepository.ExistsByUsername(ctx, u.Username)
	if err != nil {
		return err
	}
	if exists {
		return apierror.Conflicto("El nombre de usuario ya está registrado.")
	}

	exists, err = us.usuarioRepository.ExistsByEmail(ctx, u.Email)
	if err != nil {
		return err
	}
	if exists {
		return apierror.Conflicto("El email ya está registrado.")
	}

	exists, err = us.usuarioRepository.ExistsByRut(ctx, u.Rut)
	if err != nil {
		return err
	}
	if exists {
		return apierror.Conflicto("El RUT ingresado ya está registrado.")
	}

	return nil
}

// hashContrasena replaces the transient plaintext with its bcrypt hash.
// The plaintext is cleared and never persisted.
func hashContrasena(u *domain.Usuario) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.ContrasenaHash = string(hash)
	u.Contrasena = ""

	return nil
}

// resolveRoles replaces the request-supplied role references with the
// registered roles they name. An unresolvable name fails the whole
// operation: roles are never partially assigned.
func (us *UsuarioService) resolveRoles(ctx context.Context, refs rolDomain.Roles) (rolDomain.Roles, error) {
	resueltos := make(rolDomain.Roles, 0, len(refs))
	for _, ref := range refs {
		r, err := us.rolService.FindByNombre(ctx, ref.Nombre)
		if err != nil {
			return nil, err
		}
		if r == nil {
			return nil, apierror.Invalido("Rol no válido: %s", ref.Nombre)
		}
		resueltos = append(resueltos, r)
	}

	return resueltos, nil
}

// Create is the admin creation path: duplicate checks, role resolution
// (default CLIENTE when none supplied), account stamping, password
// hashing, persist.
func (us *UsuarioService) Create(ctx context.Context, u domain.Usuario) (*domain.Usuario, error) {
	if err := us.checkDuplicados(ctx, u); err != nil {
		return nil, err
	}

	if len(u.Roles) == 0 {
		cliente, err := us.rolService.ObtenerRolCliente(ctx)
		if err != nil {
			return nil, err
		}
		u.Roles = rolDomain.Roles{cliente}
	} else {
		resueltos, err := us.resolveRoles(ctx, u.Roles)
		if err != nil {
			return nil, err
		}
		u.Roles = resueltos
	}

	u.CrearCuenta(time.Now())
	if err := hashContrasena(&u); err != nil {
		return nil, err
	}

	uRet, err := us.usuarioRepository.CreateUsuario(ctx, u)
	if err != nil {
		return nil, err
	}

	us.publicar(http.MethodPost, uRet)
	us.mCounter.WithLabelValues("usuario_creado_total").Inc()

	return uRet, nil
}

// RegistrarDesdeCliente is the self-service path. Whatever roles the
// caller supplied are discarded: registration always yields exactly the
// CLIENTE role.
func (us *UsuarioService) RegistrarDesdeCliente(ctx context.Context, u domain.Usuario) (*domain.Usuario, error) {
	if err := us.checkDuplicados(ctx, u); err != nil {
		return nil, err
	}

	if err := hashContrasena(&u); err != nil {
		return nil, err
	}

	cliente, err := us.rolService.ObtenerRolCliente(ctx)
	if err != nil {
		return nil, err
	}
	u.Roles = rolDomain.Roles{cliente}

	u.CrearCuenta(time.Now())

	uRet, err := us.usuarioRepository.CreateUsuario(ctx, u)
	if err != nil {
		return nil, err
	}

	us.publicar(http.MethodPost, uRet)
	us.mCounter.WithLabelValues("usuario_registrado_total").Inc()

	return uRet, nil
}

// Save persists without duplicate checks. Records lacking a
// registration timestamp (migrated data) get stamped with now. A
// plaintext password, when present, is still hashed: the plaintext
// never reaches the store through any path.
func (us *UsuarioService) Save(ctx context.Context, u domain.Usuario) (*domain.Usuario, error) {
	if u.FechaRegistro.IsZero() {
		u.FechaRegistro = time.Now()
	}
	if u.Contrasena != "" {
		if err := hashContrasena(&u); err != nil {
			return nil, err
		}
	}

	if u.ID == 0 {
		return us.usuarioRepository.CreateUsuario(ctx, u)
	}

	return us.usuarioRepository.UpdateUsuario(ctx, u)
}

// Update is the full admin update: natural keys are re-checked for
// uniqueness only when they actually changed, so updating a field to
// its own current value never conflicts.
func (us *UsuarioService) Update(ctx context.Context, id domain.ID, u domain.Usuario) (*domain.Usuario, error) {
	actual, err := us.usuarioRepository.FetchUsuarioByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actual == nil {
		return nil, apierror.NoEncontrado("No se encontró el usuario con ID: %d", id)
	}

	if actual.Rut != u.Rut {
		exists, err := us.usuarioRepository.ExistsByRut(ctx, u.Rut)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apierror.Conflicto("El RUT ya está registrado")
		}
	}
	if actual.Username != u.Username {
		exists, err := us.usuarioRepository.ExistsByUsername(ctx, u.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apierror.Conflicto("El username ya está registrado")
		}
	}
	if actual.Email != u.Email {
		exists, err := us.usuarioRepository.ExistsByEmail(ctx, u.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apierror.Conflicto("El email ya está registrado")
		}
	}

	roles, err := us.resolveRoles(ctx, u.Roles)
	if err != nil {
		return nil, err
	}

	actual.Rut = u.Rut
	actual.Username = u.Username
	actual.FechaNacimiento = u.FechaNacimiento
	actual.Estado = u.Estado
	actual.Roles = roles
	actual.ModificarInformacion(u.PrimerNombre, u.SegundoNombre, u.PrimerApellido, u.SegundoApellido, u.Email)

	uRet, err := us.usuarioRepository.UpdateUsuario(ctx, *actual)
	if err != nil {
		return nil, err
	}

	us.publicar(http.MethodPut, uRet)
	us.mCounter.WithLabelValues("usuario_actualizado_total").Inc()

	return uRet, nil
}

// ModificarInformacion is the self-service partial update: names and
// email only.
func (us *UsuarioService) ModificarInformacion(ctx context.Context, id domain.ID, primerNombre, segundoNombre, primerApellido, segundoApellido, email string) (*domain.Usuario, error) {
	u, err := us.usuarioRepository.FetchUsuarioByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apierror.NoEncontrado("No se encontró el usuario con ID: %d", id)
	}

	if u.Email != email {
		exists, err := us.usuarioRepository.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apierror.Conflicto("El email ya está registrado por otro usuario")
		}
	}

	u.ModificarInformacion(primerNombre, segundoNombre, primerApellido, segundoApellido, email)

	uRet, err := us.usuarioRepository.UpdateUsuario(ctx, *u)
	if err != nil {
		return nil, err
	}

	us.publicar(http.MethodPut, uRet)

	return uRet, nil
}

func (us *UsuarioService) CambiarEstado(ctx context.Context, id domain.ID, estado domain.Estado) (*domain.Usuario, error) {
	u, err := us.usuarioRepository.FetchUsuarioByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apierror.NoEncontrado("No se encontró el usuario con ID: %d", id)
	}

	u.CambiarEstado(estado)

	return us.usuarioRepository.UpdateUsuario(ctx, *u)
}

// Desactivar is the soft delete: the record stays, marked INACTIVO.
func (us *UsuarioService) Desactivar(ctx context.Context, id domain.ID) (*domain.Usuario, error) {
	return us.CambiarEstado(ctx, id, domain.EstadoInactivo)
}

func (us *UsuarioService) DeleteByID(ctx context.Context, id domain.ID) error {
	u, err := us.usuarioRepository.FetchUsuarioByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return apierror.NoEncontrado("No se encontró el usuario con ID: %d", id)
	}

	if err = us.usuarioRepository.DeleteUsuario(ctx, id); err != nil {
		return err
	}

	us.publicar(http.MethodDelete, u)
	us.mCounter.WithLabelValues("usuario_eliminado_total").Inc()

	return nil
}

func (us *UsuarioService) AgregarRol(ctx context.Context, usuarioID domain.ID, rolID rolDomain.ID) (*domain.Usuario, error) {
	u, err := us.usuarioRepository.FetchUsuarioByID(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apierror.NoEncontrado("Usuario no encontrado con ID: %d", usuarioID)
	}

	r, err := us.rolService.FindByID(ctx, rolID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apierror.NoEncontrado("No se encontró el rol con ID: %d", rolID)
	}

	if err = u.AgregarRol(r); err != nil {
		return nil, err
	}

	return us.usuarioRepository.UpdateUsuario(ctx, *u)
}

func (us *UsuarioService) RemoverRol(ctx context.Context, usuarioID domain.ID, rolID rolDomain.ID) (*domain.Usuario, error) {
	u, err := us.usuarioRepository.FetchUsuarioByID(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apierror.NoEncontrado("Usuario no encontrado con ID: %d", usuarioID)
	}

	if err = u.RemoverRolPorID(rolID); err != nil {
		return nil, err
	}

	return us.usuarioRepository.UpdateUsuario(ctx, *u)
}

func (us *UsuarioService) FindDTOByID(ctx context.Context, id domain.ID) (*domain.DTO, error) {
	u, err := us.usuarioRepository.FetchUsuarioByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	dto := u.ToDTO()

	return &dto, nil
}

func (us *UsuarioService) FindDTOsByEstado(ctx context.Context, estado domain.Estado) (domain.DTOs, error) {
	usuarios, err := us.usuarioRepository.FetchUsuariosByEstado(ctx, estado)
	if err != nil {
		return nil, err
	}

	dtos := make(domain.DTOs, len(usuarios))
	for idx, u := range usuarios {
		dtos[idx] = u.ToDTO()
	}

	return dtos, nil
}

// VerificarCredenciales checks the supplied password against the stored
// one-way hash. The plaintext is never compared against a stored value.
func (us *UsuarioService) VerificarCredenciales(ctx context.Context, username, contrasena string) (bool, error) {
	u, err := us.usuarioRepository.FetchUsuarioByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, apierror.NoEncontrado("No se encontró el usuario con username: %s", username)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.ContrasenaHash), []byte(contrasena)); err != nil {
		return false, nil
	}

	return true, nil
}

func (us *UsuarioService) publicar(method string, u *domain.Usuario) {
	if u == nil {
		return
	}

	us.mq.GetInputChan() <- mq.Event{
		Id:        uuid.New(),
		TS:        time.Now(),
		Method:    method,
		UsuarioID: strconv.FormatUint(uint64(u.ID), 10),
		Payload:   usuarioDTO.ToResponseUsuario(*u),
	}
}
