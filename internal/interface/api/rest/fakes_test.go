package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"edutech-usuarios-api/internal/application/ports"
	rolDomain "edutech-usuarios-api/internal/domain/rol"
	domain "edutech-usuarios-api/internal/domain/usuario"
	jwtSvc "edutech-usuarios-api/internal/infrastructure/jwt"
	"edutech-usuarios-api/internal/interface/api/rest/dto/usuario"
)

type FakeUsuarioService struct {
	FindAllFunc               func(ctx context.Context) (domain.Usuarios, error)
	FindByIDFunc              func(ctx context.Context, id domain.ID) (*domain.Usuario, error)
	FindByRutFunc             func(ctx context.Context, rut string) (*domain.Usuario, error)
	FindByUsernameFunc        func(ctx context.Context, username string) (*domain.Usuario, error)
	FindByEmailFunc           func(ctx context.Context, email string) (*domain.Usuario, error)
	FindByEstadoFunc          func(ctx context.Context, estado domain.Estado) (domain.Usuarios, error)
	ExistsByIDFunc            func(ctx context.Context, id domain.ID) (bool, error)
	ExistsByRutFunc           func(ctx context.Context, rut string) (bool, error)
	ExistsByUsernameFunc      func(ctx context.Context, username string) (bool, error)
	ExistsByEmailFunc         func(ctx context.Context, email string) (bool, error)
	CreateFunc                func(ctx context.Context, u domain.Usuario) (*domain.Usuario, error)
	RegistrarDesdeClienteFunc func(ctx context.Context, u domain.Usuario) (*domain.Usuario, error)
	SaveFunc                  func(ctx context.Context, u domain.Usuario) (*domain.Usuario, error)
	UpdateFunc                func(ctx context.Context, id domain.ID, u domain.Usuario) (*domain.Usuario, error)
	ModificarInformacionFunc  func(ctx context.Context, id domain.ID, pn, sn, pa, sa, email string) (*domain.Usuario, error)
	CambiarEstadoFunc         func(ctx context.Context, id domain.ID, estado domain.Estado) (*domain.Usuario, error)
	DesactivarFunc            func(ctx context.Context, id domain.ID) (*domain.Usuario, error)
	DeleteByIDFunc            func(ctx context.Context, id domain.ID) error
	AgregarRolFunc            func(ctx context.Context, usuarioID domain.ID, rolID rolDomain.ID) (*domain.Usuario, error)
	RemoverRolFunc            func(ctx context.Context, usuarioID domain.ID, rolID rolDomain.ID) (*domain.Usuario, error)
	FindDTOByIDFunc           func(ctx context.Context, id domain.ID) (*domain.DTO, error)
	FindDTOsByEstadoFunc      func(ctx context.Context, estado domain.Estado) (domain.DTOs, error)
	VerificarCredencialesFunc func(ctx context.Context, username, contrasena string) (bool, error)
}

var errFakeNotUsed = errors.New("not used")

func (f *FakeUsuarioService) FindAll(ctx context.Context) (domain.Usuarios, error) {
	if f.FindAllFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FindAllFunc(ctx)
}
func (f *FakeUsuarioService) FindByID(ctx context.Context, id domain.ID) (*domain.Usuario, error) {
	if f.FindByIDFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FindByIDFunc(ctx, id)
}
func (f *FakeUsuarioService) FindByRut(ctx context.Context, rut string) (*domain.Usuario, error) {
	if f.FindByRutFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FindByRutFunc(ctx, rut)
}
func (f *FakeUsuarioService) FindByUsername(ctx context.Context, username string) (*domain.Usuario, error) {
	if f.FindByUsernameFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FindByUsernameFunc(ctx, username)
}
func (f *FakeUsuarioService) FindByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	if f.FindByEmailFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FindByEmailFunc(ctx, email)
}
func (f *FakeUsuarioService) FindByEstado(ctx context.Context, estado domain.Estado) (domain.Usuarios, error) {
	if f.FindByEstadoFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FindByEstadoFunc(ctx, estado)
}
func (f *FakeUsuarioService) ExistsByID(ctx context.Context, id domain.ID) (bool, error) {
	if f.ExistsByIDFunc == nil {
		return false, errFakeNotUsed
	}
	return f.ExistsByIDFunc(ctx, id)
}
func (f *FakeUsuarioService) ExistsByRut(ctx context.Context, rut string) (bool, error) {
	if f.ExistsByRutFunc == nil {
		return false, errFakeNotUsed
	}
	return f.ExistsByRutFunc(ctx, rut)
}
func (f *FakeUsuarioService) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if f.ExistsByUsernameFunc == nil {
		return false, errFakeNotUsed
	}
	return f.ExistsByUsernameFunc(ctx, username)
}
func (f *FakeUsuarioService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if f.ExistsByEmailFunc == nil {
		return false, errFakeNotUsed
	}
	return f.ExistsByEmailFunc(ctx, email)
}
func (f *FakeUsuarioService) Create(ctx context.Context, u domain.Usuario) (*domain.Usuario, error) {
	if f.CreateFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.CreateFunc(ctx, u)
}
func (f *FakeUsuarioService) RegistrarDesdeCliente(ctx context.Context, u domain.Usuario) (*domain.Usuario, error) {
	if f.RegistrarDesdeClienteFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.RegistrarDesdeClienteFunc(ctx, u)
}
func (f *FakeUsuarioService) Save(ctx context.Context, u domain.Usuario) (*domain.Usuario, error) {
	if f.SaveFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.SaveFunc(ctx, u)
}
func (f *FakeUsuarioService) Update(ctx context.Context, id domain.ID, u domain.Usuario) (*domain.Usuario, error) {
	if f.UpdateFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.UpdateFunc(ctx, id, u)
}
func (f *FakeUsuarioService) ModificarInformacion(ctx context.Context, id domain.ID, pn, sn, pa, sa, email string) (*domain.Usuario, error) {
	if f.ModificarInformacionFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.ModificarInformacionFunc(ctx, id, pn, sn, pa, sa, email)
}
func (f *FakeUsuarioService) CambiarEstado(ctx context.Context, id domain.ID, estado domain.Estado) (*domain.Usuario, error) {
	if f.CambiarEstadoFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.CambiarEstadoFunc(ctx, id, estado)
}
func (f *FakeUsuarioService) Desactivar(ctx context.Context, id domain.ID) (*domain.Usuario, error) {
	if f.DesactivarFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.DesactivarFunc(ctx, id)
}
func (f *FakeUsuarioService) DeleteByID(ctx context.Context, id domain.ID) error {
	if f.DeleteByIDFunc == nil {
		return errFakeNotUsed
	}
	return f.DeleteByIDFunc(ctx, id)
}
func (f *FakeUsuarioService) AgregarRol(ctx context.Context, usuarioID domain.ID, rolID rolDomain.ID) (*domain.Usuario, error) {
	if f.AgregarRolFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.AgregarRolFunc(ctx, usuarioID, rolID)
}
func (f *FakeUsuarioService) RemoverRol(ctx context.Context, usuarioID domain.ID, rolID rolDomain.ID) (*domain.Usuario, error) {
	if f.RemoverRolFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.RemoverRolFunc(ctx, usuarioID, rolID)
}
func (f *FakeUsuarioService) FindDTOByID(ctx context.Context, id domain.ID) (*domain.DTO, error) {
	if f.FindDTOByIDFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FindDTOByIDFunc(ctx, id)
}
func (f *FakeUsuarioService) FindDTOsByEstado(ctx context.Context, estado domain.Estado) (domain.DTOs, error) {
	if f.FindDTOsByEstadoFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FindDTOsByEstadoFunc(ctx, estado)
}
func (f *FakeUsuarioService) VerificarCredenciales(ctx context.Context, username, contrasena string) (bool, error) {
	if f.VerificarCredencialesFunc == nil {
		return false, errFakeNotUsed
	}
	return f.VerificarCredencialesFunc(ctx, username, contrasena)
}

type FakeRolService struct {
	FindAllFunc        func(ctx context.Context) (rolDomain.Roles, error)
	FindByIDFunc       func(ctx context.Context, id rolDomain.ID) (*rolDomain.Rol, error)
	FindByNombreFunc   func(ctx context.Context, nombre string) (*rolDomain.Rol, error)
	ExistsByIDFunc     func(ctx context.Context, id rolDomain.ID) (bool, error)
	ExistsByNombreFunc func(ctx context.Context, nombre string) (bool, error)
	CreateFunc         func(ctx context.Context, r rolDomain.Rol) (*rolDomain.Rol, error)
	UpdateFunc         func(ctx context.Context, r rolDomain.Rol) (*rolDomain.Rol, error)
	DeleteByIDFunc     func(ctx context.Context, id rolDomain.ID) error
	AgregarPermisoFunc func(ctx context.Context, rolID rolDomain.ID, permiso rolDomain.Permiso) (*rolDomain.Rol, error)
	RemoverPermisoFunc func(ctx context.Context, rolID rolDomain.ID, permiso rolDomain.Permiso) (*rolDomain.Rol, error)
	ObtenerClienteFunc func(ctx context.Context) (*rolDomain.Rol, error)
}

func (f *FakeRolService) FindAll(ctx context.Context) (rolDomain.Roles, error) {
	if f.FindAllFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FindAllFunc(ctx)
}
func (f *FakeRolService) FindByID(ctx context.Context, id rolDomain.ID) (*rolDomain.Rol, error) {
	if f.FindByIDFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FindByIDFunc(ctx, id)
}
func (f *FakeRolService) FindByNombre(ctx context.Context, nombre string) (*rolDomain.Rol, error) {
	if f.FindByNombreFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FindByNombreFunc(ctx, nombre)
}
func (f *FakeRolService) ExistsByID(ctx context.Context, id rolDomain.ID) (bool, error) {
	if f.ExistsByIDFunc == nil {
		return false, errFakeNotUsed
	}
	return f.ExistsByIDFunc(ctx, id)
}
func (f *FakeRolService) ExistsByNombre(ctx context.Context, nombre string) (bool, error) {
	if f.ExistsByNombreFunc == nil {
		return false, errFakeNotUsed
	}
	return f.ExistsByNombreFunc(ctx, nombre)
}
func (f *FakeRolService) Create(ctx context.Context, r rolDomain.Rol) (*rolDomain.Rol, error) {
	if f.CreateFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.CreateFunc(ctx, r)
}
func (f *FakeRolService) Update(ctx context.Context, r rolDomain.Rol) (*rolDomain.Rol, error) {
	if f.UpdateFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.UpdateFunc(ctx, r)
}
func (f *FakeRolService) DeleteByID(ctx context.Context, id rolDomain.ID) error {
	if f.DeleteByIDFunc == nil {
		return errFakeNotUsed
	}
	return f.DeleteByIDFunc(ctx, id)
}
func (f *FakeRolService) AgregarPermiso(ctx context.Context, rolID rolDomain.ID, permiso rolDomain.Permiso) (*rolDomain.Rol, error) {
	if f.AgregarPermisoFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.AgregarPermisoFunc(ctx, rolID, permiso)
}
func (f *FakeRolService) RemoverPermiso(ctx context.Context, rolID rolDomain.ID, permiso rolDomain.Permiso) (*rolDomain.Rol, error) {
	if f.RemoverPermisoFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.RemoverPermisoFunc(ctx, rolID, permiso)
}
func (f *FakeRolService) ObtenerRolCliente(ctx context.Context) (*rolDomain.Rol, error) {
	if f.ObtenerClienteFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.ObtenerClienteFunc(ctx)
}

type FakeAuth struct {
	GenerateTokenFunc func(u *domain.Usuario, requestPassword string) (string, error)
}

func (f *FakeAuth) GenerateToken(u *domain.Usuario, requestPassword string) (string, error) {
	if f.GenerateTokenFunc == nil {
		return "", errFakeNotUsed
	}
	return f.GenerateTokenFunc(u, requestPassword)
}

const testSecret = "test-secret"

func setupRouter(t *testing.T, us ports.UsuarioService, rs ports.RolService) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	logger := zap.NewNop()
	j := jwtSvc.New(testSecret)

	if us == nil {
		us = &FakeUsuarioService{}
	}
	if rs == nil {
		rs = &FakeRolService{}
	}

	NewRolController(r, rs, logger, j)
	NewUsuarioController(r, us, logger, j)
	NewRolControllerV2(r, rs, logger)
	NewUsuarioControllerV2(r, us, rs, logger, j)

	token, err := j.GenerateJWT("1", "ADMINISTRADOR", time.Hour)
	require.NoError(t, err)

	return r, token
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func authHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeRespuesta(t *testing.T, rr *httptest.ResponseRecorder) (string, json.RawMessage) {
	t.Helper()

	var resp struct {
		Mensaje string          `json:"mensaje"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Mensaje, resp.Data
}

func validUsuarioRequest() usuario.Request {
	return usuario.Request{
		Rut:             "12345678-9",
		PrimerNombre:    "Juan",
		PrimerApellido:  "Perez",
		FechaNacimiento: "1995-04-12",
		Username:        "jperez",
		Email:           "jperez@example.com",
		Contrasena:      "secretos1",
	}
}

func someUsuario() *domain.Usuario {
	return &domain.Usuario{
		ID:              7,
		Rut:             "12345678-9",
		PrimerNombre:    "Juan",
		PrimerApellido:  "Perez",
		FechaNacimiento: time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC),
		Username:        "jperez",
		Email:           "jperez@example.com",
		ContrasenaHash:  "$2a$10$hash",
		Estado:          domain.EstadoActivo,
		FechaRegistro:   time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		Roles: rolDomain.Roles{
			{ID: 1, Nombre: "CLIENTE", Permisos: []rolDomain.Permiso{rolDomain.PermisoVerUsuario}},
		},
	}
}

func someRol() *rolDomain.Rol {
	return &rolDomain.Rol{
		ID:          2,
		Nombre:      "ADMINISTRADOR",
		Descripcion: "Gestión completa",
		Permisos: []rolDomain.Permiso{
			rolDomain.PermisoVerUsuario,
			rolDomain.PermisoEliminarUsuario,
			rolDomain.PermisoGestionarPermiso,
		},
	}
}
