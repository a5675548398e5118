package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rolDomain "edutech-usuarios-api/internal/domain/rol"
	domain "edutech-usuarios-api/internal/domain/usuario"
	"edutech-usuarios-api/internal/interface/api/rest/dto/usuario"
)

func TestUsuarioControllerV2_GetUsuarioHandler_HAL(t *testing.T) {
	us := &FakeUsuarioService{
		FindByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Usuario, error) {
			return someUsuario(), nil
		},
	}
	r, _ := setupRouter(t, us, nil)

	rr := doReq(t, r, http.MethodGet, RouteUsuariosV2+"/7", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ContentTypeHAL, rr.Header().Get("Content-Type"))

	var got struct {
		Username string   `json:"username"`
		Links    HALLinks `json:"_links"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "jperez", got.Username)
	assert.Equal(t, RouteUsuariosV2+"/7", got.Links["self"].Href)
	assert.Equal(t, RouteUsuariosV2, got.Links["usuarios"].Href)
	assert.Equal(t, RouteUsuariosV2+"/7", got.Links["delete"].Href)
}

func TestUsuarioControllerV2_GetUsuariosHandler_Embedded(t *testing.T) {
	us := &FakeUsuarioService{
		FindAllFunc: func(ctx context.Context) (domain.Usuarios, error) {
			return domain.Usuarios{someUsuario()}, nil
		},
	}
	r, _ := setupRouter(t, us, nil)

	rr := doReq(t, r, http.MethodGet, RouteUsuariosV2, nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ContentTypeHAL, rr.Header().Get("Content-Type"))

	var got struct {
		Embedded struct {
			Usuarios []json.RawMessage `json:"usuarios"`
		} `json:"_embedded"`
		Links HALLinks `json:"_links"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got.Embedded.Usuarios, 1)
	assert.Equal(t, RouteUsuariosV2, got.Links["self"].Href)
}

func TestUsuarioControllerV2_CreateUsuarioHandler_Location(t *testing.T) {
	us := &FakeUsuarioService{
		CreateFunc: func(ctx context.Context, u domain.Usuario) (*domain.Usuario, error) {
			return someUsuario(), nil
		},
	}
	r, token := setupRouter(t, us, nil)

	rr := doReq(t, r, http.MethodPost, RouteUsuariosV2, validUsuarioRequest(), authHeader(token))
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, RouteUsuariosV2+"/7", rr.Header().Get("Location"))
}

func TestUsuarioControllerV2_UpdateUsuarioHandler_ResuelveRoles(t *testing.T) {
	var savedRoles rolDomain.Roles
	us := &FakeUsuarioService{
		SaveFunc: func(ctx context.Context, u domain.Usuario) (*domain.Usuario, error) {
			savedRoles = u.Roles
			return someUsuario(), nil
		},
	}
	rs := &FakeRolService{
		FindByNombreFunc: func(ctx context.Context, nombre string) (*rolDomain.Rol, error) {
			if nombre == "ADMINISTRADOR" {
				return someRol(), nil
			}
			return nil, nil
		},
	}
	r, token := setupRouter(t, us, rs)

	req := validUsuarioRequest()
	req.Roles = append(req.Roles, usuario.RolRequest{Nombre: "ADMINISTRADOR"})

	rr := doReq(t, r, http.MethodPut, RouteUsuariosV2+"/7", req, authHeader(token))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, savedRoles, 1)
	assert.Equal(t, rolDomain.ID(2), savedRoles[0].ID)
}

func TestUsuarioControllerV2_UpdateUsuarioHandler_RolDesconocido(t *testing.T) {
	rs := &FakeRolService{
		FindByNombreFunc: func(ctx context.Context, nombre string) (*rolDomain.Rol, error) {
			return nil, nil
		},
	}
	r, token := setupRouter(t, &FakeUsuarioService{}, rs)

	req := validUsuarioRequest()
	req.Roles = append(req.Roles, usuario.RolRequest{Nombre: "DOCENTE"})

	rr := doReq(t, r, http.MethodPut, RouteUsuariosV2+"/7", req, authHeader(token))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	mensaje, _ := decodeRespuesta(t, rr)
	assert.Equal(t, "Rol no válido: DOCENTE", mensaje)
}

func TestUsuarioControllerV2_DeleteUsuarioHandler(t *testing.T) {
	var deleted domain.ID
	us := &FakeUsuarioService{
		DeleteByIDFunc: func(ctx context.Context, id domain.ID) error {
			deleted = id
			return nil
		},
	}
	r, token := setupRouter(t, us, nil)

	rr := doReq(t, r, http.MethodDelete, RouteUsuariosV2+"/7", nil, authHeader(token))
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, domain.ID(7), deleted)
	assert.Empty(t, rr.Body.Bytes())
}

func TestRolControllerV2_GetRolHandler_HAL(t *testing.T) {
	rs := &FakeRolService{
		FindByIDFunc: func(ctx context.Context, id rolDomain.ID) (*rolDomain.Rol, error) {
			return someRol(), nil
		},
	}
	r, _ := setupRouter(t, nil, rs)

	rr := doReq(t, r, http.MethodGet, RouteRolesV2+"/2", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ContentTypeHAL, rr.Header().Get("Content-Type"))

	var got struct {
		Nombre string   `json:"nombre"`
		Links  HALLinks `json:"_links"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "ADMINISTRADOR", got.Nombre)
	assert.Equal(t, RouteRolesV2+"/2", got.Links["self"].Href)
	assert.Equal(t, RouteRolesV2, got.Links["roles"].Href)
}
