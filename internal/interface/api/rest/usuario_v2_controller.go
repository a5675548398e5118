package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"edutech-usuarios-api/internal/apierror"
	"edutech-usuarios-api/internal/application/ports"
	rolDomain "edutech-usuarios-api/internal/domain/rol"
	domain "edutech-usuarios-api/internal/domain/usuario"
	"edutech-usuarios-api/internal/infrastructure/jwt"
	"edutech-usuarios-api/internal/interface/api/rest/dto/usuario"
	"edutech-usuarios-api/internal/interface/api/rest/middleware"
	"edutech-usuarios-api/internal/interface/api/rest/validator"
)

// UsuarioControllerV2 serves the hypermedia surface: every entity
// carries _links to itself, the collection, and its mutations.
type UsuarioControllerV2 struct {
	usuarioService ports.UsuarioService
	rolService     ports.RolService
	logger         *zap.Logger
}

type (
	usuarioModel struct {
		usuario.Response
		Links HALLinks `json:"_links"`
	}
	usuarioCollection struct {
		Embedded struct {
			Usuarios []usuarioModel `json:"usuarios"`
		} `json:"_embedded"`
		Links HALLinks `json:"_links"`
	}
)

func NewUsuarioControllerV2(
	r *gin.Engine,
	usuarioService ports.UsuarioService,
	rolService ports.RolService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UsuarioControllerV2 {
	uc := &UsuarioControllerV2{
		usuarioService: usuarioService,
		rolService:     rolService,
		logger:         logger,
	}

	r.GET(RouteUsuariosV2, uc.GetUsuariosHandler)
	r.GET(RouteUsuarioV2, uc.GetUsuarioHandler)
	r.POST(RouteUsuariosV2, middleware.AuthMiddleware(jwtService), uc.CreateUsuarioHandler)
	r.PUT(RouteUsuarioV2, middleware.AuthMiddleware(jwtService), uc.UpdateUsuarioHandler)
	r.DELETE(RouteUsuarioV2, middleware.AuthMiddleware(jwtService), uc.DeleteUsuarioHandler)

	return uc
}

func usuarioToModel(u domain.Usuario) usuarioModel {
	self := RouteUsuariosV2 + "/" + strconv.FormatUint(uint64(u.ID), 10)
	return usuarioModel{
		Response: usuario.ToResponseUsuario(u),
		Links: HALLinks{
			"self":     {Href: self},
			"usuarios": {Href: RouteUsuariosV2},
			"update":   {Href: self},
			"delete":   {Href: self},
		},
	}
}

func (uc *UsuarioControllerV2) GetUsuariosHandler(c *gin.Context) {
	usuarios, err := uc.usuarioService.FindAll(c.Request.Context())
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}

	col := usuarioCollection{Links: HALLinks{"self": {Href: RouteUsuariosV2}}}
	col.Embedded.Usuarios = make([]usuarioModel, len(usuarios))
	for idx, u := range usuarios {
		col.Embedded.Usuarios[idx] = usuarioToModel(*u)
	}

	respondHAL(c, http.StatusOK, col)
}

func (uc *UsuarioControllerV2) GetUsuarioHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("id"))
	if !ok {
		responder(c, http.StatusBadRequest, "id debe ser un entero positivo", nil)
		return
	}

	u, err := uc.usuarioService.FindByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}
	if u == nil {
		responder(c, http.StatusNotFound, "No se encontró el usuario con ID: "+c.Param("id"), nil)
		return
	}

	respondHAL(c, http.StatusOK, usuarioToModel(*u))
}

func (uc *UsuarioControllerV2) CreateUsuarioHandler(c *gin.Context) {
	var req usuario.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		responder(c, http.StatusBadRequest, "cuerpo de la petición no válido", nil)
		return
	}
	if errs := validator.ValidateUsuario(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"mensaje": "cuerpo de la petición no válido",
			"data":    errs,
		})
		return
	}

	uDomain, err := usuario.ToDomainUsuario(req)
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}

	u, err := uc.usuarioService.Create(c.Request.Context(), uDomain)
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}

	c.Header("Location", RouteUsuariosV2+"/"+strconv.FormatUint(uint64(u.ID), 10))
	respondHAL(c, http.StatusCreated, usuarioToModel(*u))
}

// UpdateUsuarioHandler is a direct save: no duplicate re-checks and no
// merge with the stored record. Role references are still resolved so
// an unknown role name cannot be persisted.
func (uc *UsuarioControllerV2) UpdateUsuarioHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("id"))
	if !ok {
		responder(c, http.StatusBadRequest, "id debe ser un entero positivo", nil)
		return
	}

	var req usuario.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		responder(c, http.StatusBadRequest, "cuerpo de la petición no válido", nil)
		return
	}
	if errs := validator.ValidateUsuario(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"mensaje": "cuerpo de la petición no válido",
			"data":    errs,
		})
		return
	}

	uDomain, err := usuario.ToDomainUsuario(req)
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}
	uDomain.ID = domain.ID(id)

	roles := make(rolDomain.Roles, 0, len(uDomain.Roles))
	for _, ref := range uDomain.Roles {
		r, err := uc.rolService.FindByNombre(c.Request.Context(), ref.Nombre)
		if err != nil {
			responderError(c, uc.logger, err)
			return
		}
		if r == nil {
			responderError(c, uc.logger, apierror.Invalido("Rol no válido: %s", ref.Nombre))
			return
		}
		roles = append(roles, r)
	}
	uDomain.Roles = roles

	u, err := uc.usuarioService.Save(c.Request.Context(), uDomain)
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}
	if u == nil {
		responder(c, http.StatusNotFound, "No se encontró el usuario con ID: "+c.Param("id"), nil)
		return
	}

	respondHAL(c, http.StatusOK, usuarioToModel(*u))
}

func (uc *UsuarioControllerV2) DeleteUsuarioHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("id"))
	if !ok {
		responder(c, http.StatusBadRequest, "id debe ser un entero positivo", nil)
		return
	}

	if err := uc.usuarioService.DeleteByID(c.Request.Context(), domain.ID(id)); err != nil {
		responderError(c, uc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
