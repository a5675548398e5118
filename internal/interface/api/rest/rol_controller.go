package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"edutech-usuarios-api/internal/application/ports"
	rolDomain "edutech-usuarios-api/internal/domain/rol"
	"edutech-usuarios-api/internal/infrastructure/jwt"
	"edutech-usuarios-api/internal/interface/api/rest/dto/rol"
	"edutech-usuarios-api/internal/interface/api/rest/middleware"
	"edutech-usuarios-api/internal/interface/api/rest/validator"
)

type RolController struct {
	rolService ports.RolService
	logger     *zap.Logger
}

func NewRolController(
	r *gin.Engine,
	rolService ports.RolService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *RolController {
	rc := &RolController{
		rolService: rolService,
		logger:     logger,
	}

	r.GET(RouteRoles, rc.GetRolesHandler)
	r.GET(RouteRol, rc.GetRolHandler)
	r.POST(RouteRoles, middleware.AuthMiddleware(jwtService), rc.CreateRolHandler)
	r.PUT(RouteRol, middleware.AuthMiddleware(jwtService), rc.UpdateRolHandler)
	r.DELETE(RouteRol, middleware.AuthMiddleware(jwtService), rc.DeleteRolHandler)
	r.POST(RouteRolPermiso, middleware.AuthMiddleware(jwtService), rc.AddPermisoHandler)
	r.DELETE(RouteRolPermiso, middleware.AuthMiddleware(jwtService), rc.RemovePermisoHandler)

	return rc
}

func (rc *RolController) GetRolesHandler(c *gin.Context) {
	roles, err := rc.rolService.FindAll(c.Request.Context())
	if err != nil {
		responderError(c, rc.logger, err)
		return
	}

	if len(roles) == 0 {
		responder(c, http.StatusOK, "No hay roles registrados", rol.Responses{})
		return
	}

	responder(c, http.StatusOK, "Lista de roles", rol.ToResponseRoles(roles))
}

func (rc *RolController) GetRolHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("id"))
	if !ok {
		responder(c, http.StatusBadRequest, "id debe ser un entero positivo", nil)
		return
	}

	r, err := rc.rolService.FindByID(c.Request.Context(), rolDomain.ID(id))
	if err != nil {
		responderError(c, rc.logger, err)
		return
	}
	if r == nil {
		responder(c, http.StatusNotFound, "No se encontró el rol con ID: "+c.Param("id"), nil)
		return
	}

	responder(c, http.StatusOK, "Rol encontrado", rol.ToResponseRol(*r))
}

func (rc *RolController) CreateRolHandler(c *gin.Context) {
	var req rol.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		responder(c, http.StatusBadRequest, "cuerpo de la petición no válido", nil)
		return
	}
	if req.Nombre == "" {
		responder(c, http.StatusBadRequest, "nombre es obligatorio", nil)
		return
	}

	exists, err := rc.rolService.ExistsByNombre(c.Request.Context(), req.Nombre)
	if err != nil {
		responderError(c, rc.logger, err)
		return
	}
	if exists {
		responder(c, http.StatusConflict, "Ya existe un rol con el nombre: "+req.Nombre, nil)
		return
	}

	rDomain, err := rol.ToDomainRol(req)
	if err != nil {
		responderError(c, rc.logger, err)
		return
	}

	r, err := rc.rolService.Create(c.Request.Context(), rDomain)
	if err != nil {
		responderError(c, rc.logger, err)
		return
	}

	responder(c, http.StatusCreated, "Rol creado correctamente", rol.ToResponseRol(*r))
}

func (rc *RolController) UpdateRolHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("id"))
	if !ok {
		responder(c, http.StatusBadRequest, "id debe ser un entero positivo", nil)
		return
	}

	var req rol.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		responder(c, http.StatusBadRequest, "cuerpo de la petición no válido", nil)
		return
	}
	if req.Nombre == "" {
		responder(c, http.StatusBadRequest, "nombre es obligatorio", nil)
		return
	}

	existente, err := rc.rolService.FindByID(c.Request.Context(), rolDomain.ID(id))
	if err != nil {
		responderError(c, rc.logger, err)
		return
	}
	if existente == nil {
		responder(c, http.StatusNotFound, "No se encontró el rol con ID: "+c.Param("id"), nil)
		return
	}

	// Renaming to a taken name conflicts; keeping the current name
	// never does.
	if existente.Nombre != req.Nombre {
		exists, err := rc.rolService.ExistsByNombre(c.Request.Context(), req.Nombre)
		if err != nil {
			responderError(c, rc.logger, err)
			return
		}
		if exists {
			responder(c, http.StatusConflict, "Ya existe un rol con el nombre: "+req.Nombre, nil)
			return
		}
	}

	rDomain, err := rol.ToDomainRol(req)
	if err != nil {
		responderError(c, rc.logger, err)
		return
	}
	rDomain.ID = rolDomain.ID(id)

	r, err := rc.rolService.Update(c.Request.Context(), rDomain)
	if err != nil {
		responderError(c, rc.logger, err)
		return
	}
	if r == nil {
		responder(c, http.StatusNotFound, "No se encontró el rol con ID: "+c.Param("id"), nil)
		return
	}

	responder(c, http.StatusOK, "Rol actualizado correctamente", rol.ToResponseRol(*r))
}

func (rc *RolController) DeleteRolHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("id"))
	if !ok {
		responder(c, http.StatusBadRequest, "id debe ser un entero positivo", nil)
		return
	}

	if err := rc.rolService.DeleteByID(c.Request.Context(), rolDomain.ID(id)); err != nil {
		responderError(c, rc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (rc *RolController) AddPermisoHandler(c *gin.Context) {
	id, permiso, ok := rc.permisoParams(c)
	if !ok {
		return
	}

	r, err := rc.rolService.AgregarPermiso(c.Request.Context(), id, permiso)
	if err != nil {
		responderError(c, rc.logger, err)
		return
	}
	if r == nil {
		responder(c, http.StatusNotFound, "No se encontró el rol con ID: "+c.Param("id"), nil)
		return
	}

	responder(c, http.StatusOK, "Permiso agregado correctamente", rol.ToResponseRol(*r))
}

func (rc *RolController) RemovePermisoHandler(c *gin.Context) {
	id, permiso, ok := rc.permisoParams(c)
	if !ok {
		return
	}

	r, err := rc.rolService.RemoverPermiso(c.Request.Context(), id, permiso)
	if err != nil {
		responderError(c, rc.logger, err)
		return
	}
	if r == nil {
		responder(c, http.StatusNotFound, "No se encontró el rol con ID: "+c.Param("id"), nil)
		return
	}

	responder(c, http.StatusOK, "Permiso eliminado correctamente", rol.ToResponseRol(*r))
}

// permisoParams rejects unknown permission values before they reach the
// service layer.
func (rc *RolController) permisoParams(c *gin.Context) (rolDomain.ID, rolDomain.Permiso, bool) {
	id, ok := validator.ParseID(c.Param("id"))
	if !ok {
		responder(c, http.StatusBadRequest, "id debe ser un entero positivo", nil)
		return 0, "", false
	}

	permiso, ok := rolDomain.ParsePermiso(c.Param("permiso"))
	if !ok {
		responder(c, http.StatusBadRequest, "Permiso no válido: "+c.Param("permiso"), nil)
		return 0, "", false
	}

	return rolDomain.ID(id), permiso, true
}
