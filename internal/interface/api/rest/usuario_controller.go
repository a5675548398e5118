package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"edutech-usuarios-api/internal/application/ports"
	rolDomain "edutech-usuarios-api/internal/domain/rol"
	domain "edutech-usuarios-api/internal/domain/usuario"
	"edutech-usuarios-api/internal/infrastructure/jwt"
	"edutech-usuarios-api/internal/interface/api/rest/dto/usuario"
	"edutech-usuarios-api/internal/interface/api/rest/middleware"
	"edutech-usuarios-api/internal/interface/api/rest/validator"
)

type UsuarioController struct {
	usuarioService ports.UsuarioService
	logger         *zap.Logger
}

func NewUsuarioController(
	r *gin.Engine,
	usuarioService ports.UsuarioService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UsuarioController {
	uc := &UsuarioController{
		usuarioService: usuarioService,
		logger:         logger,
	}

	r.GET(RouteUsuarios, uc.GetUsuariosHandler)
	r.GET(RouteUsuario, uc.GetUsuarioHandler)
	r.GET(RouteUsuarioInfo, uc.GetUsuarioInfoHandler)
	r.GET(RouteUsuarioRut, uc.GetUsuarioByRutHandler)
	r.GET(RouteUsuarioEmail, uc.GetUsuarioByEmailHandler)
	r.GET(RouteUsuarioUsername, uc.GetUsuarioByUsernameHandler)
	r.GET(RouteUsuariosEstado, uc.GetUsuariosByEstadoHandler)
	r.GET(RouteUsuariosInfoEstado, uc.GetUsuariosInfoByEstadoHandler)
	r.POST(RouteUsuarios, middleware.AuthMiddleware(jwtService), uc.CreateUsuarioHandler)
	r.POST(RouteUsuarioRegistro, uc.RegistroHandler)
	r.PUT(RouteUsuario, middleware.AuthMiddleware(jwtService), uc.UpdateUsuarioHandler)
	r.PUT(RouteUsuarioModificar, uc.ModificarHandler)
	r.POST(RouteUsuarioRol, middleware.AuthMiddleware(jwtService), uc.AgregarRolHandler)
	r.DELETE(RouteUsuarioRol, middleware.AuthMiddleware(jwtService), uc.RemoverRolHandler)

	return uc
}

func (uc *UsuarioController) GetUsuariosHandler(c *gin.Context) {
	usuarios, err := uc.usuarioService.FindAll(c.Request.Context())
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}

	if len(usuarios) == 0 {
		responder(c, http.StatusOK, "No hay usuarios registrados", usuario.Responses{})
		return
	}

	responder(c, http.StatusOK, "Lista de usuarios", usuario.ToResponseUsuarios(usuarios))
}

func (uc *UsuarioController) GetUsuarioHandler(c *gin.Context) {
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

	responder(c, http.StatusOK, "Usuario encontrado", usuario.ToResponseUsuario(*u))
}

func (uc *UsuarioController) GetUsuarioInfoHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("id"))
	if !ok {
		responder(c, http.StatusBadRequest, "id debe ser un entero positivo", nil)
		return
	}

	dto, err := uc.usuarioService.FindDTOByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}
	if dto == nil {
		responder(c, http.StatusNotFound, "No se encontró el usuario con ID: "+c.Param("id"), nil)
		return
	}

	responder(c, http.StatusOK, "Información básica del usuario", usuario.ToInfoResponse(*dto))
}

func (uc *UsuarioController) GetUsuarioByRutHandler(c *gin.Context) {
	rut := c.Param("rut")
	if !validator.IsRut(rut) {
		responder(c, http.StatusBadRequest, "formato de RUT no válido (se espera 12345678-9)", nil)
		return
	}

	u, err := uc.usuarioService.FindByRut(c.Request.Context(), rut)
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}
	if u == nil {
		responder(c, http.StatusNotFound, "No se encontró el usuario con RUT: "+rut, nil)
		return
	}

	responder(c, http.StatusOK, "Usuario con RUT encontrado", usuario.ToResponseUsuario(*u))
}

func (uc *UsuarioController) GetUsuarioByEmailHandler(c *gin.Context) {
	email := c.Param("email")

	u, err := uc.usuarioService.FindByEmail(c.Request.Context(), email)
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}
	if u == nil {
		responder(c, http.StatusNotFound, "No se encontró el usuario con email: "+email, nil)
		return
	}

	responder(c, http.StatusOK, "Usuario con email encontrado", usuario.ToResponseUsuario(*u))
}

func (uc *UsuarioController) GetUsuarioByUsernameHandler(c *gin.Context) {
	username := c.Param("username")

	u, err := uc.usuarioService.FindByUsername(c.Request.Context(), username)
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}
	if u == nil {
		responder(c, http.StatusNotFound, "No se encontró el usuario con username: "+username, nil)
		return
	}

	responder(c, http.StatusOK, "Usuario con username encontrado", usuario.ToResponseUsuario(*u))
}

func (uc *UsuarioController) GetUsuariosByEstadoHandler(c *gin.Context) {
	estado, ok := domain.ParseEstado(c.Param("estado"))
	if !ok {
		responder(c, http.StatusBadRequest, "Estado no válido: "+c.Param("estado"), nil)
		return
	}

	usuarios, err := uc.usuarioService.FindByEstado(c.Request.Context(), estado)
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}

	if len(usuarios) == 0 {
		responder(c, http.StatusOK, "No hay usuarios con ese estado.", usuario.Responses{})
		return
	}

	responder(c, http.StatusOK, "Usuarios con estado "+string(estado), usuario.ToResponseUsuarios(usuarios))
}

func (uc *UsuarioController) GetUsuariosInfoByEstadoHandler(c *gin.Context) {
	estado, ok := domain.ParseEstado(c.Param("estado"))
	if !ok {
		responder(c, http.StatusBadRequest, "Estado no válido: "+c.Param("estado"), nil)
		return
	}

	dtos, err := uc.usuarioService.FindDTOsByEstado(c.Request.Context(), estado)
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}

	if len(dtos) == 0 {
		responder(c, http.StatusOK, "No hay usuarios con ese estado.", usuario.InfoResponses{})
		return
	}

	responder(c, http.StatusOK, "Usuarios DTO con estado "+string(estado), usuario.ToInfoResponses(dtos))
}

func (uc *UsuarioController) CreateUsuarioHandler(c *gin.Context) {
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

	responder(c, http.StatusCreated, "Usuario creado correctamente", usuario.ToResponseUsuario(*u))
}

func (uc *UsuarioController) RegistroHandler(c *gin.Context) {
	var req usuario.RegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responder(c, http.StatusBadRequest, "cuerpo de la petición no válido", nil)
		return
	}
	if errs := validator.ValidateRegistro(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"mensaje": "cuerpo de la petición no válido",
			"data":    errs,
		})
		return
	}

	uDomain, err := usuario.ToDomainRegistro(req)
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}

	u, err := uc.usuarioService.RegistrarDesdeCliente(c.Request.Context(), uDomain)
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}

	responder(c, http.StatusCreated, "Usuario registrado correctamente", usuario.ToResponseUsuario(*u))
}

func (uc *UsuarioController) UpdateUsuarioHandler(c *gin.Context) {
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

	u, err := uc.usuarioService.Update(c.Request.Context(), domain.ID(id), uDomain)
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}
	if u == nil {
		responder(c, http.StatusNotFound, "No se encontró el usuario con ID: "+c.Param("id"), nil)
		return
	}

	responder(c, http.StatusOK, "Usuario actualizado correctamente", usuario.ToResponseUsuario(*u))
}

// ModificarHandler takes the self-service fields as query parameters.
func (uc *UsuarioController) ModificarHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("id"))
	if !ok {
		responder(c, http.StatusBadRequest, "id debe ser un entero positivo", nil)
		return
	}

	primerNomb := c.Query("primerNomb")
	segundoNomb := c.Query("segundoNomb")
	primerApell := c.Query("primerApell")
	segundoApell := c.Query("segundoApell")
	email := c.Query("email")

	if primerNomb == "" || primerApell == "" || email == "" {
		responder(c, http.StatusBadRequest, "primerNomb, primerApell y email son obligatorios", nil)
		return
	}

	u, err := uc.usuarioService.ModificarInformacion(
		c.Request.Context(),
		domain.ID(id),
		primerNomb, segundoNomb, primerApell, segundoApell, email,
	)
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}
	if u == nil {
		responder(c, http.StatusNotFound, "No se encontró el usuario con ID: "+c.Param("id"), nil)
		return
	}

	responder(c, http.StatusOK, "Datos actualizados correctamente", usuario.ToResponseUsuario(*u))
}

func (uc *UsuarioController) AgregarRolHandler(c *gin.Context) {
	usuarioID, rolID, ok := uc.rolParams(c)
	if !ok {
		return
	}

	u, err := uc.usuarioService.AgregarRol(c.Request.Context(), usuarioID, rolID)
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}
	if u == nil {
		responder(c, http.StatusNotFound, "No se encontró el usuario con ID: "+c.Param("id"), nil)
		return
	}

	responder(c, http.StatusOK, "Rol agregado correctamente", usuario.ToResponseUsuario(*u))
}

func (uc *UsuarioController) RemoverRolHandler(c *gin.Context) {
	usuarioID, rolID, ok := uc.rolParams(c)
	if !ok {
		return
	}

	u, err := uc.usuarioService.RemoverRol(c.Request.Context(), usuarioID, rolID)
	if err != nil {
		responderError(c, uc.logger, err)
		return
	}
	if u == nil {
		responder(c, http.StatusNotFound, "No se encontró el usuario con ID: "+c.Param("id"), nil)
		return
	}

	responder(c, http.StatusOK, "Rol removido correctamente", usuario.ToResponseUsuario(*u))
}

func (uc *UsuarioController) rolParams(c *gin.Context) (domain.ID, rolDomain.ID, bool) {
	usuarioID, ok := validator.ParseID(c.Param("id"))
	if !ok {
		responder(c, http.StatusBadRequest, "id debe ser un entero positivo", nil)
		return 0, 0, false
	}

	rolID, ok := validator.ParseID(c.Param("rolId"))
	if !ok {
		responder(c, http.StatusBadRequest, "rolId debe ser un entero positivo", nil)
		return 0, 0, false
	}

	return domain.ID(usuarioID), rolDomain.ID(rolID), true
}
