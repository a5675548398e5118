package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"edutech-usuarios-api/internal/application/ports"
	"edutech-usuarios-api/internal/application/services"
	"edutech-usuarios-api/internal/interface/api/rest/dto/auth"
	"edutech-usuarios-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger         *zap.Logger
	usuarioService ports.UsuarioService
	authService    ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	usuarioService ports.UsuarioService,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:         logger,
		usuarioService: usuarioService,
		authService:    authService,
	}

	r.POST(RouteLogin, ac.LoginHandler)

	return ac
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responder(c, http.StatusBadRequest, "cuerpo de la petición no válido", nil)
		return
	}
	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"mensaje": "cuerpo de la petición no válido",
			"data":    errs,
		})
		return
	}

	u, err := ac.usuarioService.FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		responderError(c, ac.logger, err)
		return
	}
	// Missing user and wrong password answer identically so the login
	// endpoint cannot be used to probe registered usernames.
	if u == nil {
		responder(c, http.StatusUnauthorized, "credenciales no válidas", nil)
		return
	}

	token, err := ac.authService.GenerateToken(u, req.Contrasena)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			responder(c, http.StatusUnauthorized, "credenciales no válidas", nil)
			return
		}
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Uint64("usuario_id", uint64(u.ID)))
		responder(c, http.StatusInternalServerError, "Error interno del servidor", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
	})
}
