package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"edutech-usuarios-api/internal/apierror"
)

// Respuesta is the v1 envelope: a human-readable message plus the
// payload (null on failures).
type Respuesta struct {
	Mensaje string `json:"mensaje"`
	Data    any    `json:"data"`
}

func responder(c *gin.Context, status int, mensaje string, data any) {
	c.JSON(status, Respuesta{Mensaje: mensaje, Data: data})
}

// responderError translates a business error into its HTTP status. Only
// internal failures hide the underlying message from the caller.
func responderError(c *gin.Context, logger *zap.Logger, err error) {
	switch apierror.KindDe(err) {
	case apierror.KindNoEncontrado:
		responder(c, http.StatusNotFound, err.Error(), nil)
	case apierror.KindConflicto:
		responder(c, http.StatusConflict, err.Error(), nil)
	case apierror.KindInvalido:
		responder(c, http.StatusBadRequest, err.Error(), nil)
	default:
		responder(c, http.StatusInternalServerError, "Error interno del servidor", nil)
		logger.Error("unexpected error", zap.String("url", c.FullPath()), zap.Error(err))
	}
}
