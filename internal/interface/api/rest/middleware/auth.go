package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"edutech-usuarios-api/internal/infrastructure/jwt"
)

const (
	CtxUsuarioRol = "usuarioRol"
	CtxUsuarioID  = "usuarioID"
)

func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"mensaje": "falta la cabecera Authorization", "data": nil},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"mensaje": "formato de token no válido", "data": nil},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"mensaje": "token no válido", "data": nil},
			)
			return
		}

		c.Set(CtxUsuarioRol, claims.Rol)
		c.Set(CtxUsuarioID, claims.UsuarioID)

		c.Next()
	}
}
