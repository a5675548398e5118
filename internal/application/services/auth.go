package services

import (
	"errors"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"edutech-usuarios-api/internal/application/ports"
	"edutech-usuarios-api/internal/domain/usuario"
	"edutech-usuarios-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("credenciales no válidas")
	ErrFailedToGenerateToken = errors.New("no se pudo generar el token")
)

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(
	jwtService *jwt.Service,
) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
	}
}

func (as *AuthService) GenerateToken(u *usuario.Usuario, requestPassword string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(u.ContrasenaHash), []byte(requestPassword)); err != nil {
		return "", ErrInvalidCredentials
	}

	var rolNombre string
	if len(u.Roles) > 0 {
		rolNombre = u.Roles[0].Nombre
	}

	token, err := as.jwtService.GenerateJWT(strconv.FormatUint(uint64(u.ID), 10), rolNombre, time.Hour)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
