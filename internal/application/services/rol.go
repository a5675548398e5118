package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"edutech-usuarios-api/internal/apierror"
	"edutech-usuarios-api/internal/application/ports"
	domain "edutech-usuarios-api/internal/domain/rol"
)

type RolService struct {
	rolRepository domain.Repository
	mCounter      *prometheus.CounterVec
}

func NewRolService(
	rolRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.RolService {
	return &RolService{
		rolRepository: rolRepository,
		mCounter:      mCounter,
	}
}

func (rs *RolService) FindAll(ctx context.Context) (domain.Roles, error) {
	return rs.rolRepository.FetchRoles(ctx)
}

func (rs *RolService) FindByID(ctx context.Context, id domain.ID) (*domain.Rol, error) {
	return rs.rolRepository.FetchRolByID(ctx, id)
}

func (rs *RolService) FindByNombre(ctx context.Context, nombre string) (*domain.Rol, error) {
	return rs.rolRepository.FetchRolByNombre(ctx, nombre)
}

func (rs *RolService) ExistsByID(ctx context.Context, id domain.ID) (bool, error) {
	return rs.rolRepository.ExistsByID(ctx, id)
}

func (rs *RolService) ExistsByNombre(ctx context.Context, nombre string) (bool, error) {
	return rs.rolRepository.ExistsByNombre(ctx, nombre)
}

func (rs *RolService) Create(ctx context.Context, r domain.Rol) (*domain.Rol, error) {
	rRet, err := rs.rolRepository.CreateRol(ctx, r)
	if err != nil {
		return nil, err
	}

	rs.mCounter.WithLabelValues("rol_creado_total").Inc()

	return rRet, nil
}

func (rs *RolService) Update(ctx context.Context, r domain.Rol) (*domain.Rol, error) {
	rRet, err := rs.rolRepository.UpdateRol(ctx, r)
	if err != nil {
		return nil, err
	}

	rs.mCounter.WithLabelValues("rol_actualizado_total").Inc()

	return rRet, nil
}

func (rs *RolService) DeleteByID(ctx context.Context, id domain.ID) error {
	if err := rs.rolRepository.DeleteRol(ctx, id); err != nil {
		return err
	}

	rs.mCounter.WithLabelValues("rol_eliminado_total").Inc()

	return nil
}

func (rs *RolService) AgregarPermiso(ctx context.Context, rolID domain.ID, permiso domain.Permiso) (*domain.Rol, error) {
	r, err := rs.rolRepository.FetchRolByID(ctx, rolID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apierror.NoEncontrado("No se encontró el rol con ID: %d", rolID)
	}

	r.AgregarPermiso(permiso)

	return rs.rolRepository.UpdateRol(ctx, *r)
}

func (rs *RolService) RemoverPermiso(ctx context.Context, rolID domain.ID, permiso domain.Permiso) (*domain.Rol, error) {
	r, err := rs.rolRepository.FetchRolByID(ctx, rolID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apierror.NoEncontrado("No se encontró el rol con ID: %d", rolID)
	}

	r.RemoverPermiso(permiso)

	return rs.rolRepository.UpdateRol(ctx, *r)
}

// ObtenerRolCliente returns the seed role assigned by default to new
// users. It must exist in every deployment.
func (rs *RolService) ObtenerRolCliente(ctx context.Context) (*domain.Rol, error) {
	r, err := rs.rolRepository.FetchRolByNombre(ctx, domain.NombreCliente)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apierror.NoEncontrado("El rol CLIENTE no está registrado.")
	}

	return r, nil
}
