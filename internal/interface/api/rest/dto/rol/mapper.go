package rol

import (
	"edutech-usuarios-api/internal/apierror"
	domain "edutech-usuarios-api/internal/domain/rol"
)

func ToResponseRol(rDomain domain.Rol) Response {
	permisos := make([]string, len(rDomain.Permisos))
	for idx, p := range rDomain.Permisos {
		permisos[idx] = string(p)
	}

	return Response{
		ID:          uint64(rDomain.ID),
		Nombre:      rDomain.Nombre,
		Descripcion: rDomain.Descripcion,
		Permisos:    permisos,
	}
}

func ToResponseRoles(rsDomain domain.Roles) Responses {
	rs := make(Responses, len(rsDomain))
	for idx, r := range rsDomain {
		rs[idx] = ToResponseRol(*r)
	}

	return rs
}

func ToDomainRol(rRequest Request) (domain.Rol, error) {
	permisos := make([]domain.Permiso, 0, len(rRequest.Permisos))
	for _, raw := range rRequest.Permisos {
		p, ok := domain.ParsePermiso(raw)
		if !ok {
			return domain.Rol{}, apierror.Invalido("Permiso no válido: %s", raw)
		}
		permisos = append(permisos, p)
	}

	r := domain.Rol{
		Nombre:      rRequest.Nombre,
		Descripcion: rRequest.Descripcion,
	}
	for _, p := range permisos {
		r.AgregarPermiso(p)
	}

	return r, nil
}
