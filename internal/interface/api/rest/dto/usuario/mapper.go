package usuario

import (
	"time"

	"edutech-usuarios-api/internal/apierror"
	rolDomain "edutech-usuarios-api/internal/domain/rol"
	domain "edutech-usuarios-api/internal/domain/usuario"
	"edutech-usuarios-api/internal/interface/api/rest/dto/rol"
)

const fechaNacimientoLayout = "2006-01-02"

func ToResponseUsuario(uDomain domain.Usuario) Response {
	return Response{
		ID:              uint64(uDomain.ID),
		Rut:             uDomain.Rut,
		PrimerNombre:    uDomain.PrimerNombre,
		SegundoNombre:   uDomain.SegundoNombre,
		PrimerApellido:  uDomain.PrimerApellido,
		SegundoApellido: uDomain.SegundoApellido,
		FechaNacimiento: uDomain.FechaNacimiento.Format(fechaNacimientoLayout),
		Username:        uDomain.Username,
		Email:           uDomain.Email,
		Estado:          string(uDomain.Estado),
		FechaRegistro:   uDomain.FechaRegistro,
		Roles:           rol.ToResponseRoles(uDomain.Roles),
	}
}

func ToResponseUsuarios(usDomain domain.Usuarios) Responses {
	us := make(Responses, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUsuario(*u)
	}

	return us
}

func ToInfoResponse(dto domain.DTO) InfoResponse {
	roles := make([]RolRef, len(dto.Roles))
	for idx, r := range dto.Roles {
		roles[idx] = RolRef{ID: uint64(r.ID), Nombre: r.Nombre}
	}

	return InfoResponse{
		ID:       uint64(dto.ID),
		Username: dto.Username,
		Email:    dto.Email,
		Estado:   string(dto.Estado),
		Roles:    roles,
	}
}

func ToInfoResponses(dtos domain.DTOs) InfoResponses {
	infos := make(InfoResponses, len(dtos))
	for idx, dto := range dtos {
		infos[idx] = ToInfoResponse(dto)
	}

	return infos
}

func ToDomainUsuario(uRequest Request) (domain.Usuario, error) {
	d, err := time.Parse(fechaNacimientoLayout, uRequest.FechaNacimiento)
	if err != nil {
		return domain.Usuario{}, apierror.Invalido("Formato de fechaNacimiento no válido, se espera YYYY-MM-DD")
	}

	u := domain.Usuario{
		Rut:             uRequest.Rut,
		PrimerNombre:    uRequest.PrimerNombre,
		SegundoNombre:   uRequest.SegundoNombre,
		PrimerApellido:  uRequest.PrimerApellido,
		SegundoApellido: uRequest.SegundoApellido,
		FechaNacimiento: d,
		Username:        uRequest.Username,
		Email:           uRequest.Email,
		Contrasena:      uRequest.Contrasena,
	}

	if uRequest.Estado != "" {
		estado, ok := domain.ParseEstado(uRequest.Estado)
		if !ok {
			return domain.Usuario{}, apierror.Invalido("Estado no válido: %s", uRequest.Estado)
		}
		u.Estado = estado
	}

	for _, ref := range uRequest.Roles {
		u.Roles = append(u.Roles, &rolDomain.Rol{Nombre: ref.Nombre})
	}

	return u, nil
}

func ToDomainRegistro(rRequest RegistroRequest) (domain.Usuario, error) {
	d, err := time.Parse(fechaNacimientoLayout, rRequest.FechaNacimiento)
	if err != nil {
		return domain.Usuario{}, apierror.Invalido("Formato de fechaNacimiento no válido, se espera YYYY-MM-DD")
	}

	return domain.Usuario{
		Rut:             rRequest.Rut,
		PrimerNombre:    rRequest.PrimerNombre,
		SegundoNombre:   rRequest.SegundoNombre,
		PrimerApellido:  rRequest.PrimerApellido,
		SegundoApellido: rRequest.SegundoApellido,
		FechaNacimiento: d,
		Username:        rRequest.Username,
		Email:           rRequest.Email,
		Contrasena:      rRequest.Contrasena,
	}, nil
}
