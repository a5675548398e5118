package usuario

import (
	rolDomain "edutech-usuarios-api/internal/domain/rol"
	domain "edutech-usuarios-api/internal/domain/usuario"
)

func fromDBModel(model *Usuario) *domain.Usuario {
	u := &domain.Usuario{
		ID:              domain.ID(model.ID),
		Rut:             model.Rut,
		PrimerNombre:    model.PrimerNomb,
		PrimerApellido:  model.PrimerApell,
		FechaNacimiento: model.FechaNacimiento,
		Username:        model.Username,
		Email:           model.Email,
		ContrasenaHash:  model.ContrasenaHash,
		Estado:          domain.Estado(model.Estado),
		FechaRegistro:   model.FechaRegistro,
	}
	if model.SegundoNomb != nil {
		u.SegundoNombre = *model.SegundoNomb
	}
	if model.SegundoApell != nil {
		u.SegundoApellido = *model.SegundoApell
	}
	for _, ref := range model.Roles {
		u.Roles = append(u.Roles, fromDBRolRef(ref))
	}

	return u
}

func fromDBRolRef(ref *RolRef) *rolDomain.Rol {
	r := &rolDomain.Rol{
		ID:     rolDomain.ID(ref.ID),
		Nombre: ref.Nombre,
	}
	if ref.Descripcion != nil {
		r.Descripcion = *ref.Descripcion
	}
	for _, p := range ref.Permisos {
		r.Permisos = append(r.Permisos, rolDomain.Permiso(p))
	}

	return r
}

func fromDBModels(models *Usuarios) domain.Usuarios {
	us := make(domain.Usuarios, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}

func optionalParam(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
