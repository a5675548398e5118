package rol

import (
	domain "edutech-usuarios-api/internal/domain/rol"
)

func fromDBModel(model *Rol) *domain.Rol {
	r := &domain.Rol{
		ID:     domain.ID(model.ID),
		Nombre: model.Nombre,
	}
	if model.Descripcion != nil {
		r.Descripcion = *model.Descripcion
	}
	for _, p := range model.Permisos {
		r.Permisos = append(r.Permisos, domain.Permiso(p))
	}

	return r
}

func fromDBModels(models *Roles) domain.Roles {
	rs := make(domain.Roles, len(*models))
	for idx, r := range *models {
		rs[idx] = fromDBModel(r)
	}

	return rs
}

func descripcionParam(r domain.Rol) *string {
	if r.Descripcion == "" {
		return nil
	}
	d := r.Descripcion
	return &d
}
