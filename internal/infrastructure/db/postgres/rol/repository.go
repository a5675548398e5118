package rol

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"edutech-usuarios-api/internal/apierror"
	"edutech-usuarios-api/internal/domain/rol"
	"edutech-usuarios-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) rol.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchRoles(ctx context.Context) (rol.Roles, error) {
	rows, err := r.db.Query(ctx, SelectRoles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[uint64]*Rol)
	var rs Roles
	for rows.Next() {
		m := new(Rol)
		if err = rows.Scan(&m.ID, &m.Nombre, &m.Descripcion); err != nil {
			return nil, err
		}
		byID[m.ID] = m
		rs = append(rs, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	prows, err := r.db.Query(ctx, SelectPermisos)
	if err != nil {
		return nil, err
	}
	defer prows.Close()

	for prows.Next() {
		var (
			rolID   uint64
			permiso string
		)
		if err = prows.Scan(&rolID, &permiso); err != nil {
			return nil, err
		}
		if m, ok := byID[rolID]; ok {
			m.Permisos = append(m.Permisos, permiso)
		}
	}
	if err = prows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&rs), nil
}

func (r *Repository) fetchRol(ctx context.Context, query string, arg any) (*rol.Rol, error) {
	m := new(Rol)
	err := r.db.QueryRow(ctx, query, arg).Scan(&m.ID, &m.Nombre, &m.Descripcion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	prows, err := r.db.Query(ctx, SelectPermisosByRolID, m.ID)
	if err != nil {
		return nil, err
	}
	defer prows.Close()

	for prows.Next() {
		var permiso string
		if err = prows.Scan(&permiso); err != nil {
			return nil, err
		}
		m.Permisos = append(m.Permisos, permiso)
	}
	if err = prows.Err(); err != nil {
		return nil, err
	}

	return fromDBModel(m), nil
}

func (r *Repository) FetchRolByID(ctx context.Context, id rol.ID) (*rol.Rol, error) {
	return r.fetchRol(ctx, SelectRolByID, uint64(id))
}

func (r *Repository) FetchRolByNombre(ctx context.Context, nombre string) (*rol.Rol, error) {
	return r.fetchRol(ctx, SelectRolByNombre, nombre)
}

func (r *Repository) ExistsByID(ctx context.Context, id rol.ID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, ExistsRolByID, uint64(id)).Scan(&exists)
	return exists, err
}

func (r *Repository) ExistsByNombre(ctx context.Context, nombre string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, ExistsRolByNombre, nombre).Scan(&exists)
	return exists, err
}

func (r *Repository) CreateRol(ctx context.Context, req rol.Rol) (*rol.Rol, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	m := new(Rol)
	err = tx.QueryRow(ctx, InsertRol, req.Nombre, descripcionParam(req)).
		Scan(&m.ID, &m.Nombre, &m.Descripcion)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, apierror.Conflicto("Ya existe un rol con el nombre: %s", req.Nombre)
		}
		return nil, err
	}

	for _, p := range req.Permisos {
		if _, err = tx.Exec(ctx, InsertRolPermiso, m.ID, string(p)); err != nil {
			return nil, err
		}
		m.Permisos = append(m.Permisos, string(p))
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return fromDBModel(m), nil
}

func (r *Repository) UpdateRol(ctx context.Context, req rol.Rol) (*rol.Rol, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	m := new(Rol)
	err = tx.QueryRow(ctx, UpdateRolByID, req.Nombre, descripcionParam(req), uint64(req.ID)).
		Scan(&m.ID, &m.Nombre, &m.Descripcion)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, apierror.Conflicto("Ya existe un rol con el nombre: %s", req.Nombre)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if _, err = tx.Exec(ctx, DeleteRolPermisos, m.ID); err != nil {
		return nil, err
	}
	for _, p := range req.Permisos {
		if _, err = tx.Exec(ctx, InsertRolPermiso, m.ID, string(p)); err != nil {
			return nil, err
		}
		m.Permisos = append(m.Permisos, string(p))
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return fromDBModel(m), nil
}

func (r *Repository) DeleteRol(ctx context.Context, id rol.ID) error {
	tag, err := r.db.Exec(ctx, DeleteRolByID, uint64(id))
	if err != nil {
		if postgres.IsPgForeignKeyViolation(err) {
			return apierror.Conflicto("El rol está asignado a usuarios y no puede eliminarse.")
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apierror.NoEncontrado("No se encontró el rol con ID: %d", id)
	}

	return nil
}
