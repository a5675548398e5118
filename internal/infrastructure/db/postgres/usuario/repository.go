package usuario

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"edutech-usuarios-api/internal/apierror"
	"edutech-usuarios-api/internal/domain/usuario"
	"edutech-usuarios-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) usuario.Repository {
	return &Repository{db: db}
}

func scanUsuario(row pgx.Row) (*Usuario, error) {
	u := new(Usuario)
	err := row.Scan(
		&u.ID,
		&u.Rut,
		&u.PrimerNomb,
		&u.SegundoNomb,
		&u.PrimerApell,
		&u.SegundoApell,
		&u.FechaNacimiento,
		&u.Username,
		&u.Email,
		&u.ContrasenaHash,
		&u.Estado,
		&u.FechaRegistro,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

// uniqueViolation maps the violated constraint to the business conflict
// it represents. The service runs friendlier pre-checks, but under
// concurrent writes the constraints are the actual backstop.
func uniqueViolation(err error) error {
	switch postgres.ConstraintName(err) {
	case "usuario_rut_key":
		return apierror.Conflicto("El RUT ingresado ya está registrado.")
	case "usuario_username_key":
		return apierror.Conflicto("El nombre de usuario ya está registrado.")
	case "usuario_email_key":
		return apierror.Conflicto("El email ya está registrado.")
	}
	return err
}

func (r *Repository) FetchUsuarios(ctx context.Context) (usuario.Usuarios, error) {
	return r.fetchUsuarios(ctx, SelectUsuarios)
}

func (r *Repository) FetchUsuariosByEstado(ctx context.Context, estado usuario.Estado) (usuario.Usuarios, error) {
	return r.fetchUsuarios(ctx, SelectUsuariosByEstado, string(estado))
}

func (r *Repository) fetchUsuarios(ctx context.Context, query string, args ...any) (usuario.Usuarios, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Usuarios
	byID := make(map[uint64]*Usuario)
	ids := make([]int64, 0)
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, err
		}
		us = append(us, u)
		byID[u.ID] = u
		ids = append(ids, int64(u.ID))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		if err = r.loadRolesBatch(ctx, byID, ids); err != nil {
			return nil, err
		}
	}

	return fromDBModels(&us), nil
}

func (r *Repository) loadRolesBatch(ctx context.Context, byID map[uint64]*Usuario, ids []int64) error {
	rows, err := r.db.Query(ctx, SelectRolesByUsuarioIDs, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			usuarioID uint64
			ref       RolRef
			permiso   *string
		)
		if err = rows.Scan(&usuarioID, &ref.ID, &ref.Nombre, &ref.Descripcion, &permiso); err != nil {
			return err
		}
		u, ok := byID[usuarioID]
		if !ok {
			continue
		}
		cur := lastRolRef(u, ref.ID)
		if cur == nil {
			cur = &RolRef{ID: ref.ID, Nombre: ref.Nombre, Descripcion: ref.Descripcion}
			u.Roles = append(u.Roles, cur)
		}
		if permiso != nil {
			cur.Permisos = append(cur.Permisos, *permiso)
		}
	}

	return rows.Err()
}

func lastRolRef(u *Usuario, rolID uint64) *RolRef {
	if n := len(u.Roles); n > 0 && u.Roles[n-1].ID == rolID {
		return u.Roles[n-1]
	}
	return nil
}

func (r *Repository) fetchUsuario(ctx context.Context, query string, arg any) (*usuario.Usuario, error) {
	u, err := scanUsuario(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err = r.loadRoles(ctx, u); err != nil {
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) loadRoles(ctx context.Context, u *Usuario) error {
	rows, err := r.db.Query(ctx, SelectRolesByUsuarioID, u.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ref     RolRef
			permiso *string
		)
		if err = rows.Scan(&ref.ID, &ref.Nombre, &ref.Descripcion, &permiso); err != nil {
			return err
		}
		cur := lastRolRef(u, ref.ID)
		if cur == nil {
			cur = &RolRef{ID: ref.ID, Nombre: ref.Nombre, Descripcion: ref.Descripcion}
			u.Roles = append(u.Roles, cur)
		}
		if permiso != nil {
			cur.Permisos = append(cur.Permisos, *permiso)
		}
	}

	return rows.Err()
}

func (r *Repository) FetchUsuarioByID(ctx context.Context, id usuario.ID) (*usuario.Usuario, error) {
	return r.fetchUsuario(ctx, SelectUsuarioByID, uint64(id))
}

func (r *Repository) FetchUsuarioByRut(ctx context.Context, rut string) (*usuario.Usuario, error) {
	return r.fetchUsuario(ctx, SelectUsuarioByRut, rut)
}

func (r *Repository) FetchUsuarioByUsername(ctx context.Context, username string) (*usuario.Usuario, error) {
	return r.fetchUsuario(ctx, SelectUsuarioByUsername, username)
}

func (r *Repository) FetchUsuarioByEmail(ctx context.Context, email string) (*usuario.Usuario, error) {
	return r.fetchUsuario(ctx, SelectUsuarioByEmail, email)
}

func (r *Repository) ExistsByID(ctx context.Context, id usuario.ID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, ExistsUsuarioByID, uint64(id)).Scan(&exists)
	return exists, err
}

func (r *Repository) ExistsByRut(ctx context.Context, rut string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, ExistsUsuarioByRut, rut).Scan(&exists)
	return exists, err
}

func (r *Repository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, ExistsUsuarioByUsername, username).Scan(&exists)
	return exists, err
}

func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, ExistsUsuarioByEmail, email).Scan(&exists)
	return exists, err
}

// CreateUsuario persists the user and its role assignments in a single
// transaction: a failure partway leaves no partial record.
func (r *Repository) CreateUsuario(ctx context.Context, req usuario.Usuario) (*usuario.Usuario, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	u, err := scanUsuario(tx.QueryRow(
		ctx,
		InsertUsuario,
		req.Rut,
		req.PrimerNombre,
		optionalParam(req.SegundoNombre),
		req.PrimerApellido,
		optionalParam(req.SegundoApellido),
		req.FechaNacimiento,
		req.Username,
		req.Email,
		req.ContrasenaHash,
		string(req.Estado),
		req.FechaRegistro,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, uniqueViolation(err)
		}
		return nil, err
	}

	for _, rolRef := range req.Roles {
		if _, err = tx.Exec(ctx, InsertUsuarioRol, u.ID, uint64(rolRef.ID)); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	uRet := fromDBModel(u)
	uRet.Roles = req.Roles

	return uRet, nil
}

// UpdateUsuario rewrites the row and replaces the role assignments in
// one transaction. Returns nil when the id no longer exists.
func (r *Repository) UpdateUsuario(ctx context.Context, req usuario.Usuario) (*usuario.Usuario, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	u, err := scanUsuario(tx.QueryRow(
		ctx,
		UpdateUsuarioByID,
		req.Rut,
		req.PrimerNombre,
		optionalParam(req.SegundoNombre),
		req.PrimerApellido,
		optionalParam(req.SegundoApellido),
		req.FechaNacimiento,
		req.Username,
		req.Email,
		req.ContrasenaHash,
		string(req.Estado),
		req.FechaRegistro,
		uint64(req.ID),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, uniqueViolation(err)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if _, err = tx.Exec(ctx, DeleteUsuarioRoles, u.ID); err != nil {
		return nil, err
	}
	for _, rolRef := range req.Roles {
		if _, err = tx.Exec(ctx, InsertUsuarioRol, u.ID, uint64(rolRef.ID)); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	uRet := fromDBModel(u)
	uRet.Roles = req.Roles

	return uRet, nil
}

func (r *Repository) DeleteUsuario(ctx context.Context, id usuario.ID) error {
	tag, err := r.db.Exec(ctx, DeleteUsuarioByID, uint64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apierror.NoEncontrado("No se encontró el usuario con ID: %d", id)
	}

	return nil
}
