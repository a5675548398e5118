package rol

const (
	SelectRoles = `
		SELECT id, nombre, descripcion
		FROM rol
		ORDER BY id
	`
	SelectRolByID = `
		SELECT id, nombre, descripcion
		FROM rol
		WHERE id = $1
	`
	SelectRolByNombre = `
		SELECT id, nombre, descripcion
		FROM rol
		WHERE nombre = $1
	`
	SelectPermisosByRolID = `
		SELECT permiso
		FROM rol_permisos
		WHERE rol_id = $1
		ORDER BY permiso
	`
	SelectPermisos = `
		SELECT rol_id, permiso
		FROM rol_permisos
		ORDER BY rol_id, permiso
	`
	ExistsRolByID     = `SELECT EXISTS (SELECT 1 FROM rol WHERE id = $1)`
	ExistsRolByNombre = `SELECT EXISTS (SELECT 1 FROM rol WHERE nombre = $1)`
	InsertRol         = `
		INSERT INTO rol (nombre, descripcion)
		VALUES ($1, $2)
		RETURNING id, nombre, descripcion
	`
	UpdateRolByID = `
		UPDATE rol
		SET nombre = $1,
		    descripcion = $2
		WHERE id = $3
		RETURNING id, nombre, descripcion
	`
	DeleteRolPermisos = `DELETE FROM rol_permisos WHERE rol_id = $1`
	InsertRolPermiso  = `INSERT INTO rol_permisos (rol_id, permiso) VALUES ($1, $2)`
	DeleteRolByID     = `DELETE FROM rol WHERE id = $1`
)
