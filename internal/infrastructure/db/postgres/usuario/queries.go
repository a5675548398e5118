package usuario

const (
	usuarioColumns = `id, rut, primer_nomb, segundo_nomb, primer_apell, segundo_apell, fecha_nacimiento, username, email, contrasena_hash, estado, fecha_registro`

	SelectUsuarios = `
		SELECT ` + usuarioColumns + `
		FROM usuario
		ORDER BY id
	`
	SelectUsuarioByID = `
		SELECT ` + usuarioColumns + `
		FROM usuario
		WHERE id = $1
	`
	SelectUsuarioByRut = `
		SELECT ` + usuarioColumns + `
		FROM usuario
		WHERE rut = $1
	`
	SelectUsuarioByUsername = `
		SELECT ` + usuarioColumns + `
		FROM usuario
		WHERE username = $1
	`
	SelectUsuarioByEmail = `
		SELECT ` + usuarioColumns + `
		FROM usuario
		WHERE email = $1
	`
	SelectUsuariosByEstado = `
		SELECT ` + usuarioColumns + `
		FROM usuario
		WHERE estado = $1
		ORDER BY id
	`
	SelectRolesByUsuarioID = `
		SELECT r.id, r.nombre, r.descripcion, p.permiso
		FROM usuario_roles ur
		JOIN rol r ON r.id = ur.rol_id
		LEFT JOIN rol_permisos p ON p.rol_id = r.id
		WHERE ur.usuario_id = $1
		ORDER BY r.id, p.permiso
	`
	SelectRolesByUsuarioIDs = `
		SELECT ur.usuario_id, r.id, r.nombre, r.descripcion, p.permiso
		FROM usuario_roles ur
		JOIN rol r ON r.id = ur.rol_id
		LEFT JOIN rol_permisos p ON p.rol_id = r.id
		WHERE ur.usuario_id = ANY($1::bigint[])
		ORDER BY ur.usuario_id, r.id, p.permiso
	`
	ExistsUsuarioByID       = `SELECT EXISTS (SELECT 1 FROM usuario WHERE id = $1)`
	ExistsUsuarioByRut      = `SELECT EXISTS (SELECT 1 FROM usuario WHERE rut = $1)`
	ExistsUsuarioByUsername = `SELECT EXISTS (SELECT 1 FROM usuario WHERE username = $1)`
	ExistsUsuarioByEmail    = `SELECT EXISTS (SELECT 1 FROM usuario WHERE email = $1)`
	InsertUsuario           = `
		INSERT INTO usuario (rut, primer_nomb, segundo_nomb, primer_apell, segundo_apell, fecha_nacimiento, username, email, contrasena_hash, estado, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + usuarioColumns + `
	`
	UpdateUsuarioByID = `
		UPDATE usuario
		SET rut = $1,
		    primer_nomb = $2,
		    segundo_nomb = $3,
		    primer_apell = $4,
		    segundo_apell = $5,
		    fecha_nacimiento = $6,
		    username = $7,
		    email = $8,
		    contrasena_hash = $9,
		    estado = $10,
		    fecha_registro = $11
		WHERE id = $12
		RETURNING ` + usuarioColumns + `
	`
	DeleteUsuarioRoles  = `DELETE FROM usuario_roles WHERE usuario_id = $1`
	InsertUsuarioRol    = `INSERT INTO usuario_roles (usuario_id, rol_id) VALUES ($1, $2)`
	DeleteUsuarioByID   = `DELETE FROM usuario WHERE id = $1`
)
