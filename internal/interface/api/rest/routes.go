package rest

const (
	// api
	RouteApiV1 = "/api/v1"
	RouteApiV2 = "/api/v2"

	// auth
	RouteAuth  = RouteApiV1 + "/auth"
	RouteLogin = RouteAuth + "/login"

	// roles v1
	RouteRoles      = RouteApiV1 + "/roles"
	RouteRol        = RouteRoles + "/:id"
	RouteRolPermiso = RouteRol + "/permisos/:permiso"

	// usuarios v1
	RouteUsuarios           = RouteApiV1 + "/usuarios"
	RouteUsuario            = RouteUsuarios + "/:id"
	RouteUsuarioInfo        = RouteUsuarios + "/info/:id"
	RouteUsuarioRut         = RouteUsuarios + "/rut/:rut"
	RouteUsuarioEmail       = RouteUsuarios + "/email/:email"
	RouteUsuarioUsername    = RouteUsuarios + "/username/:username"
	RouteUsuariosEstado     = RouteUsuarios + "/estado/:estado"
	RouteUsuariosInfoEstado = RouteUsuarios + "/info/estado/:estado"
	RouteUsuarioRegistro    = RouteUsuarios + "/registro"
	RouteUsuarioModificar   = RouteUsuario + "/modificar"
	RouteUsuarioRol         = RouteUsuario + "/roles/:rolId"

	// v2 (hypermedia)
	RouteRolesV2    = RouteApiV2 + "/roles"
	RouteRolV2      = RouteRolesV2 + "/:id"
	RouteUsuariosV2 = RouteApiV2 + "/usuarios"
	RouteUsuarioV2  = RouteUsuariosV2 + "/:id"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
