package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"edutech-usuarios-api/internal/application/ports"
	rolDomain "edutech-usuarios-api/internal/domain/rol"
	"edutech-usuarios-api/internal/interface/api/rest/dto/rol"
	"edutech-usuarios-api/internal/interface/api/rest/validator"
)

// RolControllerV2 exposes roles read-only under the hypermedia surface.
type RolControllerV2 struct {
	rolService ports.RolService
	logger     *zap.Logger
}

type (
	rolModel struct {
		rol.Response
		Links HALLinks `json:"_links"`
	}
	rolCollection struct {
		Embedded struct {
			Roles []rolModel `json:"roles"`
		} `json:"_embedded"`
		Links HALLinks `json:"_links"`
	}
)

func NewRolControllerV2(
	r *gin.Engine,
	rolService ports.RolService,
	logger *zap.Logger,
) *RolControllerV2 {
	rc := &RolControllerV2{
		rolService: rolService,
		logger:     logger,
	}

	r.GET(RouteRolesV2, rc.GetRolesHandler)
	r.GET(RouteRolV2, rc.GetRolHandler)

	return rc
}

func rolToModel(r rolDomain.Rol) rolModel {
	self := RouteRolesV2 + "/" + strconv.FormatUint(uint64(r.ID), 10)
	return rolModel{
		Response: rol.ToResponseRol(r),
		Links: HALLinks{
			"self":  {Href: self},
			"roles": {Href: RouteRolesV2},
		},
	}
}

func (rc *RolControllerV2) GetRolesHandler(c *gin.Context) {
	roles, err := rc.rolService.FindAll(c.Request.Context())
	if err != nil {
		responderError(c, rc.logger, err)
		return
	}

	col := rolCollection{Links: HALLinks{"self": {Href: RouteRolesV2}}}
	col.Embedded.Roles = make([]rolModel, len(roles))
	for idx, r := range roles {
		col.Embedded.Roles[idx] = rolToModel(*r)
	}

	respondHAL(c, http.StatusOK, col)
}

func (rc *RolControllerV2) GetRolHandler(c *gin.Context) {
	id, ok := validator.ParseID(c.Param("id"))
	if !ok {
		responder(c, http.StatusBadRequest, "id debe ser un entero positivo", nil)
		return
	}

	r, err := rc.rolService.FindByID(c.Request.Context(), rolDomain.ID(id))
	if err != nil {
		responderError(c, rc.logger, err)
		return
	}
	if r == nil {
		responder(c, http.StatusNotFound, "No se encontró el rol con ID: "+c.Param("id"), nil)
		return
	}

	respondHAL(c, http.StatusOK, rolToModel(*r))
}
