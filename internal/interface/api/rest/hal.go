package rest

import (
	"github.com/gin-gonic/gin"
)

// ContentTypeHAL marks v2 responses as hypermedia documents.
const ContentTypeHAL = "application/hal+json"

type (
	HALLink  struct {
		Href string `json:"href"`
	}
	HALLinks map[string]HALLink
)

// respondHAL writes a JSON body under the hal+json media type. Setting
// the header first keeps gin from stamping plain application/json.
func respondHAL(c *gin.Context, status int, body any) {
	c.Header("Content-Type", ContentTypeHAL)
	c.JSON(status, body)
}
