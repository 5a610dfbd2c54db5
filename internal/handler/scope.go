package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"recon-gateway/internal/upstream"
	"recon-gateway/pkg/response"
)

// scopeFromRequest builds the backend request scope from the company path
// parameter and the bearer token of the incoming request. The gateway holds
// no credential of its own; every call is made on behalf of the user.
func scopeFromRequest(c *gin.Context) (upstream.Scope, bool) {
	companyID := c.Param("company_id")
	if companyID == "" {
		response.BadRequest(c, "Missing company id", "")
		return upstream.Scope{}, false
	}

	auth := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		response.Unauthorized(c, "Missing bearer token")
		return upstream.Scope{}, false
	}

	return upstream.Scope{CompanyID: companyID, Token: token}, true
}

// respondError maps a workflow error onto the response envelope. Backend
// errors keep their original status and detail; everything else is an
// internal error with the wrapped message as details.
func respondError(c *gin.Context, err error, message string) {
	var backendErr *upstream.Error
	if errors.As(err, &backendErr) {
		response.BackendError(c, backendErr.Status, message, backendErr.Detail)
		return
	}
	response.InternalError(c, message, err.Error())
}
