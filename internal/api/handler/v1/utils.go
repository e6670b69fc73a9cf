package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/courtwatchhq/courtwatch-api/internal/api/handler/v1/response"
	"github.com/courtwatchhq/courtwatch-api/internal/api/middleware"
)

var errNoActiveSession = errors.New("no active session")

// principalID returns the authenticated user's id set by the JWT middleware.
func principalID(ctx *gin.Context) (string, *response.Err) {
	v, ok := ctx.Get(middleware.ContextKeyPrincipalID)
	if !ok {
		return "", response.ErrUnauthorized(errNoActiveSession)
	}

	id, ok := v.(string)
	if !ok || id == "" {
		return "", response.ErrUnauthorized(errNoActiveSession)
	}

	return id, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %v: %v", name, ctx.Param(name)))
	}

	return uint(id), nil
}
