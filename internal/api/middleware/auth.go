package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/courtwatchhq/courtwatch-api/internal/api/handler/v1/response"
	"github.com/courtwatchhq/courtwatch-api/internal/pkg/jwthelper"
)

const (
	// ContextKeyPrincipalID holds the id of the authenticated user (the JWT
	// subject issued by the identity provider).
	ContextKeyPrincipalID = "principalID"
	// ContextKeyPrincipalRole holds the role claim of the authenticated user.
	ContextKeyPrincipalRole = "principalRole"

	RoleAdmin = "admin"
)

var errNoActiveSession = errors.New("no active session")

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid bearer token and stores the
// principal id and role in the gin context for handlers downstream.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errNoActiveSession))

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(jwthelper.ErrInvalidToken))

			return
		}

		ctx.Set(ContextKeyPrincipalID, claims.Subject)
		ctx.Set(ContextKeyPrincipalRole, claims.Role)
		ctx.Next()
	}
}

// RequireRole gates a route behind a role claim. Must run after VerifyJWT.
func (a *Authenticator) RequireRole(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		got := ctx.GetString(ContextKeyPrincipalRole)
		if got != role {
			response.RenderErr(ctx, response.ErrPermissionDenied(
				fmt.Errorf("role %q required", role)))

			return
		}

		ctx.Next()
	}
}
