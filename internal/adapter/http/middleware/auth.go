package middleware

import (
	"net/http"
	"strings"

	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/pkg"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errRoleRequired = pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this user", http.StatusForbidden)
)

type TokenValidator interface {
	Validate(token string) (entities.Actor, error)
}

// Auth resolves the bearer token into an Actor and stores it on the context.
func Auth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		actor, err := tokens.Validate(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}
		SetActor(c, actor)
		c.Next()
	}
}

func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		for _, r := range roles {
			if strings.EqualFold(actor.Role, r) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(errRoleRequired.HTTPStatus, errRoleRequired.ToHTTPError())
	}
}

func SetActor(c *gin.Context, actor entities.Actor) {
	c.Set(actorKey, actor)
}

// ActorFrom returns the authenticated caller, or the zero Actor on public routes.
func ActorFrom(c *gin.Context) entities.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(entities.Actor); ok {
			return actor
		}
	}
	return entities.Actor{}
}
