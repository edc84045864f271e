package auth

import (
	"net/http"
	"strings"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"learnhub/internal/model"
)

// identityKey is the echo context key the caller identity is stored under.
const identityKey = "identity"

// Identity is the request-scoped caller identity resolved from the session
// token. Authorization decisions take an Identity, never ambient state.
type Identity struct {
	UserID uint
	Email  string
	Role   model.Role
}

// IsAdmin reports whether the caller has the ADMIN role.
func (i Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

// CurrentIdentity returns the caller identity set by LoadIdentity or
// OptionalAuth, and false when the request is unauthenticated.
func CurrentIdentity(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}

// SetIdentity stores the caller identity on the request context.
func SetIdentity(c echo.Context, id Identity) {
	c.Set(identityKey, id)
}

// LoadIdentity converts the token parsed by the echo-jwt middleware into an
// Identity. It must run after the JWT middleware on secured groups.
func LoadIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwtv5.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, ok := token.Claims.(jwtv5.MapClaims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
		}
		id, err := identityFromMapClaims(claims)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
		}
		SetIdentity(c, id)
		return next(c)
	}
}

func identityFromMapClaims(claims jwtv5.MapClaims) (Identity, error) {
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return Identity{}, echo.ErrUnauthorized
	}
	email, _ := claims["email"].(string)
	rawRole, _ := claims["role"].(string)
	role, err := model.ParseRole(rawRole)
	if err != nil {
		return Identity{}, err
	}
	return Identity{UserID: uint(userID), Email: email, Role: role}, nil
}

// OptionalAuth resolves the caller identity when a valid bearer token is
// present and lets the request through unauthenticated otherwise. Used by
// routes whose response shape depends on the caller's role.
func OptionalAuth(jwtService *JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if strings.HasPrefix(header, "Bearer ") {
				if claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, "Bearer ")); err == nil {
					SetIdentity(c, Identity{UserID: claims.UserID, Email: claims.Email, Role: claims.Role})
				}
			}
			return next(c)
		}
	}
}

// RequireRoles rejects callers whose role is not in the allowed set.
func RequireRoles(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := CurrentIdentity(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			for _, role := range roles {
				if id.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
		}
	}
}
