package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"catrental/internal/domain/entities"
	"catrental/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const callerKey = "caller"

var (
	errInvalidToken = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Missing or invalid bearer token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this role", http.StatusForbidden)
)

// Claims is the token payload issued by the authentication service.
type Claims struct {
	Role         string `json:"role"`
	DealershipID string `json:"dealership_id,omitempty"`
	Name         string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Authenticate verifies an HS256 bearer token and stores the caller on the
// gin context. Tokens must carry sub, role and exp; iss is checked when issuer
// is set.
func Authenticate(secret, issuer string) gin.HandlerFunc {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abort(c, errInvalidToken)
			return
		}

		claims := &Claims{}
		_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil {
			log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			abort(c, errInvalidToken)
			return
		}

		caller, err := callerFromClaims(claims)
		if err != nil {
			log.Printf("[auth][middleware] claims rejected path=%s err=%v", c.FullPath(), err)
			abort(c, errInvalidToken)
			return
		}
		SetCaller(c, caller)
		c.Next()
	}
}

// RequireRole must run after Authenticate.
func RequireRole(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFromContext(c)
		if !ok || caller.Role != role {
			abort(c, errForbidden)
			return
		}
		c.Next()
	}
}

func SetCaller(c *gin.Context, caller entities.Caller) {
	c.Set(callerKey, caller)
}

func CallerFromContext(c *gin.Context) (entities.Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return entities.Caller{}, false
	}
	caller, ok := v.(entities.Caller)
	return caller, ok
}

func callerFromClaims(claims *Claims) (entities.Caller, error) {
	if strings.TrimSpace(claims.Subject) == "" {
		return entities.Caller{}, errors.New("missing subject")
	}
	role := entities.Role(claims.Role)
	switch role {
	case entities.RoleAdmin:
		if claims.DealershipID == "" {
			return entities.Caller{}, errors.New("admin token without dealership")
		}
	case entities.RoleCustomer:
	default:
		return entities.Caller{}, errors.New("unknown role")
	}
	return entities.Caller{
		UserID:       claims.Subject,
		Name:         claims.Name,
		Role:         role,
		DealershipID: claims.DealershipID,
	}, nil
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
