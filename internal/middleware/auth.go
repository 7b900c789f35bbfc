package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"task-management/internal/model"
	"task-management/pkg/response"
)

const scopeKey = "scope"

// Claims is the bearer token payload. The subject is the user id, a UUID.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

var (
	errMissingSubject   = errors.New("token has no subject")
	errMalformedSubject = errors.New("token subject is not a UUID")
)

// Auth requires a valid HS256 bearer token and stores the caller's scope.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Unauthorized(c)
			return
		}

		sc, err := m.verify(raw)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth verify: %v", err)
			response.Unauthorized(c)
			return
		}

		SetScope(c, sc)
		c.Next()
	}
}

func (m Middleware) verify(raw string) (model.Scope, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return m.jwtSecret, nil
	}, opts...)
	if err != nil {
		return model.Scope{}, err
	}
	if claims.Subject == "" {
		return model.Scope{}, errMissingSubject
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Scope{}, errMalformedSubject
	}

	return model.Scope{UserID: userID.String(), Email: claims.Email, Role: claims.Role}, nil
}

func bearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// SetScope stores the caller's scope in the gin context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the scope set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok && sc.UserID != ""
}
