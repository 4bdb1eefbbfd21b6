package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by OAuth2Auth and read by RequireRole and RequestLogger.
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// staffClaims are the claims the write endpoints rely on. Tokens also carry
// aud and scope; those are not consulted.
type staffClaims struct {
	UID  string `json:"uid"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// OAuth2Auth guards catalog writes with the HMAC-signed access tokens issued
// by the /oauth/token endpoint. On success the token owner's id and role are
// stored on the context.
func OAuth2Auth(jwtSecret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithIssuedAt(),
	)
	keyFunc := func(*jwt.Token) (interface{}, error) { return jwtSecret, nil }

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortBearer(c, models.ErrAuthRequired, "Missing Authorization header. A valid Bearer token is required.")
			return
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			abortBearer(c, models.ErrInvalidRequest, "Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
			return
		}
		if raw == "" {
			abortBearer(c, models.ErrInvalidToken, "Bearer token is empty")
			return
		}

		var claims staffClaims
		if _, err := parser.ParseWithClaims(raw, &claims, keyFunc); err != nil {
			abortBearer(c, models.ErrInvalidToken, "token parsing failed: "+err.Error())
			return
		}

		userID, err := claims.userID()
		if err != nil {
			abortBearer(c, models.ErrInvalidToken, err.Error())
			return
		}
		if claims.Role != models.RoleAdmin && claims.Role != models.RoleUser {
			abortBearer(c, models.ErrInvalidToken, fmt.Sprintf("invalid role %q. Allowed roles: admin, user", claims.Role))
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

var errMissingUID = errors.New("token missing required 'uid' claim")

func (sc staffClaims) userID() (uint, error) {
	if sc.UID == "" {
		return 0, errMissingUID
	}
	id, err := strconv.ParseUint(sc.UID, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid uid claim %q: must be a positive integer", sc.UID)
	}
	return uint(id), nil
}

// abortBearer answers 401 in the RFC 6750 error format.
func abortBearer(c *gin.Context, code, description string) {
	c.Header("WWW-Authenticate", `Bearer error="`+code+`"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewOAuth2Error(code, description))
}
