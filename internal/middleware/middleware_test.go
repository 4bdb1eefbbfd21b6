package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("middleware-test-secret")

func signToken(t *testing.T, claims jwt.MapClaims, method jwt.SigningMethod) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func protectedRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	handlers := []gin.HandlerFunc{OAuth2Auth(testSecret)}
	if role != "" {
		handlers = append(handlers, RequireRole(role))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(ContextUserID),
			"role":    c.GetString(ContextUserRole),
		})
	})
	router.POST("/api/pizzas", handlers...)
	return router
}

func doRequest(router http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/pizzas", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validClaims(role string) jwt.MapClaims {
	return jwt.MapClaims{
		"uid":  "7",
		"role": role,
		"aud":  "catalog-admin",
		"iat":  time.Now().Add(-time.Minute).Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
}

func TestOAuth2Auth(t *testing.T) {
	router := protectedRouter("")

	testCases := []struct {
		name         string
		header       func(t *testing.T) string
		expectedCode int
		expectedErr  string
	}{
		{
			name:         "missing header",
			header:       func(t *testing.T) string { return "" },
			expectedCode: http.StatusUnauthorized,
			expectedErr:  models.ErrAuthRequired,
		},
		{
			name:         "wrong scheme",
			header:       func(t *testing.T) string { return "Basic abc" },
			expectedCode: http.StatusUnauthorized,
			expectedErr:  models.ErrInvalidRequest,
		},
		{
			name:         "garbage token",
			header:       func(t *testing.T) string { return "Bearer not.a.jwt" },
			expectedCode: http.StatusUnauthorized,
			expectedErr:  models.ErrInvalidToken,
		},
		{
			name: "expired token",
			header: func(t *testing.T) string {
				claims := validClaims(models.RoleAdmin)
				claims["exp"] = time.Now().Add(-time.Minute).Unix()
				return "Bearer " + signToken(t, claims, jwt.SigningMethodHS512)
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  models.ErrInvalidToken,
		},
		{
			name: "missing uid",
			header: func(t *testing.T) string {
				claims := validClaims(models.RoleAdmin)
				delete(claims, "uid")
				return "Bearer " + signToken(t, claims, jwt.SigningMethodHS512)
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  models.ErrInvalidToken,
		},
		{
			name: "zero uid",
			header: func(t *testing.T) string {
				claims := validClaims(models.RoleAdmin)
				claims["uid"] = "0"
				return "Bearer " + signToken(t, claims, jwt.SigningMethodHS512)
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  models.ErrInvalidToken,
		},
		{
			name: "issued in the future",
			header: func(t *testing.T) string {
				claims := validClaims(models.RoleAdmin)
				claims["iat"] = time.Now().Add(time.Hour).Unix()
				return "Bearer " + signToken(t, claims, jwt.SigningMethodHS512)
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  models.ErrInvalidToken,
		},
		{
			name: "signed with another secret",
			header: func(t *testing.T) string {
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, validClaims(models.RoleAdmin)).SignedString([]byte("other"))
				require.NoError(t, err)
				return "Bearer " + token
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  models.ErrInvalidToken,
		},
		{
			name: "unknown role",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, validClaims("root"), jwt.SigningMethodHS512)
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  models.ErrInvalidToken,
		},
		{
			name: "valid token",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, validClaims(models.RoleUser), jwt.SigningMethodHS512)
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.header(t))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedErr != "" {
				var body models.OAuth2Error
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedErr, body.Error)
				assert.Contains(t, w.Header().Get("WWW-Authenticate"), tt.expectedErr)
			}
		})
	}
}

func TestOAuth2AuthSetsContext(t *testing.T) {
	router := protectedRouter("")

	w := doRequest(router, "Bearer "+signToken(t, validClaims(models.RoleAdmin), jwt.SigningMethodHS256))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 7, body["user_id"])
	assert.Equal(t, models.RoleAdmin, body["role"])
}

func TestRequireRole(t *testing.T) {
	router := protectedRouter(models.RoleAdmin)

	t.Run("admin passes", func(t *testing.T) {
		w := doRequest(router, "Bearer "+signToken(t, validClaims(models.RoleAdmin), jwt.SigningMethodHS512))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("user is forbidden", func(t *testing.T) {
		w := doRequest(router, "Bearer "+signToken(t, validClaims(models.RoleUser), jwt.SigningMethodHS512))

		assert.Equal(t, http.StatusForbidden, w.Code)
		var body models.APIError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, models.ErrForbidden, body.Code)
		assert.Equal(t, models.RoleAdmin, body.Details["required_role"])
	})

	t.Run("without authentication", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		bare := gin.New()
		bare.GET("/", RequireRole(models.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		bare.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextRequestID))
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}
