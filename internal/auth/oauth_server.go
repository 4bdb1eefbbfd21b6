package auth

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	oauth2errors "github.com/go-oauth2/oauth2/v4/errors"
	"github.com/go-oauth2/oauth2/v4/manage"
	"github.com/go-oauth2/oauth2/v4/server"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AccessTokenTTL is the lifetime of a client credentials access token
const AccessTokenTTL = 2 * time.Hour

type OAuthService struct {
	server *server.Server
	db     *gorm.DB
}

// NewOAuthService builds a token server that only grants client credentials.
// Access tokens are HS512 JWTs carrying the uid and role of the client owner.
func NewOAuthService(db *gorm.DB, jwtSecret string) *OAuthService {
	manager := manage.NewDefaultManager()
	manager.SetClientTokenCfg(&manage.Config{AccessTokenExp: AccessTokenTTL})

	manager.MapAccessGenerate(NewCustomJWTAccessGenerate([]byte(jwtSecret), jwt.SigningMethodHS512, db))

	// Configure token store
	tokenStore := NewGormTokenStore(db)
	manager.MustTokenStorage(tokenStore, nil)

	// Configure client store
	clientStore := NewGormClientStore(db)
	manager.MapClientStorage(clientStore)

	srv := server.NewDefaultServer(manager)
	srv.SetAllowGetAccessRequest(false)
	srv.SetAllowedGrantType(oauth2.ClientCredentials)
	srv.SetClientInfoHandler(server.ClientFormHandler)
	srv.SetInternalErrorHandler(func(err error) *oauth2errors.Response {
		log.WithError(err).Error("OAuth2 internal error")
		return nil
	})

	return &OAuthService{
		server: srv,
		db:     db,
	}
}

func (o *OAuthService) GetServer() *server.Server {
	return o.server
}

// HandleToken handles the token endpoint for the client credentials grant
// @Summary Token Endpoint
// @Description Obtain an access token using the client credentials grant
// @Tags OAuth2
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Grant type: client_credentials"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string true "Client Secret"
// @Param scope formData string false "Requested scope"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.OAuth2Error
// @Failure 401 {object} models.OAuth2Error
// @Router /oauth/token [post]
func (o *OAuthService) HandleToken(c *gin.Context) {
	// the server writes both success and error responses itself
	if err := o.server.HandleTokenRequest(c.Writer, c.Request); err != nil {
		log.WithError(err).Error("Failed to write token response")
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError,
				models.NewOAuth2Error("server_error", "failed to issue token"))
		}
	}
}
