package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type healthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *healthController {
	return &healthController{db: db}
}

// Health godoc
// @Summary Health check
// @Description Reports whether the API and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (c *healthController) Health(ctx *gin.Context) {
	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		log.WithError(err).Error("Health check failed")
		ctx.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}
	ctx.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
}
