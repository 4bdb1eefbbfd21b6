package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/errs"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

func init() {
	// every request body must match its schema exactly
	binding.EnableDecoderDisallowUnknownFields = true
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.Register(engine)
	}
}

// parseID reads a positive integer path parameter. On failure it writes a
// 404, since no row can have such an id.
func parseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Not found."))
		return 0, false
	}
	return uint(id), true
}

// bindJSON binds the body into obj and answers 400 when it does not fit.
func bindJSON(ctx *gin.Context, obj any) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		respondBindError(ctx, err)
		return false
	}
	return true
}

// bindWithFields binds the body into obj and also returns the sorted set of
// top-level keys the client sent. An empty body counts as {}.
func bindWithFields(ctx *gin.Context, obj any) ([]string, bool) {
	body, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return nil, false
	}
	if len(body) == 0 {
		body = []byte("{}")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "JSON object expected: "+err.Error()))
		return nil, false
	}
	if err := binding.JSON.BindBody(body, obj); err != nil {
		respondBindError(ctx, err)
		return nil, false
	}

	fields := make([]string, 0, len(raw))
	for key := range raw {
		fields = append(fields, key)
	}
	sort.Strings(fields)
	return fields, true
}

// respondBindError answers a failed binding: rule violations become a
// VALIDATION_FAILED naming the field, undecodable bodies a BAD_REQUEST.
func respondBindError(ctx *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		respondError(ctx, validation.Translate(err, ""))
		return
	}
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
}

// respondError maps service errors onto the API error shape.
func respondError(ctx *gin.Context, err error) {
	var validationErr *errs.ValidationError
	var notFoundErr *errs.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		code := validationErr.Code
		if code == "" {
			code = models.ErrValidationFailed
		}
		var details map[string]interface{}
		if validationErr.Field != "" {
			details = map[string]interface{}{"field": validationErr.Field}
		}
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(code, validationErr.Message, details))
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Not found.",
			map[string]interface{}{"resource": notFoundErr.Resource, "id": fmt.Sprint(notFoundErr.ID)}))
	default:
		log.WithFields(log.Fields{
			"method": ctx.Request.Method,
			"path":   ctx.Request.URL.Path,
			"error":  err.Error(),
		}).Error("Request failed")
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError,
			models.NewAPIError(models.ErrInternalServer, "Internal server error"))
	}
}
