// Package controller holds the pieces shared by the HTTP controllers: the
// error-to-status table, path parameter parsing and request middleware.
package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/university/internal/apperror"
	"github.com/lshigami/university/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

var statusByKind = map[apperror.Kind]int{
	apperror.KindValidation:    http.StatusBadRequest,
	apperror.KindNotFound:      http.StatusNotFound,
	apperror.KindUnprocessable: http.StatusUnprocessableEntity,
}

// StatusFor returns the HTTP status an error is surfaced with.
func StatusFor(err error) int {
	if appErr, ok := apperror.As(err); ok {
		if status, found := statusByKind[appErr.Kind]; found {
			return status
		}
	}
	return http.StatusInternalServerError
}

// RespondError writes err using the status table. Validation errors become a
// JSON array of messages; other client errors a dto.ErrorResponse with the
// reason. Anything else is a 500 with a generic body.
func RespondError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	status := StatusFor(err)

	appErr, ok := apperror.As(err)
	if !ok || status == http.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", ctx.GetString(requestIDKey)).Str("path", ctx.FullPath()).Msg("Unhandled error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	if appErr.Kind == apperror.KindValidation {
		ctx.JSON(status, appErr.Messages)
		return
	}
	ctx.JSON(status, dto.ErrorResponse{Error: appErr.Reason})
}

// RespondBadBody answers a request whose body could not be decoded.
func RespondBadBody(ctx *gin.Context, err error) {
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind JSON")
	RespondError(ctx, apperror.Validation("request body is not valid JSON"))
}

// ParseID reads a positive numeric path parameter that fits a signed 64-bit
// column. On failure it writes a 400 and returns false.
func ParseID(ctx *gin.Context, param string) (uint, bool) {
	raw := ctx.Param(param)
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil || id == 0 {
		RespondError(ctx, apperror.Validation(fmt.Sprintf("%s must be a positive integer", param)))
		return 0, false
	}
	return uint(id), true
}

// CreatedAt answers 201 with a Location header made of the request path and
// the new resource id.
func CreatedAt(ctx *gin.Context, id uint) {
	scheme := "http"
	if ctx.Request.TLS != nil || strings.EqualFold(ctx.GetHeader("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	location := fmt.Sprintf("%s://%s%s/%d", scheme, ctx.Request.Host, strings.TrimSuffix(ctx.Request.URL.Path, "/"), id)
	ctx.Header("Location", location)
	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

// RequestID tags every request with an id, reusing the caller's X-Request-ID
// when present.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

// RequestLogger logs one zerolog line per request.
func RequestLogger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		requestID, _ := param.Keys[requestIDKey].(string)
		log.Info().
			Str("request_id", requestID).
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return "" // zerolog already wrote the line
	})
}
