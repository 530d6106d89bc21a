// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/project-ascent/internal/assistant"
	"github.com/pdiddy/project-ascent/internal/model"
	"github.com/pdiddy/project-ascent/internal/validate"
)

// Response is the success envelope.
type Response[T any] struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorCode identifies a failure class to API clients.
type ErrorCode string

const (
	CodeInvalidParam       ErrorCode = "invalid_param"
	CodeValidationFailed   ErrorCode = "validation_failed"
	CodeNotFound           ErrorCode = "not_found"
	CodeConflict           ErrorCode = "in_flight"
	CodeConfiguration      ErrorCode = "configuration_error"
	CodeQuotaExceeded      ErrorCode = "quota_exceeded"
	CodeRateLimited        ErrorCode = "rate_limited"
	CodeGenerationFailed   ErrorCode = "generation_failed"
	CodeServiceUnavailable ErrorCode = "service_unavailable"
	CodeInternalError      ErrorCode = "internal_error"
)

// ErrorResponse is the failure envelope. Notice carries the text a front
// end shows in its notification.
type ErrorResponse struct {
	Code      ErrorCode           `json:"code"`
	Message   string              `json:"message"`
	Fields    map[string][]string `json:"fields,omitempty"`
	Notice    *assistant.Notice   `json:"notice,omitempty"`
	RequestID string              `json:"request_id,omitempty"`
}

func success[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, Response[T]{
		Code:      http.StatusOK,
		Message:   "success",
		Data:      data,
		RequestID: c.GetString(requestIDKey),
	})
}

func abort(c *gin.Context, status int, code ErrorCode, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:      code,
		Message:   msg,
		RequestID: c.GetString(requestIDKey),
	})
}

// fail maps err to a status and envelope.
func fail(c *gin.Context, err error) {
	notice := assistant.UserMessage(err)
	resp := ErrorResponse{
		Message:   err.Error(),
		Notice:    &notice,
		RequestID: c.GetString(requestIDKey),
	}

	status := http.StatusInternalServerError
	resp.Code = CodeInternalError

	var verr *validate.Error
	var me *model.Error
	switch {
	case errors.As(err, &verr):
		status, resp.Code = http.StatusBadRequest, CodeValidationFailed
		resp.Fields = verr.Fields
	case errors.As(err, &me):
		status, resp.Code = modelStatus(me.Kind)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status, resp.Code = http.StatusServiceUnavailable, CodeServiceUnavailable
	}

	c.AbortWithStatusJSON(status, resp)
}

func modelStatus(k model.Kind) (int, ErrorCode) {
	switch k {
	case model.KindAuth:
		return http.StatusBadGateway, CodeConfiguration
	case model.KindQuota:
		return http.StatusServiceUnavailable, CodeQuotaExceeded
	case model.KindRateLimited:
		return http.StatusTooManyRequests, CodeRateLimited
	default:
		return http.StatusBadGateway, CodeGenerationFailed
	}
}
