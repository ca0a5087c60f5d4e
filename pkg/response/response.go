package response

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"HairJourneyCompanion/pkg/errors"
)

// ErrorResponse 统一的错误响应格式
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse 统一的成功响应格式
type SuccessResponse struct {
	Data interface{} `json:"data"`
}

func errorToHTTPStatus(err error) int {
	def, ok := err.(errors.Definition)
	if !ok {
		return http.StatusInternalServerError
	}

	switch def.Code {
	case errors.MoodInvalid.Code:
		return http.StatusBadRequest
	case errors.SubmissionInFlight.Code:
		return http.StatusConflict
	case errors.GamificationDisabled.Code:
		return http.StatusServiceUnavailable
	case errors.StatsUnavailable.Code, errors.EnvelopeMalformed.Code:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error 返回错误响应
func Error(ctx context.Context, c *app.RequestContext, err error) {
	code := "INTERNAL_ERROR"
	message := err.Error()
	if def, ok := err.(errors.Definition); ok {
		code = def.Code
		message = def.Message
	}

	c.JSON(errorToHTTPStatus(err), ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func Success(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
	})
}

func BindError(ctx context.Context, c *app.RequestContext, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}
