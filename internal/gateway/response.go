package gateway

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"

	checkoutapp "github.com/HamsavardhanS/Zyno-Sample/internal/checkout/app"
	checkoutdomain "github.com/HamsavardhanS/Zyno-Sample/internal/checkout/domain"
	"github.com/gin-gonic/gin"
)

type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type Response struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

func badRequest(c *gin.Context, field, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{
		Message: message,
		Errors:  []FieldError{{Field: field, Message: message, Code: "INVALID_ARGUMENT"}},
	})
}

// fail writes err as an error envelope. Field errors from a rejected customer
// form are listed one per field.
func fail(c *gin.Context, log *slog.Logger, err error) {
	httpStatus, code, msg := httpStatusFromGRPC(mapErr(err))

	var errs []FieldError
	var verr *checkoutapp.ValidationError
	if errors.As(err, &verr) {
		errs = fieldErrors(verr.Fields)
		msg = "please correct the highlighted fields"
	} else {
		errs = []FieldError{{Message: msg, Code: code}}
	}

	if httpStatus >= http.StatusInternalServerError {
		log.Error("request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Any("err", err),
		)
	}
	c.AbortWithStatusJSON(httpStatus, Response{Message: msg, Errors: errs})
}

func fieldErrors(fields checkoutdomain.FieldErrors) []FieldError {
	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, f)
	}
	sort.Strings(names)

	out := make([]FieldError, 0, len(names))
	for _, f := range names {
		out = append(out, FieldError{Field: f, Message: fields[f], Code: "INVALID_ARGUMENT"})
	}
	return out
}
