package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"stockplan/internal/apierror"
	"stockplan/internal/service"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeServiceError maps service sentinel errors to HTTP outcomes.
// Anything unrecognized is an internal error: logged by the ErrorHandler
// middleware, surfaced to the client as an opaque 500.
func writeServiceError(c *gin.Context, err error) {
	var insufficient *service.InsufficientStockError
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrDuplicateCode),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrMaterialNotFound):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.As(err, &insufficient):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
	}
}
