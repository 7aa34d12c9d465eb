package middleware

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/dto"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseAmount(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("positive_amount", func(fl validator.FieldLevel) bool {
		amount, err := entity.ParseAmount(fl.Field().String())
		return err == nil && amount.IsPositive()
	})

	return v
}

// ValidateRequest checks obj against its validate tags and returns one entry per failing field
func ValidateRequest(obj any) []dto.ValidationError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []dto.ValidationError{{Message: err.Error(), Type: "invalid"}}
	}

	validationErrors := make([]dto.ValidationError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		validationErrors = append(validationErrors, dto.ValidationError{
			Field:   fe.Field(),
			Message: getErrorMsg(fe),
			Type:    fe.Tag(),
		})
	}
	return validationErrors
}

func getErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return "Value is too long"
	case "amount":
		return "Amount must be a non-negative number with at most 2 decimal places"
	case "positive_amount":
		return "Amount must be greater than zero with at most 2 decimal places"
	default:
		return "Invalid value"
	}
}
