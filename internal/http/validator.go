package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"libmgmt/internal/isbn"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	if err := isbn.RegisterValidation(validate); err != nil {
		panic(err)
	}
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ValidateStruct(s any) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ValidationError{{Field: "", Message: err.Error()}}
	}

	var out []ValidationError
	for _, fe := range verrs {
		field := fe.Field()
		param := fe.Param()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "isbn":
			message = fmt.Sprintf("%s must be a valid ISBN-10 or ISBN-13", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		out = append(out, ValidationError{
			Field:   strings.ToLower(field[:1]) + field[1:],
			Message: message,
		})
	}
	return out
}
